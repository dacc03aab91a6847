package toolbar

import "testing"

func TestClassifyDesktopZones(t *testing.T) {
	cfg := DefaultConfig()
	f := desktopFrame() // 1000x800, widget 300x40

	tests := []struct {
		name  string
		pos   Position
		o     Orientation
		want  Placement
	}{
		{
			// centre at (50%, 5%)
			name: "top",
			pos:  Position{350, 20},
			o:    Horizontal,
			want: Placement{Position: Position{350, 8}, Orientation: Horizontal},
		},
		{
			// vertical footprint 40x300, centre at (5%, 50%)
			name: "left",
			pos:  Position{30, 250},
			o:    Vertical,
			want: Placement{Position: Position{8, 250}, Orientation: Vertical},
		},
		{
			name: "right",
			pos:  Position{930, 250},
			o:    Vertical,
			want: Placement{Position: Position{952, 250}, Orientation: Vertical},
		},
		{
			// centre at (95%, 95%): bottom beats right
			name: "corner resolves horizontal",
			pos:  Position{800, 740},
			o:    Horizontal,
			want: Placement{Position: Position{692, 752}, Orientation: Horizontal},
		},
		{
			name: "middle becomes horizontal in place",
			pos:  Position{480, 250},
			o:    Vertical,
			want: Placement{Position: Position{480, 250}, Orientation: Horizontal},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.pos, tt.o, Delta{}, f, cfg)
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifyDesktopIgnoresFlick(t *testing.T) {
	cfg := DefaultConfig()
	got := Classify(Position{480, 250}, Horizontal, Delta{DX: 300}, desktopFrame(), cfg)
	if got.Orientation != Horizontal || got.Edge != EdgeNone {
		t.Fatalf("desktop should not use directional override: %+v", got)
	}
}

func TestClassifyMobileNearestEdge(t *testing.T) {
	cfg := DefaultConfig()
	f := mobileFrame() // 400x800, widget 200x48, top inset 12

	tests := []struct {
		name string
		pos  Position
		edge Edge
		want Position
	}{
		{"top", Position{100, 20}, EdgeTop, Position{100, 12}},
		{"bottom", Position{100, 740}, EdgeBottom, Position{100, 744}},
		{"left", Position{0, 400}, EdgeLeft, Position{8, 376}},
		{"right", Position{200, 400}, EdgeRight, Position{192, 376}},
		{"top wins tie with left", Position{12, 24}, EdgeTop, Position{100, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.pos, Horizontal, Delta{}, f, cfg)
			if got.Edge != tt.edge || got.Position != tt.want || got.Orientation != tt.edge.Orientation() {
				t.Fatalf("got %+v, want edge %s at %v", got, tt.edge, tt.want)
			}
		})
	}
}

func TestClassifyMobileDirectionalOverride(t *testing.T) {
	cfg := DefaultConfig()
	f := mobileFrame()
	pos := Position{100, 20} // top is nearest by 8 units

	got := Classify(pos, Horizontal, Delta{DX: 40, DY: 2}, f, cfg)
	want := Placement{Position: Position{192, 376}, Orientation: Vertical, Edge: EdgeRight}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	tests := []struct {
		name  string
		delta Delta
		edge  Edge
	}{
		{"short flick falls back to nearest", Delta{DX: 15, DY: 2}, EdgeTop},
		{"diagonal falls back to nearest", Delta{DX: 30, DY: 28}, EdgeTop},
		{"left flick", Delta{DX: -20, DY: 5}, EdgeLeft},
		{"down flick", Delta{DX: 3, DY: 25}, EdgeBottom},
		{"up flick", Delta{DY: -25}, EdgeTop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(pos, Horizontal, tt.delta, f, cfg); got.Edge != tt.edge {
				t.Fatalf("got edge %s, want %s", got.Edge, tt.edge)
			}
		})
	}
}

func TestClassifyMobileHeader(t *testing.T) {
	cfg := DefaultConfig()
	f := mobileFrame()
	f.Header = header(60)
	got := Classify(Position{100, 90}, Horizontal, Delta{}, f, cfg)
	if got.Edge != EdgeTop || got.Position != (Position{100, 68}) {
		t.Fatalf("got %+v, want top at {100 68}", got)
	}
}

func TestClassifyDegenerate(t *testing.T) {
	cfg := DefaultConfig()
	f := mobileFrame()
	f.Container = Rect{W: 5, H: 5}
	got := Classify(Position{100, 100}, Vertical, Delta{DX: 40}, f, cfg)
	if got.Edge != EdgeTop || got.Orientation != Horizontal || got.Position != (Position{8, 12}) {
		t.Fatalf("got %+v", got)
	}
}
