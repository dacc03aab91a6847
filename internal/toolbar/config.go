package toolbar

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the tuned constants. None of them are load-bearing for
// correctness; they only change how the toolbar feels.
type Config struct {
	Pad          float64 // gap kept from every container edge
	TopPad       float64 // desktop top gap
	MobileTopPad float64 // mobile top gap when there is no header provider

	MoveThreshold    float64 // displacement that turns a press into a drag
	FlickMinDistance float64 // dominant-axis distance for a directional flick
	FlickDominance   float64 // dominant axis must beat the other by this ratio
	ZoneFraction     float64 // desktop edge zone size as a fraction of the container

	TapSuppressWindow time.Duration

	MinContainer      float64 // below this the container is treated as not laid out
	CollapsedSize     float64 // side of the collapsed square
	DefaultTop        float64 // desktop default y
	MobileDefaultLeft float64 // mobile default x
}

// DefaultConfig returns values tuned for pixel coordinates.
func DefaultConfig() Config {
	return Config{
		Pad:               8,
		TopPad:            8,
		MobileTopPad:      12,
		MoveThreshold:     10,
		FlickMinDistance:  18,
		FlickDominance:    1.25,
		ZoneFraction:      0.2,
		TapSuppressWindow: 260 * time.Millisecond,
		MinContainer:      20,
		CollapsedSize:     44,
		DefaultTop:        16,
		MobileDefaultLeft: 12,
	}
}

// CellConfig returns values tuned for terminal cells, where one unit is a
// character cell rather than a pixel.
func CellConfig() Config {
	return Config{
		Pad:               1,
		TopPad:            1,
		MobileTopPad:      1,
		MoveThreshold:     1,
		FlickMinDistance:  3,
		FlickDominance:    1.25,
		ZoneFraction:      0.2,
		TapSuppressWindow: 260 * time.Millisecond,
		MinContainer:      6,
		CollapsedSize:     3,
		DefaultTop:        1,
		MobileDefaultLeft: 1,
	}
}

var errInvalidConfig = errors.New("invalid toolbar config")

// Validate reports values that would make the geometry meaningless.
func (c Config) Validate() error {
	switch {
	case c.Pad < 0 || c.TopPad < 0 || c.MobileTopPad < 0:
		return fmt.Errorf("%w: negative padding", errInvalidConfig)
	case c.MoveThreshold < 0 || c.FlickMinDistance < 0:
		return fmt.Errorf("%w: negative distance threshold", errInvalidConfig)
	case c.FlickDominance < 1:
		return fmt.Errorf("%w: flick dominance %.2f below 1", errInvalidConfig, c.FlickDominance)
	case c.ZoneFraction <= 0 || c.ZoneFraction >= 0.5:
		return fmt.Errorf("%w: zone fraction %.2f outside (0, 0.5)", errInvalidConfig, c.ZoneFraction)
	case c.TapSuppressWindow < 0:
		return fmt.Errorf("%w: negative tap suppression window", errInvalidConfig)
	}
	return nil
}
