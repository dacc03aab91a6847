package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	l, closeFn, err := New("", true)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	l.Info("dropped")
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dockbar.log")
	l, closeFn, err := New(path, false)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hidden at info level")
	l.Info("toolbar settled")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"toolbar settled"`) {
		t.Fatalf("missing info line: %s", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Fatalf("debug line leaked: %s", out)
	}
}
