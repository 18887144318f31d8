// internal/plotout/plot_test.go
package plotout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteGCProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gc.png")
	s := strings.Repeat("ATGCCCGGGA", 30)
	if err := WriteGCProfile(path, "test", s, 100, 0.3, 0.7); err != nil {
		t.Fatalf("WriteGCProfile: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatalf("empty plot file")
	}
}

func TestWriteGCProfileShortSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gc.png")
	if err := WriteGCProfile(path, "test", "ATGC", 100, 0.3, 0.7); err == nil {
		t.Fatalf("expected error for sequence shorter than window")
	}
}
