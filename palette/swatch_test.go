package palette

import (
	"path/filepath"
	"testing"
)

func TestSaveSwatchRoundTrip(t *testing.T) {
	p, err := FromCode("96ceb4ffeeadd9534fffad60")
	if err != nil {
		t.Fatalf("FromCode: %v", err)
	}

	path := filepath.Join(t.TempDir(), p.Name+".png")
	if err := SaveSwatch(p, path); err != nil {
		t.Fatalf("SaveSwatch: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Hex() != p.Hex() {
		t.Errorf("round trip changed colors: got %v, want %v", got.Hex(), p.Hex())
	}
}

func TestSaveSwatchBadPath(t *testing.T) {
	if err := SaveSwatch(Default(), filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
