package palette

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeSwatch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, bandImage(8, 8)); err != nil {
		t.Fatal(err)
	}
}

func TestScanDir(t *testing.T) {
	root := t.TempDir()
	writeSwatch(t, filepath.Join(root, "zebra.png"))
	writeSwatch(t, filepath.Join(root, "warm", "amber.png"))
	writeSwatch(t, filepath.Join(root, "warm", "crimson.jpg"))
	writeSwatch(t, filepath.Join(root, "cool", "ice.png"))
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("not a swatch"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "broken.png"), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := ScanDir(root)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}

	var got []string
	for _, e := range entries {
		got = append(got, e.Category+"/"+e.Palette.Name)
	}
	want := []string{"Cool/ice", "Uncategorized/zebra", "Warm/amber", "Warm/crimson"}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanDirMissing(t *testing.T) {
	_, err := ScanDir(filepath.Join(t.TempDir(), "absent"))
	if !os.IsNotExist(err) {
		t.Errorf("err = %v, want IsNotExist", err)
	}
}

func TestDiscoverSkipsMissingDirs(t *testing.T) {
	root := t.TempDir()
	writeSwatch(t, filepath.Join(root, "solo.png"))

	entries := Discover("", filepath.Join(root, "absent"), root)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Palette.Name != "solo" {
		t.Errorf("Name = %q, want solo", entries[0].Palette.Name)
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{"warm": "Warm", "": "", "öl": "Öl", "Big": "Big"}
	for in, want := range cases {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
