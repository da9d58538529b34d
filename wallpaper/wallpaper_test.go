package wallpaper

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	dbus "github.com/godbus/dbus/v5"
)

func TestRequestPath(t *testing.T) {
	got := requestPath(":1.42", "wallrus_7_1")
	want := dbus.ObjectPath("/org/freedesktop/portal/desktop/request/1_42/wallrus_7_1")
	if got != want {
		t.Errorf("requestPath = %q, want %q", got, want)
	}
}

func TestDecodeResponse(t *testing.T) {
	if err := decodeResponse(&dbus.Signal{Body: []interface{}{uint32(0)}}); err != nil {
		t.Errorf("code 0 should be success, got %v", err)
	}
	if err := decodeResponse(&dbus.Signal{Body: []interface{}{uint32(1)}}); err == nil || !strings.Contains(err.Error(), "dismissed") {
		t.Errorf("code 1 should report a dismissal, got %v", err)
	}
	if err := decodeResponse(&dbus.Signal{Body: []interface{}{uint32(2)}}); err == nil {
		t.Error("code 2 should be an error")
	}
	if err := decodeResponse(&dbus.Signal{}); err == nil {
		t.Error("empty body should be an error")
	}
	if err := decodeResponse(&dbus.Signal{Body: []interface{}{"nope"}}); err == nil {
		t.Error("non-uint32 code should be an error")
	}
}

func TestStagePathUsesXDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	path, err := StagePath()
	if err != nil {
		t.Fatalf("StagePath: %v", err)
	}
	want := filepath.Join(dir, "backgrounds", "wallrus_current.png")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("backgrounds dir not created: %v", err)
	}
}

// stripes paints three equal vertical stripes red, green, blue.
func stripes(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	colors := [3]color.RGBA{{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, colors[x*3/w])
		}
	}
	return img
}

func TestScaleToCoverBounds(t *testing.T) {
	out := scaleToCover(stripes(30, 10), 7, 5)
	if out.Bounds().Dx() != 7 || out.Bounds().Dy() != 5 {
		t.Errorf("bounds = %v, want 7x5", out.Bounds())
	}
}

func TestScaleToCoverCropsCentered(t *testing.T) {
	// A wide striped image squeezed to a square keeps only the middle
	// stripe, because cover crops the horizontal overflow.
	out := scaleToCover(stripes(30, 10), 4, 4)
	c := out.RGBAAt(2, 2)
	if c.G < 200 || c.R > 55 || c.B > 55 {
		t.Errorf("center = %v, want the green middle stripe", c)
	}
}

func TestScaleToCoverSameAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	out := scaleToCover(src, 20, 10)
	c := out.RGBAAt(10, 5)
	if c.R < 190 || c.R > 210 {
		t.Errorf("solid color should survive scaling, got %v", c)
	}
}

func TestAppendZPixmapRow(t *testing.T) {
	line := []byte{10, 20, 30, 255, 40, 50, 60, 255}

	lsb := appendZPixmapRow(nil, line, false)
	wantLSB := []byte{30, 20, 10, 0, 60, 50, 40, 0}
	if len(lsb) != len(wantLSB) {
		t.Fatalf("len = %d, want %d", len(lsb), len(wantLSB))
	}
	for i := range wantLSB {
		if lsb[i] != wantLSB[i] {
			t.Errorf("lsb[%d] = %d, want %d", i, lsb[i], wantLSB[i])
		}
	}

	msb := appendZPixmapRow(nil, line, true)
	wantMSB := []byte{0, 10, 20, 30, 0, 40, 50, 60}
	for i := range wantMSB {
		if msb[i] != wantMSB[i] {
			t.Errorf("msb[%d] = %d, want %d", i, msb[i], wantMSB[i])
		}
	}
}
