// Package export names and writes wallpaper stills.
package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wallrus/preset"
)

// Resolution is an export target size. A zero width or height means "use
// the current display size".
type Resolution struct {
	Name   string
	Width  int
	Height int
}

// Presets are the sizes offered by the exporter, in menu order.
var Presets = []Resolution{
	{Name: "Display"},
	{Name: "HD", Width: 1920, Height: 1080},
	{Name: "QHD", Width: 2560, Height: 1440},
	{Name: "4K", Width: 3840, Height: 2160},
	{Name: "Phone", Width: 1080, Height: 2400},
}

// IsDisplay reports whether the resolution defers to the display size.
func (r Resolution) IsDisplay() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Resolution) String() string {
	if r.IsDisplay() {
		return r.Name
	}
	if r.Name == "" {
		return fmt.Sprintf("%dx%d", r.Width, r.Height)
	}
	return fmt.Sprintf("%s (%dx%d)", r.Name, r.Width, r.Height)
}

// ParseResolution accepts a preset name like "4k" or an explicit size like
// "2560x1440".
func ParseResolution(s string) (Resolution, error) {
	trimmed := strings.TrimSpace(s)
	for _, p := range Presets {
		if strings.EqualFold(trimmed, p.Name) {
			return p, nil
		}
	}

	parts := strings.SplitN(strings.ToLower(trimmed), "x", 2)
	if len(parts) == 2 {
		w, werr := strconv.Atoi(strings.TrimSpace(parts[0]))
		h, herr := strconv.Atoi(strings.TrimSpace(parts[1]))
		if werr == nil && herr == nil && w > 0 && h > 0 {
			return Resolution{Width: w, Height: h}, nil
		}
	}
	return Resolution{}, fmt.Errorf("unknown resolution %q, want a preset name or WxH", s)
}

// Format selects the encoder for saved stills.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
)

// jpegQuality trades size for fidelity; gradients survive 90 fine.
const jpegQuality = 90

func (f Format) String() string {
	if f == FormatJPEG {
		return "jpeg"
	}
	return "png"
}

// Ext returns the filename extension including the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

// ParseFormat accepts png, jpg or jpeg, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	}
	return FormatPNG, fmt.Errorf("unknown image format %q, want png or jpg", s)
}

// Filename builds the export name for a pattern at a point in time, for
// example wallrus_plasma_1724666400.png.
func Filename(kind preset.PatternKind, f Format, now time.Time) string {
	return fmt.Sprintf("wallrus_%s_%d%s", strings.ToLower(kind.String()), now.Unix(), f.Ext())
}

// DefaultDir returns the directory exports land in when the caller does not
// pick one. It prefers the user's Pictures folder and falls back to the
// working directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Pictures")
}

// Save encodes an image to path, picking the encoder from the extension.
func Save(img image.Image, path string) error {
	var encode func(f *os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error { return jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}) }
	default:
		return fmt.Errorf("unsupported export format %q", filepath.Ext(path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
