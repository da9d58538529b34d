package palette

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// Entry is one palette discovered on disk, grouped by the folder it came
// from.
type Entry struct {
	Category string
	Path     string
	Palette  Palette
}

var swatchExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// UserDir returns the per-user palette directory, creating it if needed.
func UserDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return "", fmt.Errorf("HOME environment variable not set")
		}
		base = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(base, "wallrus", "palettes")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create palette directory at %s: %w", dir, err)
	}
	return dir, nil
}

// ScanDir collects swatch images from a palette directory. Images directly
// in root land in the Uncategorized group; each subfolder becomes its own
// category named after the folder. Entries come back sorted by category and
// filename. Files that fail to decode are skipped with a warning.
func ScanDir(root string) ([]Entry, error) {
	items, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, item := range items {
		if item.IsDir() {
			sub, err := scanCategory(filepath.Join(root, item.Name()), capitalize(item.Name()))
			if err != nil {
				log.Printf("Warning: skipping palette folder %s: %v", item.Name(), err)
				continue
			}
			entries = append(entries, sub...)
			continue
		}
		if e, ok := loadEntry(filepath.Join(root, item.Name()), "Uncategorized"); ok {
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// Discover merges the entries of several palette directories. Missing
// directories are fine; anything else is warned about and skipped.
func Discover(dirs ...string) []Entry {
	var entries []Entry
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		found, err := ScanDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("Warning: failed to scan palette directory %s: %v", dir, err)
			}
			continue
		}
		entries = append(entries, found...)
	}
	return entries
}

func scanCategory(dir, category string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		if e, ok := loadEntry(filepath.Join(dir, item.Name()), category); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func loadEntry(path, category string) (Entry, bool) {
	if !swatchExts[strings.ToLower(filepath.Ext(path))] {
		return Entry{}, false
	}
	p, err := LoadFile(path)
	if err != nil {
		log.Printf("Warning: skipping palette %s: %v", path, err)
		return Entry{}, false
	}
	return Entry{Category: category, Path: path, Palette: p}, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
