// Package wallpaper applies rendered stills as the desktop background.
package wallpaper

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"wallrus/export"
)

// StagePath returns where the current wallpaper image lives, creating the
// directory on first use. Desktops keep resolving the file by path after we
// exit, so it goes in the user's data dir rather than a temp dir.
func StagePath() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(base, "backgrounds")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create background directory: %w", err)
	}
	return filepath.Join(dir, "wallrus_current.png"), nil
}

// Apply stages the image on disk and asks the desktop to use it. The XDG
// portal is tried first; window managers without one fall back to the X11
// root pixmap. The staged path is returned on success.
func Apply(ctx context.Context, img image.Image) (string, error) {
	path, err := StagePath()
	if err != nil {
		return "", err
	}
	if err := export.Save(img, path); err != nil {
		return "", err
	}

	perr := SetViaPortal(ctx, path)
	if perr == nil {
		return path, nil
	}
	log.Printf("Wallpaper portal unavailable (%v), trying the X11 root pixmap", perr)

	if xerr := SetRootPixmap(img); xerr != nil {
		return "", fmt.Errorf("portal: %v, x11: %w", perr, xerr)
	}
	return path, nil
}
