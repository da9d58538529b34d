package wallpaper

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	dbus "github.com/godbus/dbus/v5"
)

const (
	portalDest     = "org.freedesktop.portal.Desktop"
	portalPath     = "/org/freedesktop/portal/desktop"
	wallpaperIface = "org.freedesktop.portal.Wallpaper"
	requestIface   = "org.freedesktop.portal.Request"
)

var requestCounter uint64

// SetViaPortal asks the XDG desktop portal to adopt the image at path as the
// wallpaper for both the desktop and the lock screen. The image travels as a
// file descriptor, so sandboxed sessions work too. The portal answers
// asynchronously through a Request object; this blocks until its Response
// signal arrives or ctx expires.
func SetViaPortal(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open wallpaper file: %w", err)
	}
	defer file.Close()

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	if !conn.SupportsUnixFDs() {
		return fmt.Errorf("session bus does not support file descriptor passing")
	}

	// Predict the request path from our token and subscribe before calling,
	// otherwise a fast portal can reply before the match is in place.
	token := fmt.Sprintf("wallrus_%d_%d", os.Getpid(), atomic.AddUint64(&requestCounter, 1))
	expected := requestPath(conn.Names()[0], token)

	signals := make(chan *dbus.Signal, 1)
	conn.Signal(signals)
	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(expected),
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	); err != nil {
		return fmt.Errorf("failed to subscribe to portal response: %w", err)
	}

	options := map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(token),
		"show-preview": dbus.MakeVariant(true),
		"set-on":       dbus.MakeVariant("both"),
	}

	obj := conn.Object(portalDest, portalPath)
	call := obj.CallWithContext(ctx, wallpaperIface+".SetWallpaperFile", 0, "", dbus.UnixFD(file.Fd()), options)

	var handle dbus.ObjectPath
	if err := call.Store(&handle); err != nil {
		return fmt.Errorf("wallpaper portal call failed: %w", err)
	}

	// Older portals hand back a path that ignores the token; widen the match.
	if handle != expected {
		if err := conn.AddMatchSignal(
			dbus.WithMatchObjectPath(handle),
			dbus.WithMatchInterface(requestIface),
			dbus.WithMatchMember("Response"),
		); err != nil {
			return fmt.Errorf("failed to subscribe to portal response: %w", err)
		}
	}

	for {
		select {
		case sig := <-signals:
			if sig == nil || (sig.Path != expected && sig.Path != handle) {
				continue
			}
			return decodeResponse(sig)
		case <-ctx.Done():
			return fmt.Errorf("no response from wallpaper portal: %w", ctx.Err())
		}
	}
}

func decodeResponse(sig *dbus.Signal) error {
	if len(sig.Body) == 0 {
		return fmt.Errorf("malformed portal response")
	}
	code, ok := sig.Body[0].(uint32)
	if !ok {
		return fmt.Errorf("malformed portal response code %v", sig.Body[0])
	}
	switch code {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("wallpaper change dismissed by the user")
	default:
		return fmt.Errorf("wallpaper portal failed with code %d", code)
	}
}

// requestPath predicts the Request object the portal allocates for a handle
// token, per the org.freedesktop.portal.Request naming convention.
func requestPath(sender, token string) dbus.ObjectPath {
	sender = strings.TrimPrefix(sender, ":")
	sender = strings.ReplaceAll(sender, ".", "_")
	return dbus.ObjectPath("/org/freedesktop/portal/desktop/request/" + sender + "/" + token)
}
