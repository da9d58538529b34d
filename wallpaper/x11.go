package wallpaper

import (
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// SetRootPixmap paints the image onto the X root window the way hsetroot
// does: upload a pixmap, publish it through the pseudo-transparency atoms
// and retain it so it outlives the process. This is the fallback for window
// managers that do not run a wallpaper portal.
func SetRootPixmap(img image.Image) error {
	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("failed to connect to X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	root := screen.Root
	width := int(screen.WidthInPixels)
	height := int(screen.HeightInPixels)

	if screen.RootDepth != 24 && screen.RootDepth != 32 {
		return fmt.Errorf("unsupported root window depth %d", screen.RootDepth)
	}

	scaled := scaleToCover(img, width, height)

	pixmap, err := xproto.NewPixmapId(conn)
	if err != nil {
		return fmt.Errorf("failed to allocate pixmap id: %w", err)
	}
	if err := xproto.CreatePixmapChecked(conn, screen.RootDepth, pixmap,
		xproto.Drawable(root), uint16(width), uint16(height)).Check(); err != nil {
		return fmt.Errorf("failed to create %dx%d pixmap: %w", width, height, err)
	}

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		return fmt.Errorf("failed to allocate gc id: %w", err)
	}
	if err := xproto.CreateGCChecked(conn, gc, xproto.Drawable(pixmap), 0, nil).Check(); err != nil {
		return fmt.Errorf("failed to create gc: %w", err)
	}

	if err := putImage(conn, setup, pixmap, gc, screen.RootDepth, scaled); err != nil {
		return err
	}
	xproto.FreeGC(conn, gc)

	if err := retainPixmap(conn, root, pixmap); err != nil {
		return err
	}

	xproto.ChangeWindowAttributes(conn, root, xproto.CwBackPixmap, []uint32{uint32(pixmap)})
	if err := xproto.ClearAreaChecked(conn, false, root, 0, 0, 0, 0).Check(); err != nil {
		return fmt.Errorf("failed to repaint root window: %w", err)
	}

	// The pixmap must survive our exit or the desktop reverts on quit.
	xproto.SetCloseDownMode(conn, xproto.CloseDownRetainPermanent)
	return nil
}

// putImage uploads pixel rows in chunks below the server's request cap.
func putImage(conn *xgb.Conn, setup *xproto.SetupInfo, pixmap xproto.Pixmap, gc xproto.Gcontext, depth byte, img *image.RGBA) error {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	stride := width * 4
	msbFirst := setup.ImageByteOrder == 1

	// Room for the PutImage header within MaximumRequestLength 4-byte units.
	maxBytes := int(setup.MaximumRequestLength)*4 - 32
	rowsPerChunk := maxBytes / stride
	if rowsPerChunk < 1 {
		rowsPerChunk = 1
	}

	data := make([]byte, 0, stride*rowsPerChunk)
	for y := 0; y < height; y += rowsPerChunk {
		rows := rowsPerChunk
		if y+rows > height {
			rows = height - y
		}
		data = data[:0]
		for r := 0; r < rows; r++ {
			line := img.Pix[(y+r)*img.Stride : (y+r)*img.Stride+stride]
			data = appendZPixmapRow(data, line, msbFirst)
		}
		err := xproto.PutImageChecked(conn, xproto.ImageFormatZPixmap, xproto.Drawable(pixmap), gc,
			uint16(width), uint16(rows), 0, int16(y), 0, depth, data).Check()
		if err != nil {
			return fmt.Errorf("failed to upload wallpaper rows %d-%d: %w", y, y+rows-1, err)
		}
	}
	return nil
}

// appendZPixmapRow converts an RGBA row to the 32-bit ZPixmap layout the
// server expects, honoring its image byte order.
func appendZPixmapRow(dst, line []byte, msbFirst bool) []byte {
	for x := 0; x+3 < len(line); x += 4 {
		if msbFirst {
			dst = append(dst, 0, line[x], line[x+1], line[x+2])
		} else {
			dst = append(dst, line[x+2], line[x+1], line[x], 0)
		}
	}
	return dst
}

// retainPixmap publishes the pixmap through _XROOTPMAP_ID and
// ESETROOT_PMAP_ID and kills the client retaining the previous one, the
// protocol pseudo-transparent terminals and compositors expect.
func retainPixmap(conn *xgb.Conn, root xproto.Window, pixmap xproto.Pixmap) error {
	rootAtom, err := internAtom(conn, "_XROOTPMAP_ID")
	if err != nil {
		return err
	}
	esetAtom, err := internAtom(conn, "ESETROOT_PMAP_ID")
	if err != nil {
		return err
	}

	// A previously retained pixmap leaks server memory until its owner dies.
	// Only kill when both atoms agree, anything else may not be ours to free.
	if old, ok := pixmapProperty(conn, root, rootAtom); ok && old != 0 {
		if eset, ok2 := pixmapProperty(conn, root, esetAtom); ok2 && eset == old {
			xproto.KillClient(conn, uint32(old))
		}
	}

	buf := make([]byte, 4)
	xgb.Put32(buf, uint32(pixmap))
	for _, atom := range []xproto.Atom{rootAtom, esetAtom} {
		err := xproto.ChangePropertyChecked(conn, xproto.PropModeReplace, root, atom,
			xproto.AtomPixmap, 32, 1, buf).Check()
		if err != nil {
			return fmt.Errorf("failed to set root pixmap property: %w", err)
		}
	}
	return nil
}

func pixmapProperty(conn *xgb.Conn, root xproto.Window, atom xproto.Atom) (xproto.Pixmap, bool) {
	reply, err := xproto.GetProperty(conn, false, root, atom, xproto.AtomPixmap, 0, 1).Reply()
	if err != nil || reply == nil || reply.Format != 32 || len(reply.Value) < 4 {
		return 0, false
	}
	return xproto.Pixmap(xgb.Get32(reply.Value)), true
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern atom %s: %w", name, err)
	}
	return reply.Atom, nil
}
