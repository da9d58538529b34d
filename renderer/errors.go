package renderer

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a requested render size is non-positive or
// larger than any sane texture allocation.
var ErrInvalidSize = errors.New("invalid render size")

// maxRenderDim caps offscreen allocations well past every export preset.
const maxRenderDim = 16384

func validateSize(width, height int) error {
	if width <= 0 || height <= 0 || width > maxRenderDim || height > maxRenderDim {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

// BuildError reports a shader compile or link failure. The pattern sources
// are fixed at build time, so hitting one of these means the GL driver or
// version is unusable and the pattern cannot be rendered at all.
type BuildError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("shader build failed (%s): %s", e.Stage, e.Log)
}
