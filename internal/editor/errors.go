package editor

import (
	"errors"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
	"github.com/ironsheep/image-editor-mcp/internal/selection"
)

// ErrNoImageLoaded is returned by operations that need an image before one
// has been loaded. The session is left unchanged.
var ErrNoImageLoaded = errors.New("no image loaded")

// Notice turns an error from a session operation into the short message a
// user should see. It returns "" for a nil error.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoImageLoaded):
		return "Please load an image first."
	case errors.Is(err, selection.ErrIncomplete):
		return "Place all four points before applying to a selection."
	case errors.Is(err, imaging.ErrInvalidRegion):
		return "The selection does not cover any pixels. Select a larger area."
	case errors.Is(err, imaging.ErrIO):
		return "The image file could not be read or written."
	default:
		return "The operation failed."
	}
}
