package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrIO wraps every decode, encode and filesystem failure so callers can
// report it to the user without inspecting the underlying cause.
var ErrIO = errors.New("image I/O failure")

// DecodeOptions controls how raw images are decoded.
type DecodeOptions struct {
	// AutoOrient applies the EXIF orientation tag (JPEG only) after decoding.
	AutoOrient bool
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Path is the file the image was read from.
	Path string `json:"path"`

	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format guessed from the extension: "png", "jpeg", "gif",
	// "bmp", "tiff", "webp" or "unknown".
	Format string `json:"format"`

	// HasAlpha reports whether the decoded source had any non-opaque pixel.
	// Alpha is always discarded when the image is normalized.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Open decodes the image at path and normalizes it into an RGB buffer.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported. Every failure is wrapped
// with ErrIO.
func Open(path string, opts DecodeOptions) (*Buffer, *ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to stat image: %v", ErrIO, err)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to decode image: %v", ErrIO, err)
	}

	buf, err := FromImage(img)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	return buf, &ImageInfo{
		Path:          path,
		Width:         buf.Width(),
		Height:        buf.Height(),
		Format:        formatFromExt(path),
		HasAlpha:      hasAlpha(img),
		FileSizeBytes: stat.Size(),
	}, nil
}

// Decode reads an image from r and normalizes it into an RGB buffer.
func Decode(r io.Reader, opts DecodeOptions) (*Buffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %v", ErrIO, err)
	}
	buf, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return buf, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}

func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}
