package imaging

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used when a caller passes a quality outside 1-100.
const DefaultJPEGQuality = 90

// JPEGPath returns path with ".jpg" appended unless it already ends in
// ".jpg" or ".jpeg" (case-insensitive).
func JPEGPath(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return path
	}
	return path + ".jpg"
}

// SaveJPEG encodes buf as JPEG at the given quality. The path is passed
// through JPEGPath first; the final path is returned.
func SaveJPEG(buf *Buffer, path string, quality int) (string, error) {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	path = JPEGPath(path)
	if err := imaging.Save(buf.ToNRGBA(), path, imaging.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("%w: failed to save image: %v", ErrIO, err)
	}
	return path, nil
}
