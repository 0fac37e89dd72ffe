package editor

import (
	"log/slog"

	"github.com/ironsheep/image-editor-mcp/internal/filters"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegistry replaces the built-in filter registry.
func WithRegistry(r *filters.Registry) Option {
	return func(s *Session) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithPanelSize sets the display panel size. Zero in either dimension shows
// the image at 1:1.
func WithPanelSize(width, height int) Option {
	return func(s *Session) {
		s.panelW, s.panelH = max(width, 0), max(height, 0)
	}
}

// WithJPEGQuality sets the quality used by Save (1-100).
func WithJPEGQuality(q int) Option {
	return func(s *Session) {
		s.jpegQuality = q
	}
}

// WithAutoOrient applies EXIF orientation when loading files.
func WithAutoOrient(enabled bool) Option {
	return func(s *Session) {
		s.autoOrient = enabled
	}
}
