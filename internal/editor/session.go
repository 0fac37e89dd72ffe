// Package editor holds the editing session: the loaded image, the
// selection, the filter registry and the undo/redo history.
//
// A Session has exactly one owner. It takes no locks, so callers must
// serialize access (the tool server handles one request at a time).
package editor

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/ironsheep/image-editor-mcp/internal/filters"
	"github.com/ironsheep/image-editor-mcp/internal/history"
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
	"github.com/ironsheep/image-editor-mcp/internal/logging"
	"github.com/ironsheep/image-editor-mcp/internal/selection"
)

// Session is one image being edited.
type Session struct {
	log      *slog.Logger
	registry *filters.Registry
	history  *history.History
	tracker  *selection.Tracker

	current  *imaging.Buffer
	original *imaging.Buffer
	info     *imaging.ImageInfo

	panelW, panelH int
	jpegQuality    int
	autoOrient     bool
}

// New returns a session with no image loaded.
func New(opts ...Option) *Session {
	s := &Session{
		log:         logging.Discard(),
		registry:    filters.Default(),
		history:     history.New(),
		tracker:     selection.NewTracker(selection.Layout{}),
		jpegQuality: imaging.DefaultJPEGQuality,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the session image with a copy of img, dropping any alpha.
// History and selection are reset.
func (s *Session) Load(img image.Image) error {
	buf, err := imaging.FromImage(img)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	s.install(buf, nil)
	return nil
}

// LoadFile decodes the image at path and loads it. On failure the session
// keeps its previous image.
func (s *Session) LoadFile(path string) (*imaging.ImageInfo, error) {
	buf, info, err := imaging.Open(path, imaging.DecodeOptions{AutoOrient: s.autoOrient})
	if err != nil {
		s.log.Warn("load failed", "path", path, "error", err)
		return nil, err
	}
	s.install(buf, info)
	return info, nil
}

func (s *Session) install(buf *imaging.Buffer, info *imaging.ImageInfo) {
	s.current = buf
	s.original = buf.Clone()
	s.info = info
	s.history.Reset()
	s.tracker.Reset()
	s.relayout()

	s.log.Info("image loaded", "width", buf.Width(), "height", buf.Height(), "source", s.Source())
}

// Resize sets the display panel size and recomputes the image placement.
// Zero in either dimension shows the image at 1:1.
func (s *Session) Resize(width, height int) {
	s.panelW, s.panelH = max(width, 0), max(height, 0)
	s.relayout()
	s.log.Debug("panel resized", "width", s.panelW, "height", s.panelH, "layout", s.tracker.Layout())
}

// PanelSize returns the effective panel size.
func (s *Session) PanelSize() (int, int) {
	if (s.panelW == 0 || s.panelH == 0) && s.current != nil {
		return s.current.Width(), s.current.Height()
	}
	return s.panelW, s.panelH
}

func (s *Session) relayout() {
	if s.current == nil {
		s.tracker.SetLayout(selection.Layout{})
		return
	}
	w, h := s.PanelSize()
	s.tracker.SetLayout(selection.Fit(w, h, s.current.Width(), s.current.Height()))
}

// Click forwards a display-space click to the selection.
func (s *Session) Click(pt image.Point, b selection.Button) selection.Transition {
	tr := s.tracker.Click(pt, b)
	s.log.Debug("click", "x", pt.X, "y", pt.Y, "button", b, "transition", tr, "points", s.tracker.Count())
	return tr
}

// ApplyFilter runs the named filter on the selected region, or on the whole
// image when no complete selection exists. The selection is cleared
// afterwards whatever the outcome.
//
// An unknown filter name still records a history entry but leaves the
// pixels untouched.
func (s *Session) ApplyFilter(id string) error {
	if s.current == nil {
		return ErrNoImageLoaded
	}
	defer s.tracker.Reset()

	var (
		region image.Rectangle
		scoped = s.tracker.Complete()
	)
	if scoped {
		r, err := s.tracker.ImageRegion(s.current.Width(), s.current.Height())
		if err != nil {
			s.log.Warn("selection rejected", "filter", id, "error", err)
			return fmt.Errorf("failed to apply %q: %w", id, err)
		}
		region = r
	}

	s.history.Record(s.current)

	kernel, ok := s.registry.Lookup(id)
	if !ok {
		s.log.Warn("unknown filter", "filter", id)
		return nil
	}

	if !scoped {
		kernel(s.current)
		s.log.Info("filter applied", "filter", id, "region", "all")
		return nil
	}

	sub, err := s.current.Crop(region)
	if err != nil {
		return fmt.Errorf("failed to apply %q: %w", id, err)
	}
	kernel(sub)
	if err := s.current.Blit(sub, region.Min.X, region.Min.Y); err != nil {
		return fmt.Errorf("failed to apply %q: %w", id, err)
	}
	s.log.Info("filter applied", "filter", id, "region", region)
	return nil
}

// Undo restores the state before the last edit. It reports false when
// there is nothing to undo.
func (s *Session) Undo() bool {
	if s.current == nil {
		return false
	}
	prev, ok := s.history.Undo(s.current)
	if !ok {
		return false
	}
	s.current = prev
	s.log.Info("undo", "undo_depth", s.history.UndoDepth(), "redo_depth", s.history.RedoDepth())
	return true
}

// Redo re-applies the last undone edit. It reports false when there is
// nothing to redo.
func (s *Session) Redo() bool {
	if s.current == nil {
		return false
	}
	next, ok := s.history.Redo(s.current)
	if !ok {
		return false
	}
	s.current = next
	s.log.Info("redo", "undo_depth", s.history.UndoDepth(), "redo_depth", s.history.RedoDepth())
	return true
}

// ClearFilters restores the image as loaded and resets history and
// selection. It reports false when no image is loaded.
func (s *Session) ClearFilters() bool {
	if s.original == nil {
		return false
	}
	s.current = s.original.Clone()
	s.history.Reset()
	s.tracker.Reset()
	s.log.Info("filters cleared")
	return true
}

// Save writes the current image as JPEG and returns the path written, which
// gains a ".jpg" suffix unless it already ends in .jpg or .jpeg.
func (s *Session) Save(path string) (string, error) {
	if s.current == nil {
		return "", ErrNoImageLoaded
	}
	out, err := imaging.SaveJPEG(s.current, path, s.jpegQuality)
	if err != nil {
		s.log.Error("save failed", "path", path, "error", err)
		return "", err
	}
	s.log.Info("image saved", "path", out, "quality", s.jpegQuality)
	return out, nil
}

// SampleColor reports the current color of the image pixel at (x, y).
func (s *Session) SampleColor(x, y int) (*imaging.ColorResult, error) {
	if s.current == nil {
		return nil, ErrNoImageLoaded
	}
	return imaging.SampleColor(s.current, x, y)
}

// Loaded reports whether an image is loaded.
func (s *Session) Loaded() bool { return s.current != nil }

// Current returns a copy of the image being edited, or nil.
func (s *Session) Current() *imaging.Buffer {
	if s.current == nil {
		return nil
	}
	return s.current.Clone()
}

// Original returns a copy of the image as loaded, or nil.
func (s *Session) Original() *imaging.Buffer {
	if s.original == nil {
		return nil
	}
	return s.original.Clone()
}

// Source returns the path the image was loaded from, if any.
func (s *Session) Source() string {
	if s.info == nil {
		return ""
	}
	return s.info.Path
}

// Info returns the metadata of the loaded file, or nil.
func (s *Session) Info() *imaging.ImageInfo { return s.info }

// Selection returns a snapshot of the selection.
func (s *Session) Selection() selection.Snapshot { return s.tracker.Snapshot() }

// Layout returns where the image is drawn in the panel.
func (s *Session) Layout() selection.Layout { return s.tracker.Layout() }

// Filters lists the filter names in display order.
func (s *Session) Filters() []string { return s.registry.Names() }

// HasFilter reports whether id names a registered filter.
func (s *Session) HasFilter(id string) bool { return s.registry.Has(id) }

// CanUndo reports whether Undo would succeed.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }
