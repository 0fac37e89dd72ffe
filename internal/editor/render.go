package editor

import (
	"github.com/ironsheep/image-editor-mcp/internal/render"
)

// Render draws the panel as the user would see it: the image placed by the
// current layout plus the selection overlay. Without an image the panel is
// empty background.
func (s *Session) Render(style render.Style) (*render.FrameResult, error) {
	w, h := s.PanelSize()
	return render.Frame(s.current, s.tracker.Layout(), w, h, s.tracker.Snapshot(), style)
}
