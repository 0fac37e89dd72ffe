package editor

import (
	"image"

	"github.com/ironsheep/image-editor-mcp/internal/selection"
)

// Controls says which UI actions are currently available.
type Controls struct {
	SelectImage  bool `json:"select_image"`
	FilterChoice bool `json:"filter_choice"`
	Apply        bool `json:"apply"`
	Save         bool `json:"save"`
	Undo         bool `json:"undo"`
	Redo         bool `json:"redo"`
	Clear        bool `json:"clear"`
	Instructions bool `json:"instructions"`
}

// Controls reports control enablement. Apply needs an image and either no
// points or a complete selection. Clear follows the undo stack.
func (s *Session) Controls() Controls {
	n := s.tracker.Count()
	return Controls{
		SelectImage:  true,
		FilterChoice: s.Loaded(),
		Apply:        s.Loaded() && (n == 0 || n == selection.MaxPoints),
		Save:         s.Loaded(),
		Undo:         s.history.CanUndo(),
		Redo:         s.history.CanRedo(),
		Clear:        s.history.CanUndo(),
		Instructions: true,
	}
}

// Status summarizes the session for display.
type Status struct {
	Loaded      bool             `json:"loaded"`
	Source      string           `json:"source,omitempty"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	PanelWidth  int              `json:"panel_width"`
	PanelHeight int              `json:"panel_height"`
	Layout      selection.Layout `json:"layout"`
	Selection   string           `json:"selection"`
	Points      []image.Point    `json:"points"`
	UndoDepth   int              `json:"undo_depth"`
	RedoDepth   int              `json:"redo_depth"`
	Controls    Controls         `json:"controls"`
}

// Status returns a summary of the session.
func (s *Session) Status() Status {
	snap := s.tracker.Snapshot()
	pw, ph := s.PanelSize()
	st := Status{
		Loaded:      s.Loaded(),
		Source:      s.Source(),
		PanelWidth:  pw,
		PanelHeight: ph,
		Layout:      s.tracker.Layout(),
		Selection:   snap.State.String(),
		Points:      snap.Points,
		UndoDepth:   s.history.UndoDepth(),
		RedoDepth:   s.history.RedoDepth(),
		Controls:    s.Controls(),
	}
	if s.current != nil {
		st.Width, st.Height = s.current.Width(), s.current.Height()
	}
	return st
}

// InstructionsText is the help text shown to the user.
const InstructionsText = `Instructions
Load Image: choose an image file to edit.
Apply Filter: select a filter, then apply it.
Dots: left-click to add a corner point, right-click to remove the last one.
Reset Dots: left-click again after 4 dots to start over.
Undo/Redo: step backwards and forwards through applied filters.
Clear Filters: return to the image as loaded.
Save Image: write the result as JPEG.`

// Instructions returns the help text.
func (s *Session) Instructions() string { return InstructionsText }
