package selection

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// MaxPoints is the number of clicks that completes a selection.
const MaxPoints = 4

var (
	// ErrIncomplete is returned when a region is requested before all four
	// points have been placed.
	ErrIncomplete = errors.New("selection is not complete")

	// ErrInvalidRegion is returned when the selection maps to an empty or
	// out-of-image rectangle.
	ErrInvalidRegion = fmt.Errorf("selection: %w", imaging.ErrInvalidRegion)
)

// State is the phase of the selection.
type State int

const (
	Empty    State = iota // no points
	Partial               // 1 to 3 points
	Complete              // 4 points
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Button identifies the mouse button of a click.
type Button int

const (
	Primary Button = iota
	Secondary
)

func (b Button) String() string {
	if b == Secondary {
		return "secondary"
	}
	return "primary"
}

// ParseButton accepts "primary"/"left" and "secondary"/"right". The empty
// string means primary.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "primary", "left":
		return Primary, nil
	case "secondary", "right":
		return Secondary, nil
	default:
		return Primary, fmt.Errorf("unknown button %q", s)
	}
}

// Transition describes what a click did to the selection.
type Transition int

const (
	Ignored   Transition = iota // click had no effect
	Added                       // point appended, selection still partial
	Completed                   // fourth point appended
	Cleared                     // primary click on a complete selection
	Removed                     // secondary click removed the last point
)

func (t Transition) String() string {
	switch t {
	case Ignored:
		return "ignored"
	case Added:
		return "added"
	case Completed:
		return "completed"
	case Cleared:
		return "cleared"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("Transition(%d)", int(t))
	}
}

// Snapshot is a read-only copy of the tracker state.
type Snapshot struct {
	State  State
	Points []image.Point
	Bounds image.Rectangle
}

// Tracker collects up to four display-space points and turns them into a
// rectangular image-space region.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	layout Layout
	points []image.Point
}

// NewTracker returns an empty tracker using layout for hit testing.
func NewTracker(layout Layout) *Tracker {
	return &Tracker{layout: layout, points: make([]image.Point, 0, MaxPoints)}
}

// SetLayout replaces the layout used for hit testing and mapping. Recorded
// points are kept as they are.
func (t *Tracker) SetLayout(l Layout) {
	t.layout = l
}

// Layout returns the current layout.
func (t *Tracker) Layout() Layout {
	return t.layout
}

// Click applies a mouse click at pt.
func (t *Tracker) Click(pt image.Point, b Button) Transition {
	switch b {
	case Secondary:
		if len(t.points) == 0 {
			return Ignored
		}
		t.points = t.points[:len(t.points)-1]
		return Removed

	default:
		if len(t.points) == MaxPoints {
			t.Reset()
			return Cleared
		}
		if !t.layout.Contains(pt) {
			return Ignored
		}
		t.points = append(t.points, pt)
		if len(t.points) == MaxPoints {
			return Completed
		}
		return Added
	}
}

// State returns the current phase.
func (t *Tracker) State() State {
	switch len(t.points) {
	case 0:
		return Empty
	case MaxPoints:
		return Complete
	default:
		return Partial
	}
}

// Count returns the number of recorded points.
func (t *Tracker) Count() int { return len(t.points) }

// Complete reports whether four points are recorded.
func (t *Tracker) Complete() bool { return len(t.points) == MaxPoints }

// Points returns a copy of the recorded points in click order.
func (t *Tracker) Points() []image.Point {
	out := make([]image.Point, len(t.points))
	copy(out, t.points)
	return out
}

// Reset drops all points.
func (t *Tracker) Reset() {
	t.points = t.points[:0]
}

// Bounds returns the display-space bounding box of the recorded points. The
// width and height are the coordinate spans (maxX-minX, maxY-minY).
func (t *Tracker) Bounds() image.Rectangle {
	if len(t.points) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: t.points[0], Max: t.points[0]}
	for _, p := range t.points[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// ImageRegion maps the completed selection into the pixel space of an
// imgW x imgH image.
func (t *Tracker) ImageRegion(imgW, imgH int) (image.Rectangle, error) {
	if !t.Complete() {
		return image.Rectangle{}, ErrIncomplete
	}

	r := t.layout.ToImage(t.Bounds(), imgW, imgH)
	if r.Empty() || !r.In(image.Rect(0, 0, imgW, imgH)) {
		return image.Rectangle{}, fmt.Errorf("%w: %v in %dx%d image", ErrInvalidRegion, r, imgW, imgH)
	}
	return r, nil
}

// Snapshot returns a copy of the tracker state.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{State: t.State(), Points: t.Points(), Bounds: t.Bounds()}
}
