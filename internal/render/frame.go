// Package render draws what the editor panel shows: the letterboxed image
// plus the selection overlay.
package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	dimaging "github.com/disintegration/imaging"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
	"github.com/ironsheep/image-editor-mcp/internal/selection"
)

// ErrEmptyPanel is returned when the panel has no area to draw in.
var ErrEmptyPanel = errors.New("panel has no area")

// Style controls overlay appearance. Colors are hex strings.
type Style struct {
	Background   string
	Marker       string
	MarkerRadius int
	Labels       bool // draw "x,y" next to each point
}

// DefaultStyle matches the editor panel: light gray background, red markers
// of radius 5.
func DefaultStyle() Style {
	return Style{
		Background:   "#EEEEEE",
		Marker:       "#FF0000",
		MarkerRadius: 5,
	}
}

// FrameResult contains the rendered panel
type FrameResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Selection   string `json:"selection"`
	Points      int    `json:"points"`
}

// Frame renders buf into a panelW x panelH canvas at the position given by
// layout, then draws the selection overlay: a filled marker per point while
// fewer than four points exist, or the bounding rectangle once complete.
// A nil buf renders an empty panel.
func Frame(buf *imaging.Buffer, layout selection.Layout, panelW, panelH int, sel selection.Snapshot, style Style) (*FrameResult, error) {
	canvas, err := Canvas(buf, layout, panelW, panelH, sel, style)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := png.Encode(&out, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}

	return &FrameResult{
		Width:       panelW,
		Height:      panelH,
		ImageBase64: base64.StdEncoding.EncodeToString(out.Bytes()),
		MimeType:    "image/png",
		Selection:   sel.State.String(),
		Points:      len(sel.Points),
	}, nil
}

// Canvas is Frame without the PNG encoding.
func Canvas(buf *imaging.Buffer, layout selection.Layout, panelW, panelH int, sel selection.Snapshot, style Style) (*image.NRGBA, error) {
	if panelW <= 0 || panelH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyPanel, panelW, panelH)
	}

	defaults := DefaultStyle()
	bg := styleColor(style.Background, defaults.Background)
	marker := styleColor(style.Marker, defaults.Marker)
	radius := style.MarkerRadius
	if radius <= 0 {
		radius = defaults.MarkerRadius
	}

	canvas := dimaging.New(panelW, panelH, bg)
	if buf != nil && !layout.Empty() {
		scaled := dimaging.Resize(buf, layout.DrawWidth, layout.DrawHeight, dimaging.NearestNeighbor)
		canvas = dimaging.Paste(canvas, scaled, image.Pt(layout.ImageX, layout.ImageY))
	}

	if sel.State == selection.Complete {
		strokeRect(canvas, sel.Bounds, marker)
		return canvas, nil
	}

	for _, p := range sel.Points {
		fillCircle(canvas, p, radius, marker)
		if style.Labels {
			drawLabel(canvas, p.X+radius+1, p.Y+radius+1, fmt.Sprintf("%d,%d", p.X, p.Y),
				color.NRGBA{255, 255, 255, 255}, color.NRGBA{0, 0, 0, 255})
		}
	}
	return canvas, nil
}

// styleColor parses hex, falling back to def when it is not a valid color.
func styleColor(hex, def string) color.NRGBA {
	c, err := imaging.ParseHexColor(hex)
	if err != nil {
		c, _ = imaging.ParseHexColor(def)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// fillCircle fills every pixel within radius of center.
func fillCircle(img *image.NRGBA, center image.Point, radius int, c color.NRGBA) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				setClipped(img, center.X+dx, center.Y+dy, c)
			}
		}
	}
}

// strokeRect draws a 1px outline covering r.Min through r.Max inclusive.
func strokeRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for x := r.Min.X; x <= r.Max.X; x++ {
		setClipped(img, x, r.Min.Y, c)
		setClipped(img, x, r.Max.Y, c)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		setClipped(img, r.Min.X, y, c)
		setClipped(img, r.Max.X, y, c)
	}
}

func setClipped(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Rect) {
		img.SetNRGBA(x, y, c)
	}
}
