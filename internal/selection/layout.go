package selection

import "image"

// Layout is the letterboxed placement of an image inside the display panel.
// All values are in display (panel) pixels.
type Layout struct {
	DrawWidth  int `json:"draw_width"`
	DrawHeight int `json:"draw_height"`
	ImageX     int `json:"image_x"`
	ImageY     int `json:"image_y"`
}

// Fit scales an imgW x imgH image to fit a panelW x panelH panel while
// keeping its aspect ratio, and centers it. The zero Layout is returned when
// either size is empty.
func Fit(panelW, panelH, imgW, imgH int) Layout {
	if panelW <= 0 || panelH <= 0 || imgW <= 0 || imgH <= 0 {
		return Layout{}
	}

	imgAspect := float64(imgW) / float64(imgH)
	panelAspect := float64(panelW) / float64(panelH)

	l := Layout{DrawWidth: panelW, DrawHeight: panelH}
	if panelAspect > imgAspect {
		// Panel is wider than the image: pillarbox.
		l.DrawWidth = int(float64(panelH) * imgAspect)
	} else {
		// Panel is taller than (or matches) the image: letterbox.
		l.DrawHeight = int(float64(panelW) / imgAspect)
	}
	l.ImageX = (panelW - l.DrawWidth) / 2
	l.ImageY = (panelH - l.DrawHeight) / 2
	return l
}

// Empty reports whether the layout has no drawable area.
func (l Layout) Empty() bool {
	return l.DrawWidth <= 0 || l.DrawHeight <= 0
}

// Rect returns the drawn image area in display space.
func (l Layout) Rect() image.Rectangle {
	return image.Rect(l.ImageX, l.ImageY, l.ImageX+l.DrawWidth, l.ImageY+l.DrawHeight)
}

// Contains reports whether pt lies on the drawn image. The far edges are
// inclusive, so a click on the last display column or row still counts.
func (l Layout) Contains(pt image.Point) bool {
	if l.Empty() {
		return false
	}
	return pt.X >= l.ImageX && pt.X <= l.ImageX+l.DrawWidth &&
		pt.Y >= l.ImageY && pt.Y <= l.ImageY+l.DrawHeight
}

// ToImage maps a display-space rectangle into image space for an image of
// imgW x imgH pixels. Integer arithmetic truncates toward zero.
func (l Layout) ToImage(r image.Rectangle, imgW, imgH int) image.Rectangle {
	if l.Empty() {
		return image.Rectangle{}
	}
	x := (r.Min.X - l.ImageX) * imgW / l.DrawWidth
	y := (r.Min.Y - l.ImageY) * imgH / l.DrawHeight
	w := r.Dx() * imgW / l.DrawWidth
	h := r.Dy() * imgH / l.DrawHeight
	return image.Rect(x, y, x+w, y+h)
}
