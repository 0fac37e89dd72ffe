package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawLabel draws text on a filled background box with its top-left corner
// at (x, y). The box is clipped to the canvas.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	box := image.Rect(x-1, y-1, x+width+1, y+height+1).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + metrics.Ascent},
	}
	d.DrawString(text)
}
