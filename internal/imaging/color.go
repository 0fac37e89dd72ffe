package imaging

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 24-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Common colors used by kernels and overlays.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Cyan  = RGB{0, 255, 255}
)

// RGBA implements color.Color. Alpha is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// Hex returns the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBModel converts any color to RGB by dropping alpha over black.
var RGBModel = color.ModelFunc(func(c color.Color) color.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
})

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a sampled pixel in several representations.
type ColorResult struct {
	X   int      `json:"x"`
	Y   int      `json:"y"`
	Hex string   `json:"hex"`
	RGB RGB      `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// SampleColor returns the color of the pixel at (x, y) in image space.
//
// Returns ErrOutOfBounds if the coordinate is outside the buffer.
func SampleColor(buf *Buffer, x, y int) (*ColorResult, error) {
	if !buf.inside(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) outside image %dx%d", ErrOutOfBounds, x, y, buf.width, buf.height)
	}

	c := buf.RGBAt(x, y)
	return &ColorResult{
		X:   x,
		Y:   y,
		Hex: c.Hex(),
		RGB: c,
		HSL: toHSL(c),
	}, nil
}

// ParseHexColor parses "#RGB" or "#RRGGBB" (the leading '#' is optional).
func ParseHexColor(hex string) (RGB, error) {
	if hex == "" {
		return RGB{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func toHSL(c RGB) HSLColor {
	cf, _ := colorful.MakeColor(c)
	h, s, l := cf.Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
