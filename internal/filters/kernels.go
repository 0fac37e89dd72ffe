package filters

import (
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// Kernel parameters.
const (
	// PosterizeLevels is the number of output steps per channel.
	PosterizeLevels = 4

	// PixelateBlockSize is the edge length of each pixelation block.
	PixelateBlockSize = 10

	// BorderThreshold is the edge score above which Show Borders emits black.
	BorderThreshold = 10
)

// Channel names a color channel for EliminateKernel.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

// mapPixels replaces every pixel with fn(pixel).
func mapPixels(buf *imaging.Buffer, fn func(c imaging.RGB) imaging.RGB) {
	pix := buf.Pix
	for i := 0; i+2 < len(pix); i += 3 {
		out := fn(imaging.RGB{R: pix[i], G: pix[i+1], B: pix[i+2]})
		pix[i], pix[i+1], pix[i+2] = out.R, out.G, out.B
	}
}

// average is (R+G+B)/3 with integer division.
func average(c imaging.RGB) uint8 {
	return uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
}

// BlackWhiteKernel thresholds the channel average at 127.
func BlackWhiteKernel(buf *imaging.Buffer) {
	mapPixels(buf, func(c imaging.RGB) imaging.RGB {
		if average(c) > 127 {
			return imaging.White
		}
		return imaging.Black
	})
}

// GrayscaleKernel sets every channel to the channel average.
func GrayscaleKernel(buf *imaging.Buffer) {
	mapPixels(buf, func(c imaging.RGB) imaging.RGB {
		g := average(c)
		return imaging.RGB{R: g, G: g, B: g}
	})
}

// PosterizeKernel quantizes each channel down to PosterizeLevels steps.
func PosterizeKernel(buf *imaging.Buffer) {
	const step = 256 / PosterizeLevels
	q := func(v uint8) uint8 { return uint8(int(v) / step * step) }
	mapPixels(buf, func(c imaging.RGB) imaging.RGB {
		return imaging.RGB{R: q(c.R), G: q(c.G), B: q(c.B)}
	})
}

// TintKernel averages every channel with the matching channel of tint.
func TintKernel(tint imaging.RGB) Kernel {
	mix := func(v, t uint8) uint8 {
		return uint8(min((int(v)+int(t))/2, 255))
	}
	return func(buf *imaging.Buffer) {
		mapPixels(buf, func(c imaging.RGB) imaging.RGB {
			return imaging.RGB{R: mix(c.R, tint.R), G: mix(c.G, tint.G), B: mix(c.B, tint.B)}
		})
	}
}

// ColorShiftRightKernel rotates channels: R takes B, G takes R, B takes G.
func ColorShiftRightKernel(buf *imaging.Buffer) {
	mapPixels(buf, func(c imaging.RGB) imaging.RGB {
		return imaging.RGB{R: c.B, G: c.R, B: c.G}
	})
}

// MirrorKernel flips the buffer horizontally.
func MirrorKernel(buf *imaging.Buffer) {
	w := buf.Width()
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < w/2; x++ {
			left, right := buf.RGBAt(x, y), buf.RGBAt(w-1-x, y)
			buf.Put(x, y, right)
			buf.Put(w-1-x, y, left)
		}
	}
}

// PixelateKernel fills each block with the color of its top-left pixel.
// Blocks on the right and bottom edges are clipped.
func PixelateKernel(buf *imaging.Buffer) {
	w, h := buf.Width(), buf.Height()
	for by := 0; by < h; by += PixelateBlockSize {
		for bx := 0; bx < w; bx += PixelateBlockSize {
			c := buf.RGBAt(bx, by)
			for y := by; y < min(by+PixelateBlockSize, h); y++ {
				for x := bx; x < min(bx+PixelateBlockSize, w); x++ {
					buf.Put(x, y, c)
				}
			}
		}
	}
}

// ShowBordersKernel marks edges black and flat areas white.
//
// Each interior pixel is scored against its right and lower neighbours; the
// result is written into a fresh black buffer that then replaces the input
// wholesale, so the outermost row and column on every side end up black.
func ShowBordersKernel(buf *imaging.Buffer) {
	w, h := buf.Width(), buf.Height()
	edges, _ := imaging.NewBuffer(w, h)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			c := buf.RGBAt(x, y)
			right := buf.RGBAt(x+1, y)
			down := buf.RGBAt(x, y+1)

			score := absDiff(c.R, right.R) + absDiff(c.G, right.G) + absDiff(c.B, right.B) +
				absDiff(c.R, down.R) + absDiff(c.G, down.G) + absDiff(c.B, down.B)

			if score > BorderThreshold {
				edges.Put(x, y, imaging.Black)
			} else {
				edges.Put(x, y, imaging.White)
			}
		}
	}

	copy(buf.Pix, edges.Pix)
}

// EliminateKernel zeroes one channel and leaves the others unchanged.
func EliminateKernel(ch Channel) Kernel {
	return func(buf *imaging.Buffer) {
		mapPixels(buf, func(c imaging.RGB) imaging.RGB {
			switch ch {
			case ChannelRed:
				c.R = 0
			case ChannelGreen:
				c.G = 0
			case ChannelBlue:
				c.B = 0
			}
			return c
		})
	}
}

// NegativeKernel inverts every channel.
func NegativeKernel(buf *imaging.Buffer) {
	mapPixels(buf, func(c imaging.RGB) imaging.RGB {
		return imaging.RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	})
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
