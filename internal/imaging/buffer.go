package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrOutOfBounds is returned when a pixel coordinate lies outside the buffer.
	ErrOutOfBounds = errors.New("pixel coordinate out of bounds")

	// ErrInvalidRegion is returned when a rectangle is empty or does not fit
	// inside the buffer it is applied to.
	ErrInvalidRegion = errors.New("invalid region")
)

// Buffer is an owned, opaque RGB raster: the unit of editor image state.
//
// Pixels are stored row-major as packed R, G, B bytes. The pixel at (x, y)
// starts at Pix[y*Stride + x*3]. Channels are uint8, so every value is
// always within [0,255].
//
// Buffer implements image.Image with an opaque color model so it can be
// handed to encoders, resizers and effect libraries directly. A Buffer is
// never shared: every copy made by Clone or SubRegion has independent
// storage.
type Buffer struct {
	Pix    []uint8
	Stride int
	width  int
	height int
}

// NewBuffer allocates a black buffer of the given size.
//
// Returns ErrInvalidRegion if width or height is not positive.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidRegion, width, height)
	}
	return newBuffer(width, height), nil
}

func newBuffer(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]uint8, 3*width*height),
		Stride: 3 * width,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return RGBModel }

// Bounds implements image.Image. The origin is always (0,0).
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// At implements image.Image. Coordinates outside the buffer read as black.
func (b *Buffer) At(x, y int) color.Color {
	if !b.inside(x, y) {
		return Black
	}
	return b.RGBAt(x, y)
}

// RGBAt returns the pixel at (x, y). The caller must pass a coordinate
// inside the buffer.
func (b *Buffer) RGBAt(x, y int) RGB {
	i := b.offset(x, y)
	p := b.Pix[i : i+3 : i+3]
	return RGB{R: p[0], G: p[1], B: p[2]}
}

// SetRGB writes the pixel at (x, y).
func (b *Buffer) SetRGB(x, y int, c RGB) error {
	if !b.inside(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	b.set(x, y, c)
	return nil
}

// set writes without bounds checking; kernels iterate known ranges.
func (b *Buffer) set(x, y int, c RGB) {
	i := b.offset(x, y)
	p := b.Pix[i : i+3 : i+3]
	p[0], p[1], p[2] = c.R, c.G, c.B
}

// Put is the unchecked form of SetRGB for pixel kernels that already
// iterate inside the buffer bounds.
func (b *Buffer) Put(x, y int, c RGB) { b.set(x, y, c) }

// Fill paints every pixel with c.
func (b *Buffer) Fill(c RGB) {
	for i := 0; i < len(b.Pix); i += 3 {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2] = c.R, c.G, c.B
	}
}

// Clone returns a deep copy with independent storage.
func (b *Buffer) Clone() *Buffer {
	c := newBuffer(b.width, b.height)
	copy(c.Pix, b.Pix)
	return c
}

// Equal reports whether both buffers have the same size and identical pixels.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.width == other.width && b.height == other.height && bytes.Equal(b.Pix, other.Pix)
}

// FromImage normalizes any decoded image into an opaque RGB buffer.
//
// Alpha is discarded by compositing onto black: each 8-bit channel is the
// premultiplied 16-bit channel shifted down, which is what drawing a
// translucent image onto a fresh opaque canvas produces. The result always
// starts at (0,0) regardless of the source bounds.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := NewBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	buf.copyFrom(img)
	return buf, nil
}

// CopyFrom overwrites the buffer with img, which must have the same size.
// Alpha is dropped the same way FromImage drops it.
func (b *Buffer) CopyFrom(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() != b.width || bounds.Dy() != b.height {
		return fmt.Errorf("%w: source %dx%d does not match buffer %dx%d",
			ErrInvalidRegion, bounds.Dx(), bounds.Dy(), b.width, b.height)
	}
	b.copyFrom(img)
	return nil
}

func (b *Buffer) copyFrom(img image.Image) {
	bounds := img.Bounds()
	switch src := img.(type) {
	case *Buffer:
		copy(b.Pix, src.Pix)
	case *image.RGBA:
		for y := 0; y < b.height; y++ {
			row := src.Pix[(y+bounds.Min.Y-src.Rect.Min.Y)*src.Stride+(bounds.Min.X-src.Rect.Min.X)*4:]
			dst := b.Pix[y*b.Stride : (y+1)*b.Stride]
			for x, j := 0, 0; x < b.width; x, j = x+1, j+4 {
				dst[x*3], dst[x*3+1], dst[x*3+2] = row[j], row[j+1], row[j+2]
			}
		}
	default:
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				r, g, bl, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				b.set(x, y, RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)})
			}
		}
	}
}

// ToNRGBA converts the buffer into a fully opaque *image.NRGBA.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(b.Bounds())
	for y := 0; y < b.height; y++ {
		src := b.Pix[y*b.Stride : (y+1)*b.Stride]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.width*4]
		for x := 0; x < b.width; x++ {
			row[x*4], row[x*4+1], row[x*4+2], row[x*4+3] = src[x*3], src[x*3+1], src[x*3+2], 0xff
		}
	}
	return dst
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) offset(x, y int) int {
	return y*b.Stride + x*3
}
