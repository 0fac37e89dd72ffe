package imaging

import (
	"fmt"
	"image"
)

// SubRegion extracts a rectangular region into a new, independent buffer.
//
// The region starts at (x, y) and spans w×h pixels. Both w and h must be
// positive and the whole rectangle must lie inside the buffer, otherwise
// ErrInvalidRegion is returned.
func (b *Buffer) SubRegion(x, y, w, h int) (*Buffer, error) {
	if err := b.checkRegion(image.Rect(x, y, x+w, y+h), w, h); err != nil {
		return nil, err
	}

	sub := newBuffer(w, h)
	for row := 0; row < h; row++ {
		src := b.Pix[b.offset(x, y+row):]
		copy(sub.Pix[row*sub.Stride:(row+1)*sub.Stride], src[:sub.Stride])
	}
	return sub, nil
}

// Crop is SubRegion expressed with an image.Rectangle.
func (b *Buffer) Crop(r image.Rectangle) (*Buffer, error) {
	return b.SubRegion(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// Blit overwrites the region of b starting at (atX, atY) with the pixels of
// src. Returns ErrInvalidRegion if src would extend past the edges of b.
func (b *Buffer) Blit(src *Buffer, atX, atY int) error {
	r := image.Rect(atX, atY, atX+src.width, atY+src.height)
	if err := b.checkRegion(r, src.width, src.height); err != nil {
		return err
	}

	for row := 0; row < src.height; row++ {
		dst := b.Pix[b.offset(atX, atY+row):]
		copy(dst[:src.Stride], src.Pix[row*src.Stride:(row+1)*src.Stride])
	}
	return nil
}

func (b *Buffer) checkRegion(r image.Rectangle, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: region size %dx%d must be positive", ErrInvalidRegion, w, h)
	}
	if !r.In(b.Bounds()) {
		return fmt.Errorf("%w: region (%d,%d)-(%d,%d) outside buffer bounds %dx%d",
			ErrInvalidRegion, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, b.width, b.height)
	}
	return nil
}
