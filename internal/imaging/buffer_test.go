package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// createSolidBuffer creates a buffer filled with a single color
func createSolidBuffer(t *testing.T, width, height int, c RGB) *Buffer {
	t.Helper()
	buf, err := NewBuffer(width, height)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	buf.Fill(c)
	return buf
}

// createPatternBuffer creates a buffer with different colors in each quadrant
func createPatternBuffer(t *testing.T, width, height int) *Buffer {
	t.Helper()
	buf, err := NewBuffer(width, height)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c RGB
			if x < width/2 && y < height/2 {
				c = Red // top-left
			} else if x >= width/2 && y < height/2 {
				c = RGB{0, 255, 0} // top-right
			} else if x < width/2 && y >= height/2 {
				c = RGB{0, 0, 255} // bottom-left
			} else {
				c = White // bottom-right
			}
			buf.Put(x, y, c)
		}
	}
	return buf
}

func TestNewBuffer(t *testing.T) {
	buf, err := NewBuffer(4, 3)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	if buf.Width() != 4 || buf.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", buf.Width(), buf.Height())
	}
	if len(buf.Pix) != 4*3*3 {
		t.Errorf("Pix length: got %d, want 36", len(buf.Pix))
	}
	if got := buf.RGBAt(3, 2); got != Black {
		t.Errorf("new buffer should be black, got %v", got)
	}
}

func TestNewBuffer_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBuffer(tt.w, tt.h); !errors.Is(err, ErrInvalidRegion) {
				t.Errorf("got %v, want ErrInvalidRegion", err)
			}
		})
	}
}

func TestSetRGB(t *testing.T) {
	buf := createSolidBuffer(t, 10, 10, Black)

	if err := buf.SetRGB(9, 9, RGB{1, 2, 3}); err != nil {
		t.Fatalf("SetRGB failed: %v", err)
	}
	if got := buf.RGBAt(9, 9); got != (RGB{1, 2, 3}) {
		t.Errorf("got %v, want {1 2 3}", got)
	}
}

func TestSetRGB_OutOfBounds(t *testing.T) {
	buf := createSolidBuffer(t, 10, 10, Black)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 5},
		{"negative y", 5, -1},
		{"x too large", 10, 5},
		{"y too large", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := buf.SetRGB(tt.x, tt.y, White); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("got %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	buf := createPatternBuffer(t, 20, 20)
	c := buf.Clone()

	if !c.Equal(buf) {
		t.Fatal("clone should equal source")
	}

	c.Put(0, 0, Black)
	if buf.RGBAt(0, 0) != Red {
		t.Error("mutating the clone changed the source")
	}
	if c.Equal(buf) {
		t.Error("Equal should detect the changed pixel")
	}
}

func TestEqual_DifferentSizes(t *testing.T) {
	a := createSolidBuffer(t, 10, 20, Black)
	b := createSolidBuffer(t, 20, 10, Black)
	if a.Equal(b) {
		t.Error("buffers of different shapes must not be equal")
	}
}

func TestFromImage_DropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 255})
	src.SetNRGBA(1, 0, color.NRGBA{200, 100, 50, 0})

	buf, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	if got := buf.RGBAt(0, 0); got != (RGB{200, 100, 50}) {
		t.Errorf("opaque pixel: got %v, want {200 100 50}", got)
	}
	// Fully transparent composites onto black
	if got := buf.RGBAt(1, 0); got != Black {
		t.Errorf("transparent pixel: got %v, want black", got)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	src.Set(10, 10, color.RGBA{9, 8, 7, 255})

	buf, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if buf.Width() != 4 || buf.Height() != 2 {
		t.Errorf("dimensions: got %dx%d, want 4x2", buf.Width(), buf.Height())
	}
	if got := buf.RGBAt(0, 0); got != (RGB{9, 8, 7}) {
		t.Errorf("origin pixel: got %v, want {9 8 7}", got)
	}
}

func TestFromImage_Gray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 3))
	src.SetGray(1, 1, color.Gray{Y: 77})

	buf, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if got := buf.RGBAt(1, 1); got != (RGB{77, 77, 77}) {
		t.Errorf("got %v, want {77 77 77}", got)
	}
}

func TestCopyFrom_SizeMismatch(t *testing.T) {
	buf := createSolidBuffer(t, 10, 10, Black)
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))

	if err := buf.CopyFrom(src); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("got %v, want ErrInvalidRegion", err)
	}
}

func TestToNRGBA(t *testing.T) {
	buf := createPatternBuffer(t, 8, 8)
	img := buf.ToNRGBA()

	if !img.Opaque() {
		t.Error("converted image should be opaque")
	}
	if got := img.NRGBAAt(7, 7); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("bottom-right: got %v, want white", got)
	}

	back, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if !back.Equal(buf) {
		t.Error("ToNRGBA then FromImage should round-trip")
	}
}

func TestBuffer_ImageInterface(t *testing.T) {
	buf := createSolidBuffer(t, 3, 3, RGB{10, 20, 30})

	var img image.Image = buf
	r, g, b, a := img.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a != 0xffff {
		t.Errorf("At: got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a)
	}
	if img.At(5, 5) != Black {
		t.Error("At outside bounds should read black")
	}
	if got := img.ColorModel().Convert(color.NRGBA{1, 2, 3, 255}); got != (RGB{1, 2, 3}) {
		t.Errorf("ColorModel.Convert: got %v", got)
	}
}
