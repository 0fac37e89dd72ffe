package filters

import (
	"testing"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// solidBuffer creates a buffer filled with a single color
func solidBuffer(t *testing.T, width, height int, c imaging.RGB) *imaging.Buffer {
	t.Helper()
	buf, err := imaging.NewBuffer(width, height)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	buf.Fill(c)
	return buf
}

// gradientBuffer creates a buffer where each pixel encodes its own position
func gradientBuffer(t *testing.T, width, height int) *imaging.Buffer {
	t.Helper()
	buf, err := imaging.NewBuffer(width, height)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Put(x, y, imaging.RGB{R: uint8(x * 7), G: uint8(y * 11), B: uint8(x + y)})
		}
	}
	return buf
}

// assertAll fails unless every pixel of buf equals want
func assertAll(t *testing.T, buf *imaging.Buffer, want imaging.RGB) {
	t.Helper()
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if got := buf.RGBAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPerPixelKernels(t *testing.T) {
	tests := []struct {
		name   string
		kernel Kernel
		in     imaging.RGB
		want   imaging.RGB
	}{
		{"grayscale red", GrayscaleKernel, imaging.RGB{R: 255, G: 0, B: 0}, imaging.RGB{R: 85, G: 85, B: 85}},
		{"grayscale truncates", GrayscaleKernel, imaging.RGB{R: 1, G: 1, B: 0}, imaging.RGB{R: 0, G: 0, B: 0}},
		{"black-white above threshold", BlackWhiteKernel, imaging.RGB{R: 128, G: 128, B: 128}, imaging.White},
		{"black-white at threshold", BlackWhiteKernel, imaging.RGB{R: 127, G: 127, B: 127}, imaging.Black},
		{"black-white red", BlackWhiteKernel, imaging.RGB{R: 255, G: 0, B: 0}, imaging.Black},
		{"posterize", PosterizeKernel, imaging.RGB{R: 63, G: 64, B: 255}, imaging.RGB{R: 0, G: 64, B: 192}},
		{"posterize mid", PosterizeKernel, imaging.RGB{R: 127, G: 128, B: 191}, imaging.RGB{R: 64, G: 128, B: 128}},
		{"tint black", TintKernel(imaging.Cyan), imaging.RGB{R: 0, G: 0, B: 0}, imaging.RGB{R: 0, G: 127, B: 127}},
		{"tint white", TintKernel(imaging.Cyan), imaging.RGB{R: 255, G: 255, B: 255}, imaging.RGB{R: 127, G: 255, B: 255}},
		{"tint red", TintKernel(imaging.Cyan), imaging.RGB{R: 255, G: 0, B: 0}, imaging.RGB{R: 127, G: 127, B: 127}},
		{"color shift right", ColorShiftRightKernel, imaging.RGB{R: 10, G: 20, B: 30}, imaging.RGB{R: 30, G: 10, B: 20}},
		{"eliminate red", EliminateKernel(ChannelRed), imaging.RGB{R: 10, G: 20, B: 30}, imaging.RGB{R: 0, G: 20, B: 30}},
		{"eliminate green", EliminateKernel(ChannelGreen), imaging.RGB{R: 10, G: 20, B: 30}, imaging.RGB{R: 10, G: 0, B: 30}},
		{"eliminate blue", EliminateKernel(ChannelBlue), imaging.RGB{R: 10, G: 20, B: 30}, imaging.RGB{R: 10, G: 20, B: 0}},
		{"negative red", NegativeKernel, imaging.RGB{R: 255, G: 0, B: 0}, imaging.RGB{R: 0, G: 255, B: 255}},
		{"negative mid", NegativeKernel, imaging.RGB{R: 1, G: 128, B: 200}, imaging.RGB{R: 254, G: 127, B: 55}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := solidBuffer(t, 7, 5, tt.in)
			tt.kernel(buf)
			assertAll(t, buf, tt.want)
		})
	}
}

func TestColorShiftRight_ThreeTimesIsIdentity(t *testing.T) {
	buf := gradientBuffer(t, 20, 20)
	before := buf.Clone()

	for i := 0; i < 3; i++ {
		ColorShiftRightKernel(buf)
	}
	if !buf.Equal(before) {
		t.Error("three right shifts should restore the original channels")
	}
}

func TestNegative_Involution(t *testing.T) {
	buf := gradientBuffer(t, 20, 20)
	before := buf.Clone()

	NegativeKernel(buf)
	NegativeKernel(buf)
	if !buf.Equal(before) {
		t.Error("negative applied twice should be an identity")
	}
}

func TestMirror(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"even width", 10, 4},
		{"odd width", 9, 3},
		{"single column", 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := gradientBuffer(t, tt.width, tt.height)
			before := buf.Clone()

			MirrorKernel(buf)
			for y := 0; y < tt.height; y++ {
				for x := 0; x < tt.width; x++ {
					if got, want := buf.RGBAt(x, y), before.RGBAt(tt.width-1-x, y); got != want {
						t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
					}
				}
			}

			MirrorKernel(buf)
			if !buf.Equal(before) {
				t.Error("mirror applied twice should be an identity")
			}
		})
	}
}

func TestPixelate(t *testing.T) {
	buf := gradientBuffer(t, 25, 13)
	before := buf.Clone()

	PixelateKernel(buf)

	for y := 0; y < 13; y++ {
		for x := 0; x < 25; x++ {
			bx, by := x/PixelateBlockSize*PixelateBlockSize, y/PixelateBlockSize*PixelateBlockSize
			if got, want := buf.RGBAt(x, y), before.RGBAt(bx, by); got != want {
				t.Fatalf("pixel (%d,%d): got %v, want block origin (%d,%d) color %v", x, y, got, bx, by, want)
			}
		}
	}
}

func TestShowBorders_FlatImage(t *testing.T) {
	buf := solidBuffer(t, 6, 5, imaging.RGB{R: 200, G: 10, B: 10})
	ShowBordersKernel(buf)

	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			want := imaging.White
			if x == 0 || y == 0 || x == 5 || y == 4 {
				want = imaging.Black
			}
			if got := buf.RGBAt(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestShowBorders_DetectsEdge(t *testing.T) {
	// Left half black, right half white: the column just left of the split has
	// a large right-hand difference.
	buf := solidBuffer(t, 10, 6, imaging.Black)
	for y := 0; y < 6; y++ {
		for x := 5; x < 10; x++ {
			buf.Put(x, y, imaging.White)
		}
	}

	ShowBordersKernel(buf)

	if got := buf.RGBAt(4, 2); got != imaging.Black {
		t.Errorf("edge pixel: got %v, want black", got)
	}
	if got := buf.RGBAt(2, 2); got != imaging.White {
		t.Errorf("flat pixel left: got %v, want white", got)
	}
	if got := buf.RGBAt(7, 2); got != imaging.White {
		t.Errorf("flat pixel right: got %v, want white", got)
	}
}

func TestShowBorders_ThresholdIsStrict(t *testing.T) {
	// Score exactly 10 (right neighbour differs by 10 in red) stays white
	buf := solidBuffer(t, 5, 5, imaging.RGB{R: 100, G: 100, B: 100})
	for y := 0; y < 5; y++ {
		buf.Put(3, y, imaging.RGB{R: 110, G: 100, B: 100})
	}
	ShowBordersKernel(buf)

	if got := buf.RGBAt(2, 2); got != imaging.White {
		t.Errorf("score at threshold: got %v, want white", got)
	}
}

func TestShowBorders_TinyBufferAllBlack(t *testing.T) {
	buf := solidBuffer(t, 2, 2, imaging.White)
	ShowBordersKernel(buf)
	assertAll(t, buf, imaging.Black)
}

func TestKernels_Deterministic(t *testing.T) {
	r := Default()
	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			a := gradientBuffer(t, 23, 17)
			b := gradientBuffer(t, 23, 17)
			r.Apply(name, a)
			r.Apply(name, b)
			if !a.Equal(b) {
				t.Error("same input should give the same output")
			}
			if a.Width() != 23 || a.Height() != 17 {
				t.Errorf("dimensions changed: %dx%d", a.Width(), a.Height())
			}
		})
	}
}
