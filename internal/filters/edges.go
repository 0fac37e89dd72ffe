package filters

import (
	"math"

	"github.com/anthonynsimon/bild/blur"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// Canny thresholds used by EdgeDetectKernel, on the 0-255 gradient scale.
// Gradients above EdgeHigh are strong edges; those between EdgeLow and
// EdgeHigh survive only next to a strong edge.
const (
	EdgeLow   = 50
	EdgeHigh  = 150
	edgeSigma = 1.4
)

// EdgeDetectKernel replaces the buffer with a Canny edge map: white edges on
// black. Border pixels are always black.
func EdgeDetectKernel(buf *imaging.Buffer) {
	w, h := buf.Width(), buf.Height()

	// Luminance of the smoothed image, ITU-R BT.601 weights
	smooth := blur.Gaussian(buf, edgeSigma)
	lum := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := smooth.RGBAAt(x, y)
			lum[y*w+x] = (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
		}
	}

	mag, dir := sobel(lum, w, h)
	thin := suppress(mag, dir, w, h)

	low, high := float64(EdgeLow)/255, float64(EdgeHigh)/255
	black, white := imaging.RGB{}, imaging.RGB{R: 255, G: 255, B: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := thin[y*w+x]
			edge := v >= high || (v >= low && strongNeighbor(thin, x, y, w, h, high))
			if edge {
				buf.Put(x, y, white)
			} else {
				buf.Put(x, y, black)
			}
		}
	}
}

var (
	sobelX = [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY = [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

// sobel returns gradient magnitude and direction, replicating edge pixels.
func sobel(lum []float64, w, h int) (mag, dir []float64) {
	mag = make([]float64, w*h)
	dir = make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := lum[clampInt(y+ky, 0, h-1)*w+clampInt(x+kx, 0, w-1)]
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			mag[y*w+x] = math.Hypot(gx, gy)
			dir[y*w+x] = math.Atan2(gy, gx)
		}
	}
	return mag, dir
}

// suppress keeps only magnitudes that are local maxima along the gradient.
func suppress(mag, dir []float64, w, h int) []float64 {
	out := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			var n1, n2 float64
			switch a := dir[i]; {
			case math.Abs(a) < math.Pi/8 || math.Abs(a) >= 7*math.Pi/8:
				n1, n2 = mag[i-1], mag[i+1]
			case (a >= math.Pi/8 && a < 3*math.Pi/8) || (a >= -7*math.Pi/8 && a < -5*math.Pi/8):
				n1, n2 = mag[i-w+1], mag[i+w-1]
			case math.Abs(a) >= 3*math.Pi/8 && math.Abs(a) < 5*math.Pi/8:
				n1, n2 = mag[i-w], mag[i+w]
			default:
				n1, n2 = mag[i-w-1], mag[i+w+1]
			}
			if mag[i] >= n1 && mag[i] >= n2 {
				out[i] = mag[i]
			}
		}
	}
	return out
}

func strongNeighbor(thin []float64, x, y, w, h int, high float64) bool {
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			if thin[clampInt(y+ky, 0, h-1)*w+clampInt(x+kx, 0, w-1)] >= high {
				return true
			}
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
