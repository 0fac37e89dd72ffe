package filters

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// BlurRadius is the Gaussian radius used by BlurKernel.
const BlurRadius = 3.0

// effectKernel adapts a bild transform into an in-place kernel. bild returns
// a new image of the same size, which is copied back over the buffer.
func effectKernel(fn func(image.Image) *image.RGBA) Kernel {
	return func(buf *imaging.Buffer) {
		out := fn(buf)
		// bild preserves the source bounds, so the sizes always match.
		_ = buf.CopyFrom(out)
	}
}

// BlurKernel applies a Gaussian blur.
var BlurKernel = effectKernel(func(img image.Image) *image.RGBA {
	return blur.Gaussian(img, BlurRadius)
})

// SharpenKernel applies a 3x3 sharpening convolution.
var SharpenKernel = effectKernel(effect.Sharpen)

// SepiaKernel applies a sepia tone.
var SepiaKernel = effectKernel(effect.Sepia)

// EmbossKernel applies an emboss convolution.
var EmbossKernel = effectKernel(effect.Emboss)
