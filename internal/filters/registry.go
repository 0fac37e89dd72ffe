package filters

import (
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// Kernel transforms a buffer in place. Kernels are deterministic, hold no
// state between calls and cannot fail on a valid buffer.
type Kernel func(buf *imaging.Buffer)

// Filter identifiers. The first ten match the filter choices of the editor
// UI in display order.
const (
	BlackWhite      = "Black-White"
	Grayscale       = "Grayscale"
	Posterize       = "Posterize"
	Tint            = "Tint"
	ColorShiftRight = "Color Shift Right"
	Mirror          = "Mirror"
	Pixelate        = "Pixelate"
	ShowBorders     = "Show Borders"
	EliminateRed    = "Eliminate Red"
	Negative        = "Negative"

	EliminateGreen = "Eliminate Green"
	EliminateBlue  = "Eliminate Blue"
	Blur           = "Blur"
	Sharpen        = "Sharpen"
	Sepia          = "Sepia"
	Emboss         = "Emboss"
	EdgeDetect     = "Edge Detect"
)

// Registry maps filter identifiers to kernels and remembers registration
// order for listing.
type Registry struct {
	kernels map[string]Kernel
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kernels: make(map[string]Kernel)}
}

// Default returns a registry holding every built-in kernel.
func Default() *Registry {
	r := NewRegistry()
	r.Register(BlackWhite, BlackWhiteKernel)
	r.Register(Grayscale, GrayscaleKernel)
	r.Register(Posterize, PosterizeKernel)
	r.Register(Tint, TintKernel(imaging.Cyan))
	r.Register(ColorShiftRight, ColorShiftRightKernel)
	r.Register(Mirror, MirrorKernel)
	r.Register(Pixelate, PixelateKernel)
	r.Register(ShowBorders, ShowBordersKernel)
	r.Register(EliminateRed, EliminateKernel(ChannelRed))
	r.Register(Negative, NegativeKernel)

	r.Register(EliminateGreen, EliminateKernel(ChannelGreen))
	r.Register(EliminateBlue, EliminateKernel(ChannelBlue))
	r.Register(Blur, BlurKernel)
	r.Register(Sharpen, SharpenKernel)
	r.Register(Sepia, SepiaKernel)
	r.Register(Emboss, EmbossKernel)
	r.Register(EdgeDetect, EdgeDetectKernel)
	return r
}

// Register adds or replaces the kernel for id. Replacing keeps the original
// position in Names.
func (r *Registry) Register(id string, k Kernel) {
	if _, ok := r.kernels[id]; !ok {
		r.order = append(r.order, id)
	}
	r.kernels[id] = k
}

// Lookup returns the kernel registered for id.
func (r *Registry) Lookup(id string) (Kernel, bool) {
	k, ok := r.kernels[id]
	return k, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.kernels[id]
	return ok
}

// Names lists registered identifiers in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Apply runs the kernel registered for id on buf. An unknown id leaves buf
// untouched and returns false; it is not an error.
func (r *Registry) Apply(id string, buf *imaging.Buffer) bool {
	k, ok := r.kernels[id]
	if !ok {
		return false
	}
	k(buf)
	return true
}
