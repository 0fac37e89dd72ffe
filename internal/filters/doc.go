// Package filters provides the editor's pixel kernels and the registry that
// dispatches them by identifier.
//
// Every kernel mutates an imaging.Buffer in place. The editor applies a
// kernel either to the whole image or to an extracted sub-region that is
// blitted back afterwards, so kernels never need to know about selections.
//
// # Built-in Kernels
//
// The ten editor filters, in UI order:
//   - Black-White: channel average > 127 becomes white, otherwise black
//   - Grayscale: every channel set to the channel average
//   - Posterize: each channel quantized to 4 steps of 64
//   - Tint: each channel averaged with cyan (0,255,255)
//   - Color Shift Right: R<-B, G<-R, B<-G
//   - Mirror: horizontal flip
//   - Pixelate: 10x10 blocks filled with their top-left color
//   - Show Borders: black edges on white, outer frame black
//   - Eliminate Red: red channel zeroed
//   - Negative: each channel inverted
//
// Also registered: Eliminate Green, Eliminate Blue, the photographic effects
// Blur, Sharpen, Sepia and Emboss (github.com/anthonynsimon/bild) and a Canny
// Edge Detect that draws white edges on black.
//
// All integer arithmetic uses truncating division.
//
// # Unknown Identifiers
//
// Registry.Apply with an unregistered identifier is a no-op that returns
// false. Callers decide whether that deserves a warning.
package filters
