// Package imaging provides the pixel storage and file I/O of the editor.
//
// The central type is Buffer, an owned, opaque RGB raster. Every editor state
// (the live image, the originally loaded image and every history entry) is a
// distinct Buffer; buffers are copied, never shared.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based image-space coordinates:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x, y) is the inclusive top-left corner and w×h the size
//
// # Color Representation
//
// Pixels are 24-bit RGB. Alpha present in a decoded file is dropped by
// compositing onto black when the file is normalized into a Buffer.
// SampleColor reports a pixel as hex, RGB and HSL.
//
// # Error Handling
//
// Functions return wrapped sentinel errors:
//   - ErrOutOfBounds: a pixel coordinate outside the buffer
//   - ErrInvalidRegion: an empty rectangle or one that does not fit the buffer
//   - ErrIO: decode, encode or filesystem failures
//
// # Thread Safety
//
// A Buffer is not safe for concurrent mutation. The editor has a single owner
// for each buffer, so no locking is done here.
package imaging
