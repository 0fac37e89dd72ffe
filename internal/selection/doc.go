// Package selection tracks the four-click rectangular selection and the
// display-to-image coordinate mapping it depends on.
//
// Points are collected in display space, the coordinate system of the panel
// the image is drawn in. Fit computes where the image lands inside that panel
// (scaled to fit, centered). Once four points are placed their bounding box is
// mapped back into image pixels with
//
//	imgCoord = (displayCoord - offset) * imageDimension / drawDimension
//
// using truncating integer arithmetic.
//
// Click semantics:
//   - primary inside the image while fewer than 4 points: record the point
//   - primary while complete: clear, the click itself is not recorded
//   - primary outside the image: ignored
//   - secondary: remove the most recent point, if any
package selection
