// Package imaging loads images and extracts colors from them.
//
// It covers decoding (PNG, JPEG, GIF and WebP, from files or base64 blobs),
// a path-keyed image cache, single and multi-point pixel sampling, mapping
// of scaled display coordinates onto natural pixels, a magnifier loupe, and
// the dominant color extractor that mines a ranked palette from a downscaled
// working copy of an image.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Sampling, extraction and
// the loupe are stateless and can be called concurrently.
//
// # Color Representation
//
// Sampled colors are reported non-premultiplied, with the hex form in
// lowercase "#rrggbb" and alpha reported separately. See package colormodel
// for the HSL and CMYK conversions.
//
// # Errors
//
// Failures to open or decode an image wrap ErrImageUnavailable. Failures to
// analyze an image that decoded fine wrap ErrExtraction. Callers can tell
// the two apart with errors.Is.
package imaging
