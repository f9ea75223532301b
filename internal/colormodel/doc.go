// Package colormodel converts colors between hex, RGB, HSL and CMYK notations.
//
// All conversions are pure and stateless and work on sRGB 8-bit values. They
// never fail with an error: a hex string that cannot be parsed is reported via
// a comma-ok boolean, and callers treat it as "no color".
//
// # Numeric Conventions
//
//   - RGB components are integers in 0-255.
//   - HSL hue is in degrees 0-359 (wrapping), saturation and lightness are
//     percentages 0-100.
//   - CMYK components are percentages 0-100 and are always derived from RGB.
//   - Rounding is half away from zero (math.Round).
//
// Hex output is always the canonical lowercase form "#rrggbb".
package colormodel
