// Package swatch holds the two bounded color lists of a picking session:
// the recently selected History and the extracted Palette.
//
// Both lists store canonical "#rrggbb" strings, never hold duplicates and
// never grow past their capacity. History can be persisted through a Store
// so it survives restarts; its Load and Save methods are the lifecycle hooks
// for that.
//
// # Thread Safety
//
// History and Palette are not safe for concurrent use. They are owned by a
// single session which serializes access.
package swatch
