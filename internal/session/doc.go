// Package session owns the state a color picking session works on: the
// loaded image and its extracted palette, the selected and hovered colors,
// and the selection history.
//
// A Workspace serializes all state changes behind a mutex. Image loads run
// their decode and extraction outside the lock and are numbered; when a load
// finishes after a newer one has started, its result is discarded and Load
// returns ErrStaleLoad. The most recently started load always wins.
package session
