package internal

import "github.com/pkg/errors"

// The refinement engine has exactly two failure conditions, both broken
// internal invariants rather than recoverable runtime errors: an empty
// candidate search during a forced split, and a finalized edge set that
// doesn't close into a single cycle. Threading error returns through the
// hot loop for defects that should never happen would add a ton of noise.
// Instead, we use panics, and the public API recovers to convert to an
// error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// HandleConcaveHullPanicRecover converts a recovered HullError into an
// error, and re-panics on anything that isn't one.
func HandleConcaveHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
