// SPDX-License-Identifier: MIT
// Package: lvlath/wfc
//
// errors.go — the error taxonomy of spec.md §7.
//
// Only InputError crosses the public boundary as a real error; the
// internal contradiction and errFinishedObserving values are control-flow
// carriers, translated into an Outcome by Run/Reset and never returned to
// callers directly.

package wfc

import "errors"

// InputError is raised by New or Reset when the inputs cannot produce a
// consistent initial state: mismatched directedness, an uncolored GI node,
// an insufficient constructor surface, or an initial contradiction. It is
// not recoverable by Reset (spec.md §7).
type InputError struct {
	// Op names the operation that failed ("New", "Reset", ...).
	Op string
	// Location names the offending node or iso, when known.
	Location string
	// Err is the underlying cause.
	Err error
}

func (e *InputError) Error() string {
	if e.Location != "" {
		return "wfc: " + e.Op + ": " + e.Location + ": " + e.Err.Error()
	}
	return "wfc: " + e.Op + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }

// Sentinel causes wrapped by InputError.Err.
var (
	// ErrDirectednessMismatch indicates GO, GI, and the GLs do not all
	// agree on directedness.
	ErrDirectednessMismatch = errors.New("wfc: GO/GI/GLs disagree on directedness")

	// ErrInsufficientInputs indicates the constructor surface (spec.md
	// §6.2) could not build all required tables from the supplied options.
	ErrInsufficientInputs = errors.New("wfc: insufficient constructor inputs")

	// ErrNoGLs indicates an empty GLs list was supplied where GLs were
	// required (spec.md §8, boundary behavior: "Empty GLs list -> InputError").
	ErrNoGLs = errors.New("wfc: GLs is empty")

	// ErrOutOfUniverse indicates a GO node was pre-colored with a value
	// that never appears in any extracted pattern (spec.md §9, Open
	// Question 2's recommended resolution).
	ErrOutOfUniverse = errors.New("wfc: pre-set node color is outside the admissible universe")

	// ErrNilGO indicates a nil output graph was supplied.
	ErrNilGO = errors.New("wfc: GO is nil")
)

// contradiction is raised internally by propagate when some admissible set
// becomes empty. Run/Reset catch it and report Failed/InputError; it never
// crosses the package boundary on its own.
type contradiction struct {
	location string
}

func (c *contradiction) Error() string { return "wfc: contradiction at " + c.location }

// errFinishedObserving is raised internally by observe when no iso of
// positive entropy remains. Run catches it and reports Done.
var errFinishedObserving = errors.New("wfc: finished observing")
