// Package domain implements cobble's core logic: lexical
// classification, the per-line highlight cache, the document session,
// and the compiler handoff.
package domain

import (
	"errors"
	"fmt"
)

// ErrUnsavedChanges is returned by Session.New when the current buffer
// has unresolved unsaved changes. The caller must save or discard
// first.
var ErrUnsavedChanges = errors.New("unsaved changes pending")

// ErrNoPath is returned by Session.Save when no file path has been set.
var ErrNoPath = errors.New("no file path set")

var errNotUTF8 = errors.New("content is not valid UTF-8")

// IOError wraps a read or write failure so callers can tell a disk
// problem from a protocol violation. The underlying message is passed
// through, not interpreted.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
