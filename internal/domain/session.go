package domain

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"

	"cobble.dev/pkg/cobble/internal/adapter"
	m "cobble.dev/pkg/cobble/internal/model"
)

// Session owns the single open document: its path, content, and dirty
// flag. A zero path means the buffer is new and unsaved. All methods
// assume a single caller; a Session is not safe for concurrent use.
type Session struct {
	fs      adapter.FileAdapter
	path    m.Path
	content string
	dirty   bool
}

// NewSession constructs an empty, clean session with no path.
func NewSession(fs adapter.FileAdapter) *Session {
	return &Session{fs: fs}
}

// Path returns the file backing the session, or "" for an unsaved
// buffer.
func (s *Session) Path() m.Path {
	return s.path
}

// Content returns the current buffer text.
func (s *Session) Content() string {
	return s.content
}

// IsDirty reports whether the buffer has unsaved mutations.
func (s *Session) IsDirty() bool {
	return s.dirty
}

// MarkDirty flags the buffer as having unsaved mutations. Every
// content-mutating operation in the presentation layer must call this
// or SetContent.
func (s *Session) MarkDirty() {
	s.dirty = true
}

// Discard resolves pending unsaved changes by dropping them: the dirty
// flag is cleared without writing anything. Callers use this after the
// user chose "discard" in the save/discard/cancel protocol.
func (s *Session) Discard() {
	s.dirty = false
}

// SetContent replaces the buffer text and marks the session dirty.
func (s *Session) SetContent(text string) {
	s.content = text
	s.dirty = true
}

// New resets the session to an empty unsaved buffer. It fails with
// ErrUnsavedChanges if the current buffer is dirty; the caller must
// resolve that first via Save/SaveAs or Discard.
func (s *Session) New() error {
	if s.dirty {
		return ErrUnsavedChanges
	}

	s.path = ""
	s.content = ""
	s.dirty = false

	return nil
}

// Open reads the file at path into the buffer and clears the dirty
// flag. Unlike New, it does not check for unsaved changes itself: the
// caller resolves those before calling. Content must be valid UTF-8.
func (s *Session) Open(path m.Path) error {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return &IOError{Op: "open", Path: string(path), Err: err}
	}

	if !utf8.Valid(data) {
		return &IOError{Op: "open", Path: string(path), Err: errNotUTF8}
	}

	s.path = path
	s.content = string(data)
	s.dirty = false

	slog.Info("opened file", "path", path, "bytes", len(data))

	return nil
}

// Save writes the buffer to the session's path and clears the dirty
// flag. It fails with ErrNoPath when the buffer was never saved; the
// caller must supply a path via SaveAs.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoPath
	}

	if err := s.fs.WriteFile(s.path, []byte(s.content), 0o644); err != nil {
		return &IOError{Op: "save", Path: string(s.path), Err: err}
	}

	s.dirty = false

	slog.Info("saved file", "path", s.path, "bytes", len(s.content))

	return nil
}

// SaveAs sets the session's path, then behaves as Save.
func (s *Session) SaveAs(path m.Path) error {
	s.path = path

	return s.Save()
}

// Lines splits the buffer into classification units.
func (s *Session) Lines() []string {
	return strings.Split(s.content, "\n")
}

// DiffAgainstDisk returns a unified diff of the saved file against the
// current buffer, so the user can see what "discard" would throw away.
// It fails with ErrNoPath for a never-saved buffer.
func (s *Session) DiffAgainstDisk() (string, error) {
	if s.path == "" {
		return "", ErrNoPath
	}

	saved, err := s.fs.ReadFile(s.path)
	if err != nil {
		return "", &IOError{Op: "diff", Path: string(s.path), Err: err}
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(saved)),
		B:        difflib.SplitLines(s.content),
		FromFile: string(s.path),
		ToFile:   "buffer",
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(diff)
}
