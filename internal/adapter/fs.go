// Package adapter contains infrastructure adapters for the cobble CLI.
package adapter

import (
	"os"

	m "cobble.dev/pkg/cobble/internal/model"
)

// FileAdapter abstracts the filesystem operations the session relies
// on. It hides direct `os` access so document logic can be tested
// without touching the disk.
type FileAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so callers can check
	// existence before overwriting.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalFileAdapter is the concrete FileAdapter backed by the local
// filesystem.
type LocalFileAdapter struct{}

// NewLocalFileAdapter constructs a LocalFileAdapter ready to be wired
// into a session.
func NewLocalFileAdapter() *LocalFileAdapter {
	return &LocalFileAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalFileAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalFileAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFileAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
