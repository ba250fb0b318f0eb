package cmd

import (
	"context"
	"io/fs"
	"os"

	"cobble.dev/pkg/cobble/internal/adapter"
	m "cobble.dev/pkg/cobble/internal/model"
)

// fakeFS is an in-memory FileAdapter for command tests.
type fakeFS struct {
	files map[m.Path][]byte
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: map[m.Path][]byte{}}
}

func (f *fakeFS) ReadFile(path m.Path) ([]byte, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}

	return content, nil
}

func (f *fakeFS) WriteFile(path m.Path, content []byte, _ os.FileMode) error {
	f.files[path] = content
	return nil
}

func (f *fakeFS) FileInfo(_ m.Path) (os.FileInfo, error) {
	return nil, fs.ErrNotExist
}

// fakeRunner returns a canned compiler outcome and records the request.
type fakeRunner struct {
	stdout   string
	stderr   string
	exitCode int
	err      error

	lastReq m.CompileRequest
	calls   int
}

func (r *fakeRunner) Run(_ context.Context, req m.CompileRequest) (string, string, int, error) {
	r.lastReq = req
	r.calls++

	return r.stdout, r.stderr, r.exitCode, r.err
}

// fakeReportStore keeps appended reports in memory.
type fakeReportStore struct {
	reports []m.CompileReport
	loadErr error
}

func (s *fakeReportStore) Append(_ m.Path, report m.CompileReport) error {
	s.reports = append(s.reports, report)
	return nil
}

func (s *fakeReportStore) Load(_ m.Path) ([]m.CompileReport, error) {
	return s.reports, s.loadErr
}

// swapDeps replaces the shared command dependencies and returns a
// restore function for defer.
func swapDeps(fs adapter.FileAdapter, runner adapter.CompileRunner, store adapter.ReportStore) func() {
	originalFS := fileAdapter
	originalRunner := compileRunner
	originalStore := reportStore

	if fs != nil {
		fileAdapter = fs
	}

	if runner != nil {
		compileRunner = runner
	}

	if store != nil {
		reportStore = store
	}

	return func() {
		fileAdapter = originalFS
		compileRunner = originalRunner
		reportStore = originalStore
	}
}
