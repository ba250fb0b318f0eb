package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	m "cobble.dev/pkg/cobble/internal/model"
)

// ReportStore persists compile reports so earlier runs can be reviewed.
type ReportStore interface {
	Append(path m.Path, report m.CompileReport) error
	Load(path m.Path) ([]m.CompileReport, error)
}

// yamlReportStore stores reports as a YAML list in a single file.
type yamlReportStore struct {
	mu sync.Mutex
}

// NewReportStore constructs the YAML-backed ReportStore.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

// Append reads the existing report list, appends the new record, and
// writes the file back.
func (s *yamlReportStore) Append(path m.Path, report m.CompileReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load(path)
	if err != nil {
		return err
	}

	reports = append(reports, report)

	data, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("marshal compile reports: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write compile reports: %w", err)
	}

	return nil
}

// Load returns all recorded reports, oldest first. A missing file is an
// empty history, not an error.
func (s *yamlReportStore) Load(path m.Path) ([]m.CompileReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(path)
}

func (s *yamlReportStore) load(path m.Path) ([]m.CompileReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read compile reports: %w", err)
	}

	var reports []m.CompileReport
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("parse compile reports: %w", err)
	}

	return reports, nil
}
