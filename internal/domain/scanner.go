package domain

import (
	"context"
	"strings"
	"unicode/utf8"

	"cobble.dev/pkg/cobble/internal/adapter"
	m "cobble.dev/pkg/cobble/internal/model"
)

// Scanner classifies whole files from disk and summarizes the results,
// for the headless `scan` command.
type Scanner struct {
	fs    adapter.FileAdapter
	rules *RuleSet
}

// NewScanner constructs a Scanner over the given adapter and rule set.
func NewScanner(fs adapter.FileAdapter, rules *RuleSet) *Scanner {
	return &Scanner{fs: fs, rules: rules}
}

// Scan classifies every line of every file and returns one summary per
// file, in input order. A fresh engine is used per file so summaries
// are independent.
func (s *Scanner) Scan(ctx context.Context, paths []m.Path) ([]m.ScanSummary, error) {
	summaries := make([]m.ScanSummary, 0, len(paths))

	for _, path := range paths {
		data, err := s.fs.ReadFile(path)
		if err != nil {
			return nil, &IOError{Op: "scan", Path: string(path), Err: err}
		}

		if !utf8.Valid(data) {
			return nil, &IOError{Op: "scan", Path: string(path), Err: errNotUTF8}
		}

		lines := strings.Split(string(data), "\n")

		engine := NewEngine(NewClassifier(s.rules))
		if err := engine.RecomputeAll(ctx, lines); err != nil {
			return nil, err
		}

		summary := m.ScanSummary{
			Source: path,
			Lines:  len(lines),
			Spans:  map[m.Category]int{},
		}

		for i := range lines {
			for _, span := range engine.SpansFor(i) {
				summary.Spans[span.Category]++
			}
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
