package model

import "time"

// CompileReport records one finished compile attempt so earlier runs
// can be reviewed later. ConfigError outcomes are not recorded; nothing
// ran.
type CompileReport struct {
	Timestamp   time.Time     `yaml:"timestamp"`
	Source      Path          `yaml:"source"`
	Output      Path          `yaml:"output"`
	Status      CompileStatus `yaml:"status"`
	Diagnostics string        `yaml:"diagnostics,omitempty"`
}

// ScanSummary holds the classification counts for a single file.
type ScanSummary struct {
	Source Path
	Lines  int
	// Spans counts resolved spans per category across the whole file.
	Spans map[Category]int
}

// Total returns the number of spans across all categories.
func (s ScanSummary) Total() int {
	total := 0
	for _, n := range s.Spans {
		total += n
	}

	return total
}
