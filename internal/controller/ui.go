// Package controller provides the presentation layer for cobble: the
// plain-text output used by the headless commands and the full-screen
// editor.
package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "cobble.dev/pkg/cobble/internal/model"
)

// UI defines the output surface for the headless commands.
// Implementations can use different output methods (plain text,
// colored, etc).
type UI interface {
	DisplayScan(summaries []m.ScanSummary) error
	DisplayCompileResult(source m.Path, result m.CompileResult)
	DisplayReports(reports []m.CompileReport) error
}

// NewUI creates the UI appropriate for the output destination.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
