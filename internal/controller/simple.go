package controller

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "cobble.dev/pkg/cobble/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd   *cobra.Command
	color bool
}

// NewSimpleUI creates a new SimpleUI. Colored output is used only when
// the destination is a terminal.
func NewSimpleUI(cmd *cobra.Command, tty bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, color: tty}
}

// DisplayScan prints one table row per scanned file with span counts
// per category.
func (s *SimpleUI) DisplayScan(summaries []m.ScanSummary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Keywords", "Strings", "Comments", "Total"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalSpans := 0

	for _, summary := range summaries {
		table.Append([]string{
			string(summary.Source),
			fmt.Sprintf("%d", summary.Lines),
			fmt.Sprintf("%d", summary.Spans[m.CategoryKeyword]),
			fmt.Sprintf("%d", summary.Spans[m.CategoryString]),
			fmt.Sprintf("%d", summary.Spans[m.CategoryComment]),
			fmt.Sprintf("%d", summary.Total()),
		})

		totalSpans += summary.Total()
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(summaries)),
		"", "", "", "",
		fmt.Sprintf("%d", totalSpans),
	})

	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCompileResult prints the outcome of one compile attempt. The
// four outcomes are surfaced distinctly so the user can tell a source
// problem from an environment problem.
func (s *SimpleUI) DisplayCompileResult(source m.Path, result m.CompileResult) {
	switch result.Status {
	case m.CompileSuccess:
		s.printf("%s: %s\n", source, s.paint(color.FgGreen, "compilation successful"))
	case m.CompileToolchainNotFound:
		s.printf("%s: %s\n", source, s.paint(color.FgYellow, "cobc not found"))
		s.printf("Make sure GnuCOBOL is installed, or set GNUBASE to its install root.\n")
		s.printf("%s\n", result.Diagnostics)
	case m.CompileConfigError:
		s.printf("%s: %s\n", source, s.paint(color.FgYellow, "configuration error"))
		s.printf("%s\n", result.Diagnostics)
	default:
		s.printf("%s: %s\n", source, s.paint(color.FgRed, "compilation failed"))
		s.printf("%s\n", result.Diagnostics)
	}
}

// DisplayReports prints the recorded compile history, oldest first.
func (s *SimpleUI) DisplayReports(reports []m.CompileReport) error {
	if len(reports) == 0 {
		s.printf("no compile reports recorded\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Time", "Source", "Output", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, report := range reports {
		table.Append([]string{
			report.Timestamp.Format("2006-01-02 15:04:05"),
			string(report.Source),
			string(report.Output),
			string(report.Status),
		})
	}

	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) paint(attr color.Attribute, text string) string {
	if !s.color {
		return text
	}

	return color.New(attr).Sprint(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
