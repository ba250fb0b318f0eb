package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobble.dev/pkg/cobble/internal/controller"
	m "cobble.dev/pkg/cobble/internal/model"
)

func runReports(t *testing.T, store *fakeReportStore) (*bytes.Buffer, error) {
	t.Helper()

	restore := swapDeps(nil, nil, store)
	t.Cleanup(restore)

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newReportsCmd())
	cmd.SetOut(out)
	cmd.SetErr(out)

	originalUI := ui
	ui = controller.NewSimpleUI(cmd, false)
	t.Cleanup(func() { ui = originalUI })

	cmd.SetArgs([]string{"reports"})

	return out, cmd.Execute()
}

func TestReportsCmd_Empty(t *testing.T) {
	out, err := runReports(t, &fakeReportStore{})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "no compile reports recorded")
}

func TestReportsCmd_ShowsHistory(t *testing.T) {
	store := &fakeReportStore{reports: []m.CompileReport{
		{
			Timestamp: time.Date(2025, 6, 2, 18, 4, 11, 0, time.UTC),
			Source:    "calc.cbl",
			Output:    "calc",
			Status:    m.CompileFailed,
		},
	}}

	out, err := runReports(t, store)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "calc.cbl")
	assert.Contains(t, out.String(), "failed")
}

func TestReportsCmd_PositionalArgsAreRejected(t *testing.T) {
	restore := swapDeps(nil, nil, &fakeReportStore{})
	t.Cleanup(restore)

	cmd := newRootCmd()
	cmd.AddCommand(newReportsCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"reports", "extra"})
	err := cmd.Execute()

	require.Error(t, err)
}
