package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	m "cobble.dev/pkg/cobble/internal/model"
)

func TestScanner_Scan(t *testing.T) {
	fs := newFakeFS()
	fs.files["prog.cbl"] = []byte("MOVE 'a' TO B.\n*> note\nplain\n")

	rules, err := NewRuleSet()
	require.NoError(t, err)

	scanner := NewScanner(fs, rules)

	summaries, err := scanner.Scan(context.Background(), []m.Path{"prog.cbl"})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	summary := summaries[0]
	require.Equal(t, m.Path("prog.cbl"), summary.Source)
	require.Equal(t, 4, summary.Lines) // trailing newline yields a final empty line
	require.Equal(t, 1, summary.Spans[m.CategoryKeyword])
	require.Equal(t, 1, summary.Spans[m.CategoryString])
	require.Equal(t, 1, summary.Spans[m.CategoryComment])
	require.Equal(t, 3, summary.Total())
}

func TestScanner_ScanMissingFile(t *testing.T) {
	rules, err := NewRuleSet()
	require.NoError(t, err)

	scanner := NewScanner(newFakeFS(), rules)

	_, err = scanner.Scan(context.Background(), []m.Path{"missing.cbl"})

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
}

func TestScanner_ScanMultipleFilesInOrder(t *testing.T) {
	fs := newFakeFS()
	fs.files["a.cbl"] = []byte("MOVE A")
	fs.files["b.cbl"] = []byte("plain")

	rules, err := NewRuleSet()
	require.NoError(t, err)

	scanner := NewScanner(fs, rules)

	summaries, err := scanner.Scan(context.Background(), []m.Path{"a.cbl", "b.cbl"})
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Equal(t, m.Path("a.cbl"), summaries[0].Source)
	require.Equal(t, m.Path("b.cbl"), summaries[1].Source)
	require.Zero(t, summaries[1].Total())
}
