package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cobble.dev/pkg/cobble/internal/model"
)

func TestForCategory(t *testing.T) {
	styles := DefaultStyles()

	assert.Equal(t, styles.Keyword, styles.ForCategory(m.CategoryKeyword))
	assert.Equal(t, styles.String, styles.ForCategory(m.CategoryString))
	assert.Equal(t, styles.Comment, styles.ForCategory(m.CategoryComment))
	assert.Equal(t, styles.Text, styles.ForCategory(m.CategoryNone))
}

func TestRenderLinePlainTextSurvives(t *testing.T) {
	out := renderLine("MOVE X TO Y", nil, -1, Styles{})

	assert.Equal(t, "MOVE X TO Y", out)
}

func TestRenderLineKeepsEveryByte(t *testing.T) {
	line := `DISPLAY "HI" *> note`
	spans := []m.Span{
		{Start: 0, Length: 7, Category: m.CategoryKeyword},
		{Start: 8, Length: 4, Category: m.CategoryString},
		{Start: 13, Length: 7, Category: m.CategoryComment},
	}

	// Zero-value styles render no escape sequences, so the output must
	// be the input text itself regardless of how it was segmented.
	out := renderLine(line, spans, -1, Styles{})
	require.Equal(t, line, out)
}

func TestRenderLineCursorAtEndAddsCell(t *testing.T) {
	plain := renderLine("AB", nil, -1, DefaultStyles())
	withCursor := renderLine("AB", nil, 2, DefaultStyles())

	assert.NotEqual(t, plain, withCursor)
}

func TestByteOffset(t *testing.T) {
	assert.Equal(t, 0, byteOffset("héllo", 0))
	assert.Equal(t, 3, byteOffset("héllo", 2))
	assert.Equal(t, 6, byteOffset("héllo", 5))
	assert.Equal(t, 6, byteOffset("héllo", 99))
}
