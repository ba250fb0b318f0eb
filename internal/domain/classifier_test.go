package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "cobble.dev/pkg/cobble/internal/model"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()

	rules, err := NewRuleSet()
	require.NoError(t, err)

	return NewClassifier(rules)
}

func TestClassify_Empty(t *testing.T) {
	c := newTestClassifier(t)

	require.Empty(t, c.Classify(""))
}

func TestClassify_KeywordWholeWord(t *testing.T) {
	c := newTestClassifier(t)

	spans := c.Classify("    MOVE X TO Y")

	require.Equal(t, []m.Span{{Start: 4, Length: 4, Category: m.CategoryKeyword}}, spans)
}

func TestClassify_KeywordInsideIdentifierDoesNotMatch(t *testing.T) {
	c := newTestClassifier(t)

	// IF appears only as a substring of longer identifiers.
	require.Empty(t, c.Classify("NOTIFY IFFY"))
}

func TestClassify_HyphenatedKeyword(t *testing.T) {
	c := newTestClassifier(t)

	spans := c.Classify("END-IF")

	// END-IF matches its own rule; the bare IF rule repaints the tail,
	// with the same category, so the result is a single keyword span.
	require.Equal(t, []m.Span{{Start: 0, Length: 6, Category: m.CategoryKeyword}}, spans)
}

func TestClassify_StringLiterals(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []m.Span
	}{
		{
			name: "double quoted",
			line: `DISPLAY "HI"`,
			want: []m.Span{
				{Start: 0, Length: 7, Category: m.CategoryKeyword},
				{Start: 8, Length: 4, Category: m.CategoryString},
			},
		},
		{
			name: "single quoted",
			line: `MOVE 'a' TO B`,
			want: []m.Span{
				{Start: 0, Length: 4, Category: m.CategoryKeyword},
				{Start: 5, Length: 3, Category: m.CategoryString},
			},
		},
		{
			name: "unterminated literal produces no string span",
			line: `MOVE "abc TO B`,
			want: []m.Span{
				{Start: 0, Length: 4, Category: m.CategoryKeyword},
			},
		},
		{
			name: "empty literal",
			line: `MOVE "" TO B`,
			want: []m.Span{
				{Start: 0, Length: 4, Category: m.CategoryKeyword},
				{Start: 5, Length: 2, Category: m.CategoryString},
			},
		},
		{
			name: "two literals are separate non-greedy matches",
			line: `"a" "b"`,
			want: []m.Span{
				{Start: 0, Length: 3, Category: m.CategoryString},
				{Start: 4, Length: 3, Category: m.CategoryString},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier(t)

			require.Equal(t, tt.want, c.Classify(tt.line))
		})
	}
}

func TestClassify_KeywordInsideStringIsString(t *testing.T) {
	c := newTestClassifier(t)

	// The string rule is applied after the keyword rule and overwrites
	// the keyword-shaped substring inside the literal.
	spans := c.Classify(`MOVE "IF" TO X`)

	require.Equal(t, []m.Span{
		{Start: 0, Length: 4, Category: m.CategoryKeyword},
		{Start: 5, Length: 4, Category: m.CategoryString},
	}, spans)
}

func TestClassify_CommentFromMarkerOnward(t *testing.T) {
	c := newTestClassifier(t)

	spans := c.Classify("   *> MOVE 'a' here")

	// Leading whitespace is part of the comment match and the whole
	// line resolves to one comment span; the keyword and string
	// matches inside are overwritten.
	require.Equal(t, []m.Span{{Start: 0, Length: 19, Category: m.CategoryComment}}, spans)
}

func TestClassify_MarkerAfterCodeIsNotComment(t *testing.T) {
	c := newTestClassifier(t)

	spans := c.Classify("DISPLAY X *> trailing")

	require.Equal(t, []m.Span{{Start: 0, Length: 7, Category: m.CategoryKeyword}}, spans)
}

func TestClassify_CommentWinsOverStringOnSameLine(t *testing.T) {
	c := newTestClassifier(t)

	// The comment rule is applied last and repaints the whole line,
	// including the quoted text after the marker.
	spans := c.Classify(`*> say "hello"`)

	require.Equal(t, []m.Span{{Start: 0, Length: 14, Category: m.CategoryComment}}, spans)
}

func TestClassify_Idempotent(t *testing.T) {
	c := newTestClassifier(t)

	line := `IF B = 'a' THEN DISPLAY B.`

	first := c.Classify(line)
	second := c.Classify(line)

	require.Equal(t, first, second)
}

func TestClassify_Scenario(t *testing.T) {
	c := newTestClassifier(t)

	line1 := `MOVE 'a' TO B. *> set b`
	spans1 := c.Classify(line1)

	// TO is not in the keyword vocabulary; the trailing marker is not
	// at line start, so no comment span either.
	require.Equal(t, []m.Span{
		{Start: 0, Length: 4, Category: m.CategoryKeyword},
		{Start: 5, Length: 3, Category: m.CategoryString},
	}, spans1)

	line2 := `IF B = 'a' THEN DISPLAY B.`
	spans2 := c.Classify(line2)

	require.Equal(t, []m.Span{
		{Start: 0, Length: 2, Category: m.CategoryKeyword},
		{Start: 7, Length: 3, Category: m.CategoryString},
		{Start: 16, Length: 7, Category: m.CategoryKeyword},
	}, spans2)
}

func TestClassify_SpanInvariants(t *testing.T) {
	c := newTestClassifier(t)

	lines := []string{
		"",
		"MOVE",
		`  *> only a comment`,
		`DISPLAY "one" 'two' MOVE`,
		"plain text with no matches",
	}

	for _, line := range lines {
		spans := c.Classify(line)

		prevEnd := 0
		for _, span := range spans {
			require.Positive(t, span.Length)
			require.GreaterOrEqual(t, span.Start, prevEnd)
			require.LessOrEqual(t, span.End(), len(line))
			require.NotEqual(t, m.CategoryNone, span.Category)
			prevEnd = span.End()
		}
	}
}
