package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "cobble.dev/pkg/cobble/internal/model"
)

// Styles controls the editor's rendering.
type Styles struct {
	Keyword lipgloss.Style
	String  lipgloss.Style
	Comment lipgloss.Style
	Text    lipgloss.Style

	Gutter    lipgloss.Style
	Cursor    lipgloss.Style
	StatusBar lipgloss.Style
	StatusErr lipgloss.Style
	Prompt    lipgloss.Style
}

// DefaultStyles returns the default color scheme: blue bold keywords,
// magenta strings, green comments.
func DefaultStyles() Styles {
	return Styles{
		Keyword:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		String:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Comment:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Text:      lipgloss.NewStyle(),
		Gutter:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		StatusErr: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// ForCategory returns the style that paints the given category.
func (s Styles) ForCategory(category m.Category) lipgloss.Style {
	switch category {
	case m.CategoryKeyword:
		return s.Keyword
	case m.CategoryString:
		return s.String
	case m.CategoryComment:
		return s.Comment
	default:
		return s.Text
	}
}

// renderLine renders one line of text with its spans applied. cursor is
// the byte offset of the cursor within the line, or -1 when the cursor
// is on another line; the cursor cell is drawn reversed on top of
// whatever category paints it.
func renderLine(text string, spans []m.Span, cursor int, styles Styles) string {
	var b strings.Builder

	categoryAt := func(offset int) m.Category {
		for _, span := range spans {
			if offset >= span.Start && offset < span.End() {
				return span.Category
			}
		}

		return m.CategoryNone
	}

	offset := 0
	for offset < len(text) {
		category := categoryAt(offset)

		// Extend the run while the category holds, breaking at the
		// cursor cell so it can be styled separately.
		end := offset + 1
		if offset != cursor {
			for end < len(text) && end != cursor && categoryAt(end) == category {
				end++
			}
		} else {
			// The cursor covers exactly one rune.
			for end < len(text) && (text[end]&0xC0) == 0x80 {
				end++
			}
		}

		style := styles.ForCategory(category)
		if offset == cursor {
			style = style.Reverse(true)
		}

		b.WriteString(style.Render(text[offset:end]))
		offset = end
	}

	if cursor == len(text) {
		b.WriteString(styles.Cursor.Render(" "))
	}

	return b.String()
}
