package domain

import (
	m "cobble.dev/pkg/cobble/internal/model"
)

// Classifier applies a rule set to one line of text and yields the
// resolved, display-ready spans for it.
type Classifier struct {
	rules *RuleSet
}

// NewClassifier constructs a Classifier over the given rule set.
func NewClassifier(rules *RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Classify assigns a category to every byte of line and collapses
// consecutive equal-category bytes into spans. Rules are applied in
// declared order with leftmost-first, non-overlapping matching per
// rule; a later rule overwrites an earlier one on overlap. Bytes no
// rule matched produce no span.
func (c *Classifier) Classify(line string) []m.Span {
	if line == "" {
		return nil
	}

	categories := make([]m.Category, len(line))

	for _, rule := range c.rules.Rules() {
		for _, match := range rule.Pattern.FindAllStringIndex(line, -1) {
			// A zero-width match paints nothing.
			if match[1] <= match[0] {
				continue
			}

			for i := match[0]; i < match[1]; i++ {
				categories[i] = rule.Category
			}
		}
	}

	return collapse(categories)
}

// collapse turns the per-byte category array into sorted,
// non-overlapping spans.
func collapse(categories []m.Category) []m.Span {
	var spans []m.Span

	start := 0
	current := categories[0]

	flush := func(end int) {
		if current != m.CategoryNone {
			spans = append(spans, m.Span{Start: start, Length: end - start, Category: current})
		}
	}

	for i := 1; i < len(categories); i++ {
		if categories[i] == current {
			continue
		}

		flush(i)
		start = i
		current = categories[i]
	}

	flush(len(categories))

	return spans
}
