package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "cobble.dev/pkg/cobble/internal/model"
)

// DefaultKeywords is the fixed COBOL keyword vocabulary. Matching is
// case-sensitive and whole-word only.
var DefaultKeywords = []string{
	"ACCEPT", "ADD", "CALL", "CANCEL", "COMPUTE", "CONTINUE",
	"DELETE", "DISPLAY", "DIVIDE", "ELSE", "END-CALL", "END-IF",
	"EVALUATE", "GO", "IF", "INITIALIZE", "INSPECT", "MOVE",
	"MULTIPLY", "OPEN", "PERFORM", "READ", "REPLACE", "RETURN",
	"REWRITE", "SEARCH", "STOP", "STRING", "SUBTRACT", "UNSTRING",
	"WRITE",
}

// Rule pairs a compiled pattern with the category it paints.
type Rule struct {
	Pattern  *regexp.Regexp
	Category m.Category
}

// RuleSet is the ordered list of classification rules. Order matters:
// keywords first, then string literals, then the line comment. A later
// rule overwrites an earlier one on overlapping ranges.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet compiles the classification rules. Extra keywords extend
// the default vocabulary. Any pattern problem is reported here, never
// at classification time.
func NewRuleSet(extraKeywords ...string) (*RuleSet, error) {
	keywords := make([]string, 0, len(DefaultKeywords)+len(extraKeywords))
	keywords = append(keywords, DefaultKeywords...)

	for _, keyword := range extraKeywords {
		keyword = strings.ToUpper(strings.TrimSpace(keyword))
		if keyword == "" {
			return nil, fmt.Errorf("invalid highlight keyword: empty")
		}

		keywords = append(keywords, keyword)
	}

	rules := make([]Rule, 0, len(keywords)+3)

	for _, keyword := range keywords {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compile keyword rule %q: %w", keyword, err)
		}

		rules = append(rules, Rule{Pattern: pattern, Category: m.CategoryKeyword})
	}

	// Non-greedy: an unterminated literal produces no match on its line.
	for _, literal := range []string{`".*?"`, `'.*?'`} {
		pattern, err := regexp.Compile(literal)
		if err != nil {
			return nil, fmt.Errorf("compile string rule %q: %w", literal, err)
		}

		rules = append(rules, Rule{Pattern: pattern, Category: m.CategoryString})
	}

	// The marker must be the first non-whitespace token on the line.
	comment, err := regexp.Compile(`^\s*\*>.*`)
	if err != nil {
		return nil, fmt.Errorf("compile comment rule: %w", err)
	}

	rules = append(rules, Rule{Pattern: comment, Category: m.CategoryComment})

	return &RuleSet{rules: rules}, nil
}

// Rules returns the rules in application order.
func (rs *RuleSet) Rules() []Rule {
	return rs.rules
}
