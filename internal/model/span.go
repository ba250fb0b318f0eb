// Package model defines the data structures shared by cobble's components.
package model

// Path represents a file system path.
type Path string

// Category is the display classification assigned to a byte range of a line.
type Category int

const (
	// CategoryNone marks bytes no rule matched.
	CategoryNone Category = iota
	// CategoryKeyword marks a COBOL keyword matched as a whole word.
	CategoryKeyword
	// CategoryString marks a quoted string literal.
	CategoryString
	// CategoryComment marks a line comment from the marker to end of line.
	CategoryComment
)

// Categories lists the paintable categories in rule application order.
var Categories = []Category{CategoryKeyword, CategoryString, CategoryComment}

func (c Category) String() string {
	switch c {
	case CategoryKeyword:
		return "keyword"
	case CategoryString:
		return "string"
	case CategoryComment:
		return "comment"
	default:
		return "none"
	}
}

// Span is a contiguous byte range within a single line tagged with one
// category. Start and Length are byte offsets into the line's text, and
// Start+Length never exceeds the line length.
type Span struct {
	Start    int
	Length   int
	Category Category
}

// End returns the exclusive end offset of the span.
func (s Span) End() int {
	return s.Start + s.Length
}
