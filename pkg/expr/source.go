package expr

import "fmt"

// SourceLocation identifies where an expression originated. The expression
// core never interprets it; it is attached to diagnostics so the caller's
// reporter can render them.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

func (s SourceLocation) String() string {
	if s.File == "" && s.Line == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}
