package parse

import (
	"fmt"
	"strings"
)

// Span is a half-open rune range [Start, End) within the source.
type Span struct {
	Start int
	End   int
}

// Error is the single failure kind produced by rules: where the failing
// rule started matching (Location), the sub-range to underline (Problem),
// and a human-readable message.
type Error struct {
	Location Location
	Problem  Span
	Message  string
}

func newError(loc Location, format string, args ...any) *Error {
	return &Error{
		Location: loc,
		Problem:  Span{Start: loc.Start, End: loc.End},
		Message:  fmt.Sprintf(format, args...),
	}
}

// Error renders the failure in the fixed three-line format:
//
//	Error at {line}:{column}: {message}
//	{source line}
//	{spaces}{carets}
//
// The caret run is Problem.End-Problem.Start wide and is indented by
// Problem.Start spaces.
//
// A hand-constructed Error without a source cursor (for example from a
// MapError handler) renders as just "Error: {message}".
func (e *Error) Error() string {
	src := e.Location.Source
	if src == nil {
		return "Error: " + e.Message
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Error at %d:%d: %s\n", src.Line(), src.Column(), e.Message)
	b.WriteString(src.lineText())
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", e.Problem.Start))
	b.WriteString(strings.Repeat("^", e.Problem.End-e.Problem.Start))
	return b.String()
}
