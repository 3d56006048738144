package parse

// Location is a span of the source text: the half-open rune range
// [Start, End), the matched text with whitespace trimmed from both ends,
// and a checkpoint of the cursor positioned at Start. Every primitive
// produces one on success and errors carry one for rendering. Immutable
// once built.
type Location struct {
	Start  int
	End    int
	Lexeme string
	Source *Source
}

// Len returns the width of the span in runes.
func (l Location) Len() int {
	return l.End - l.Start
}

func (l Location) String() string {
	return l.Lexeme
}
