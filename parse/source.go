package parse

// EOF is the sentinel returned by Peek and Advance when the cursor has no
// more input after whitespace skipping.
const EOF rune = -1

// Source is the scan cursor for one parse: the input runes, the current
// position, and the set of runes that are skipped transparently.
//
// Checkpoints made with Save share the content and the whitespace set with
// the original; only the position is independent. Registering a whitespace
// rune on any cursor of the chain therefore affects all of them.
type Source struct {
	content    []rune
	pos        int
	whitespace map[rune]bool
}

// NewSource creates a cursor positioned at the start of content with an
// empty whitespace set.
func NewSource(content string) *Source {
	return &Source{
		content:    []rune(content),
		whitespace: make(map[rune]bool),
	}
}

// AddWhitespace registers a rune to be skipped by Peek and Advance.
func (s *Source) AddWhitespace(r rune) {
	s.whitespace[r] = true
}

func (s *Source) skipWhitespace() {
	for s.pos < len(s.content) && s.whitespace[s.content[s.pos]] {
		s.pos++
	}
}

// Peek skips past any whitespace runes and returns the rune under the
// cursor, or EOF when skipping reaches the end of input. The skipped
// whitespace is consumed.
func (s *Source) Peek() rune {
	s.skipWhitespace()
	if s.pos >= len(s.content) {
		return EOF
	}
	return s.content[s.pos]
}

// Advance moves the cursor n raw runes forward, then skips whitespace like
// Peek, returning the rune now under the cursor or EOF.
func (s *Source) Advance(n int) rune {
	s.pos += n
	if s.pos > len(s.content) {
		s.pos = len(s.content)
	}
	return s.Peek()
}

// EOF reports whether the cursor is at or past the end of input.
func (s *Source) EOF() bool {
	return s.pos >= len(s.content)
}

// Pos returns the current rune offset.
func (s *Source) Pos() int {
	return s.pos
}

// Save returns an independent checkpoint: same content and whitespace set,
// own position. Rolling back is Restore with a saved checkpoint.
func (s *Source) Save() *Source {
	return &Source{content: s.content, pos: s.pos, whitespace: s.whitespace}
}

// Restore moves the cursor back to a checkpoint taken from the same chain.
func (s *Source) Restore(checkpoint *Source) {
	s.pos = checkpoint.pos
}

// LocationTo returns the Location spanning from s's position to other's
// position. The lexeme is the raw substring with whitespace-set runes
// trimmed from both ends.
func (s *Source) LocationTo(other *Source) Location {
	start, end := s.pos, other.pos
	if end > len(s.content) {
		end = len(s.content)
	}
	if end < start {
		end = start
	}
	lo, hi := start, end
	for lo < hi && s.whitespace[s.content[lo]] {
		lo++
	}
	for hi > lo && s.whitespace[s.content[hi-1]] {
		hi--
	}
	return Location{
		Start:  start,
		End:    end,
		Lexeme: string(s.content[lo:hi]),
		Source: s.Save(),
	}
}

// Line returns the zero-based line number of the cursor, counted by
// scanning the consumed prefix. O(pos); used for diagnostics only.
func (s *Source) Line() int {
	n := 0
	for _, r := range s.content[:s.pos] {
		if r == '\n' {
			n++
		}
	}
	return n
}

// Column returns the 1-based column of the cursor, counted from the rune
// after the last newline in the consumed prefix.
func (s *Source) Column() int {
	col := 0
	for i := s.pos - 1; i >= 0; i-- {
		if s.content[i] == '\n' {
			break
		}
		col++
	}
	return col + 1
}

// lineText returns the full text of the line containing the cursor,
// without the trailing newline.
func (s *Source) lineText() string {
	start := s.pos
	if start > len(s.content) {
		start = len(s.content)
	}
	for start > 0 && s.content[start-1] != '\n' {
		start--
	}
	end := start
	for end < len(s.content) && s.content[end] != '\n' {
		end++
	}
	return string(s.content[start:end])
}
