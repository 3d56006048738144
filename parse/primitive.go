package parse

import (
	"github.com/dlclark/regexp2"
)

// Tag matches the literal text v rune by rune. On success the rule yields
// the Location spanning the match. On mismatch or end of input it fails
// without restoring the cursor; enclosing combinators roll back.
func Tag(v string) Rule[Location] {
	want := []rune(v)
	return NewRule(v, func(src *Source) (Location, *Error) {
		start := src.Save()
		for _, r := range want {
			got := src.Peek()
			if got == EOF {
				return Location{}, expectedErr(start, src, v, true)
			}
			if got != r {
				// Take the offending rune so the error names it.
				src.Advance(1)
				return Location{}, expectedErr(start, src, v, false)
			}
			src.Advance(1)
		}
		return start.LocationTo(src), nil
	})
}

// Regex matches pattern greedily: the candidate string starts as the single
// rune under the cursor and grows one rune at a time, and the match is the
// longest candidate the whole pattern matched. A candidate that stops
// matching before any candidate matched is a failure, so patterns must be
// written to match every prefix-extension of their token, not just the
// final shape ("[0-9]+", not "[0-9]{3}").
//
// The pattern is compiled once, at construction; an invalid pattern panics.
func Regex(pattern string) Rule[Location] {
	re := compilePattern(pattern)
	return NewRule(pattern, func(src *Source) (Location, *Error) {
		start := src.Save()
		scan := src.Save()
		ch := scan.Peek()
		if ch == EOF {
			return Location{}, expectedErr(start, scan, pattern, true)
		}
		candidate := []rune{ch}
		matched := false
		end := 0
		for {
			if wholeMatch(re, candidate) {
				matched = true
				end = scan.pos + 1
			} else if matched {
				break
			} else {
				scan.Advance(1)
				return Location{}, expectedErr(start, scan, pattern, false)
			}
			ch = scan.Advance(1)
			if ch == EOF {
				break
			}
			candidate = append(candidate, ch)
		}
		src.pos = end
		return start.LocationTo(src), nil
	})
}

// compilePattern tries RE2 mode first (no catastrophic backtracking) and
// falls back to full Perl-compatible mode for patterns RE2 rejects.
func compilePattern(pattern string) *regexp2.Regexp {
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		return regexp2.MustCompile(pattern, regexp2.None)
	}
	return re
}

// wholeMatch reports whether re matches all of candidate, not just a
// substring.
func wholeMatch(re *regexp2.Regexp, candidate []rune) bool {
	m, err := re.FindRunesMatch(candidate)
	if err != nil || m == nil {
		return false
	}
	return m.Index == 0 && m.Length == len(candidate)
}

func expectedErr(start, current *Source, want string, atEOF bool) *Error {
	loc := start.LocationTo(current)
	found := loc.Lexeme
	if atEOF {
		found = "EOF"
	}
	return newError(loc, "expected %s found %s", want, found)
}
