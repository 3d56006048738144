package parse

import (
	"strings"
	"testing"
)

func TestTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		input   string
		wantErr string // substring of the failure message, empty for success
		lexeme  string
		pos     int // cursor position after the call
	}{
		{"exact match", "if", "if", "", "if", 2},
		{"match with trailing input", "if", "ifx", "", "if", 2},
		{"eof mid-literal", "if", "i", "expected if found EOF", "", 1},
		{"empty input", "if", "", "expected if found EOF", "", 0},
		{"mismatch first rune", "if", "banana", "expected if found b", "", 1},
		{"mismatch second rune", "if", "ix", "expected if found ix", "", 2},
		{"empty literal", "", "anything", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(tt.input)
			loc, err := Tag(tt.tag).Parse(src)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse succeeded, want error containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Message, tt.wantErr) {
					t.Errorf("message = %q, want containing %q", err.Message, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Parse failed: %v", err)
				}
				if loc.Lexeme != tt.lexeme {
					t.Errorf("Lexeme = %q, want %q", loc.Lexeme, tt.lexeme)
				}
			}
			if src.Pos() != tt.pos {
				t.Errorf("Pos() = %d, want %d", src.Pos(), tt.pos)
			}
		})
	}
}

func TestTagWhitespaceTransparency(t *testing.T) {
	src := NewSource(" if ")
	src.AddWhitespace(' ')
	loc, err := Tag("if").Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if loc.Lexeme != "if" {
		t.Errorf("Lexeme = %q, want %q", loc.Lexeme, "if")
	}
}

func TestRegex(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		wantErr string
		lexeme  string
		pos     int
	}{
		{"digits then letters", "[0-9]+", "123abc", "", "123", 3},
		{"digits to end", "[0-9]+", "123", "", "123", 3},
		{"single rune", "[0-9]+", "5", "", "5", 1},
		{"no digits", "[0-9]+", "abc", "expected [0-9]+ found a", "", 1},
		{"empty input", "[0-9]+", "", "expected [0-9]+ found EOF", "", 0},
		{"identifier", "[a-z][a-z0-9]*", "ab1!", "", "ab1", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(tt.input)
			loc, err := Regex(tt.pattern).Parse(src)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse succeeded with %q, want error", loc.Lexeme)
				}
				if !strings.Contains(err.Message, tt.wantErr) {
					t.Errorf("message = %q, want containing %q", err.Message, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Parse failed: %v", err)
				}
				if loc.Lexeme != tt.lexeme {
					t.Errorf("Lexeme = %q, want %q", loc.Lexeme, tt.lexeme)
				}
				if src.Pos() != tt.pos {
					t.Errorf("Pos() = %d, want %d", src.Pos(), tt.pos)
				}
			}
		})
	}
}

func TestRegexGreedyStopsAtLongestMatch(t *testing.T) {
	// The candidate grows past the last full match before stopping; the
	// cursor must end up after the match, not after the probe.
	src := NewSource("42+1")
	loc, err := Regex("[0-9]+").Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if loc.Lexeme != "42" {
		t.Errorf("Lexeme = %q, want %q", loc.Lexeme, "42")
	}
	if got := src.Peek(); got != '+' {
		t.Errorf("Peek() after match = %q, want '+'", got)
	}
}

func TestRegexLeadingWhitespace(t *testing.T) {
	src := NewSource("  42")
	src.AddWhitespace(' ')
	loc, err := Regex("[0-9]+").Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if loc.Lexeme != "42" {
		t.Errorf("Lexeme = %q, want %q", loc.Lexeme, "42")
	}
	if !src.EOF() {
		t.Errorf("Pos() = %d, want end of input", src.Pos())
	}
}

func TestRegexInvalidPatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Regex with invalid pattern did not panic")
		}
	}()
	Regex("[unclosed")
}
