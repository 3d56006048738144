// Package parse is a parser-combinator engine for building recursive-descent
// parsers out of small composable rules.
//
// # Overview
//
// A grammar is assembled from Rule values. Two primitives read the input
// directly: Tag (exact literal) and Regex (greedy pattern match). Everything
// else is built by combining rules: Choices for ordered alternation, Many for
// repetition, Seq/Then for sequencing, Map for transforming results, Rec for
// self-referential rules, and Catch/Optional for recovery.
//
// Rules operate on a shared Source cursor. The cursor skips a configurable
// set of whitespace runes transparently, so grammars match tokens without
// spelling out the spacing between them.
//
// # Building a parser
//
//	p := parse.Syntax(func(ctx *parse.Context) parse.Rule[int] {
//	    ctx.AddWhitespace(' ', '\t')
//	    digits := parse.Regex("[0-9]+").Named("number")
//	    return parse.Map(digits, func(loc parse.Location) int {
//	        n, _ := strconv.Atoi(loc.Lexeme)
//	        return n
//	    })
//	})
//	n, err := p.Parse("  42  ")
//
// # Backtracking
//
// Choices checkpoints the cursor once and restores it before every
// alternative, so a failing alternative never leaks partial consumption into
// its siblings. Many rolls back the attempt that ended the repetition. The
// sequencing combinators (Seq, Then, ThenSkip, SkipThen) never roll back: a
// mid-sequence failure propagates with the cursor left at the failure point.
// Catch and Optional restore the cursor before substituting their recovery
// value.
//
// # Limitations
//
// The engine is a plain recursive-descent parser. Left-recursive rules
// recurse until the call stack is exhausted; express repetition with Many or
// right recursion instead. There is no memoization, so pathological grammars
// can backtrack exponentially. A rule that succeeds without consuming input
// makes Many loop forever. Parsing is fully synchronous and a Source must not
// be shared across goroutines.
package parse
