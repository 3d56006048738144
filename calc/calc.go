// Package calc evaluates integer arithmetic expressions. It is the
// reference consumer of the parse engine: a grammar with two precedence
// levels, parenthesized sub-expressions, and whitespace-transparent
// tokens, assembled entirely from combinators.
package calc

import (
	"github.com/dhamidi/combine/parse"
)

// opChain is the shape of one precedence level before folding: a first
// operand followed by (operator, operand) steps.
type opChain = parse.Pair[int, []parse.Pair[parse.Location, int]]

// New builds the expression parser. The grammar is the classic
// right-leaning precedence ladder, with repetition instead of left
// recursion:
//
//	expr   = term   { ("+" | "-") term }
//	term   = factor { ("*" | "/") factor }
//	factor = number | "(" expr ")"
//
// Division is truncating integer division; a zero divisor fails the
// parse with an error located at the offending operator. Precedence
// falls out of the nesting: term binds "*" and "/" before expr sees
// "+" and "-".
func New() *parse.Parser[int] {
	return parse.Syntax(func(ctx *parse.Context) parse.Rule[int] {
		ctx.AddWhitespace(' ', '\t', '\r', '\n')

		return parse.Rec(func(expr parse.Rule[int]) parse.Rule[int] {
			number := parse.Map(parse.Regex("[0-9]+").Named("number"), numberValue)
			group := parse.SkipThen(
				parse.Tag("("),
				parse.ThenSkip(expr, parse.Tag(")")),
			).Named("group")
			factor := parse.Choices(number, group).Named("factor")

			mulOp := parse.Or(parse.Tag("*"), parse.Tag("/")).Named("* or /")
			term := fold("term", parse.Then(factor, parse.Many(parse.Then(mulOp, factor))))

			addOp := parse.Or(parse.Tag("+"), parse.Tag("-")).Named("+ or -")
			return fold("expr", parse.Then(term, parse.Many(parse.Then(addOp, term))))
		})
	})
}

// numberValue builds the integer from the matched digit runes. The
// cursor skips whitespace transparently, so the lexeme can legitimately
// contain whitespace between digits ("4 2"); only the digits count.
func numberValue(loc parse.Location) int {
	n := 0
	for _, r := range loc.Lexeme {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}

// fold wraps a precedence-level chain into a rule that evaluates it.
func fold(name string, chain parse.Rule[opChain]) parse.Rule[int] {
	return parse.NewRule(name, func(src *parse.Source) (int, *parse.Error) {
		p, err := chain.Parse(src)
		if err != nil {
			return 0, err
		}
		return apply(p)
	})
}

// apply evaluates an operator chain left to right, which makes "-" and
// "/" left-associative. Dividing by zero fails at the operator.
func apply(p opChain) (int, *parse.Error) {
	acc := p.First
	for _, step := range p.Second {
		switch step.First.Lexeme {
		case "+":
			acc += step.Second
		case "-":
			acc -= step.Second
		case "*":
			acc *= step.Second
		case "/":
			if step.Second == 0 {
				return 0, &parse.Error{
					Location: step.First,
					Problem:  parse.Span{Start: step.First.Start, End: step.First.End},
					Message:  "division by zero",
				}
			}
			acc /= step.Second
		}
	}
	return acc, nil
}
