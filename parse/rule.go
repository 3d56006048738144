package parse

// Rule is a composable unit of parsing behavior. Given a Source it either
// advances the cursor and produces a T, or returns an *Error. A failing
// rule may leave the cursor anywhere; combinators that recover (Choices,
// Many, Catch, Optional) are the ones that roll it back.
//
// Rules are values: Named and Ignore return modified copies, so a rule can
// be shared between grammar positions without aliasing surprises.
type Rule[T any] struct {
	name    string
	ignored bool
	parse   func(*Source) (T, *Error)
}

// NewRule wraps a parse function into a rule with a diagnostic name.
// This is the escape hatch for behavior the built-in combinators do not
// cover; most grammars never need it.
func NewRule[T any](name string, parse func(*Source) (T, *Error)) Rule[T] {
	return Rule[T]{name: name, parse: parse}
}

// Parse runs the rule against src.
func (r Rule[T]) Parse(src *Source) (T, *Error) {
	return r.parse(src)
}

// Name returns the diagnostic name used in Choices failure messages.
func (r Rule[T]) Name() string {
	return r.name
}

// Named returns a copy of the rule carrying a diagnostic name.
func (r Rule[T]) Named(name string) Rule[T] {
	r.name = name
	return r
}

// Ignore returns a copy whose result Seq drops from its output. The rule
// still has to succeed, and still consumes input.
func (r Rule[T]) Ignore() Rule[T] {
	r.ignored = true
	return r
}

// Erase adapts a typed rule for use with Seq, preserving its name and
// ignore flag.
func Erase[T any](r Rule[T]) Rule[any] {
	return Rule[any]{
		name:    r.name,
		ignored: r.ignored,
		parse: func(src *Source) (any, *Error) {
			v, err := r.parse(src)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// Pair is the ordered result of Then.
type Pair[A, B any] struct {
	First  A
	Second B
}
