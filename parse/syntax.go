package parse

// Context is the construction context handed to Syntax's build function.
// It collects per-grammar configuration, currently the whitespace runes
// every Source created by the parser will skip.
type Context struct {
	whitespace []rune
}

// AddWhitespace registers runes to skip transparently during parsing.
func (c *Context) AddWhitespace(runes ...rune) {
	c.whitespace = append(c.whitespace, runes...)
}

// Parser is the external boundary of a built grammar. Each Parse* call
// creates a fresh Source, so a Parser is safe to reuse and to share.
type Parser[T any] struct {
	root       Rule[T]
	whitespace []rune
	wrapErr    func(*Error) *Error
}

// Syntax builds a parser. The build function receives the construction
// context and returns the grammar's root rule; the rule graph is built
// once and reused for every parse.
func Syntax[T any](build func(*Context) Rule[T]) *Parser[T] {
	ctx := &Context{}
	root := build(ctx)
	return &Parser[T]{root: root, whitespace: ctx.whitespace}
}

func (p *Parser[T]) run(input string) (T, Location, *Error) {
	src := NewSource(input)
	for _, r := range p.whitespace {
		src.AddWhitespace(r)
	}
	start := src.Save()
	v, perr := p.root.parse(src)
	if perr != nil {
		if p.wrapErr != nil {
			perr = p.wrapErr(perr)
		}
		var zero T
		return zero, perr.Location, perr
	}
	wholeInput := src.Save()
	wholeInput.pos = len(src.content)
	return v, start.LocationTo(wholeInput), nil
}

// Parse runs the grammar over input, returning the parsed value or the
// structured *Error describing where matching stopped.
func (p *Parser[T]) Parse(input string) (T, error) {
	v, _, perr := p.run(input)
	if perr != nil {
		return v, perr
	}
	return v, nil
}

// MustParse is Parse for inputs that are known to be valid; it panics
// with the *Error otherwise.
func (p *Parser[T]) MustParse(input string) T {
	v, _, perr := p.run(input)
	if perr != nil {
		panic(perr)
	}
	return v
}

// ParseOrZero swallows the parse error, returning T's zero value when the
// input does not match.
func (p *Parser[T]) ParseOrZero(input string) T {
	v, _, _ := p.run(input)
	return v
}

// ParseWithLocation pairs the result with a Location. On success the
// location spans the whole input; on failure it is the failure's own
// location.
func (p *Parser[T]) ParseWithLocation(input string) (T, Location, error) {
	v, loc, perr := p.run(input)
	if perr != nil {
		return v, loc, perr
	}
	return v, loc, nil
}

// MapError derives a parser that transforms failures with f before they
// are surfaced. Successful parses are unaffected.
func (p *Parser[T]) MapError(f func(*Error) *Error) *Parser[T] {
	prev := p.wrapErr
	return &Parser[T]{
		root:       p.root,
		whitespace: p.whitespace,
		wrapErr: func(e *Error) *Error {
			if prev != nil {
				e = prev(e)
			}
			return f(e)
		},
	}
}

// Convert derives a parser whose result is f applied to p's result. The
// parsing semantics are p's; only the value changes.
func Convert[A, B any](p *Parser[A], f func(A) B) *Parser[B] {
	return &Parser[B]{
		root:       Map(p.root, f),
		whitespace: p.whitespace,
		wrapErr:    p.wrapErr,
	}
}
