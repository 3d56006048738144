package parse

import "strings"

// Unbounded disables the upper repetition bound of ManyRange.
const Unbounded = -1

// Choices tries each alternative in order from the same checkpoint,
// restoring the cursor before every attempt. The first success wins, no
// matter how much a later alternative might have consumed. When every
// alternative fails, the failure aggregates the alternatives' names.
func Choices[T any](rules ...Rule[T]) Rule[T] {
	return NewRule("choices", func(src *Source) (T, *Error) {
		checkpoint := src.Save()
		for _, r := range rules {
			src.Restore(checkpoint)
			v, err := r.parse(src)
			if err == nil {
				return v, nil
			}
		}
		names := make([]string, len(rules))
		for i, r := range rules {
			names[i] = r.name
		}
		var zero T
		loc := checkpoint.LocationTo(src)
		return zero, newError(loc, "no match: expected one of %s", strings.Join(names, ", "))
	})
}

// Or is the two-alternative form of Choices.
func Or[T any](a, b Rule[T]) Rule[T] {
	return Choices(a, b)
}

// Many matches r zero or more times. See ManyRange.
func Many[T any](r Rule[T]) Rule[[]T] {
	return ManyRange(r, 0, Unbounded)
}

// ManyRange matches r repeatedly, collecting the results in order. Each
// attempt is checkpointed; the attempt that fails is rolled back and ends
// the loop without consuming anything. The rule fails when the collected
// count falls outside [min, max] (max = Unbounded lifts the upper bound),
// with an error spanning the whole attempted region.
func ManyRange[T any](r Rule[T], min, max int) Rule[[]T] {
	return NewRule("many "+r.name, func(src *Source) ([]T, *Error) {
		start := src.Save()
		var out []T
		for {
			attempt := src.Save()
			v, err := r.parse(src)
			if err != nil {
				src.Restore(attempt)
				break
			}
			out = append(out, v)
		}
		if len(out) < min || (max != Unbounded && len(out) > max) {
			loc := start.LocationTo(src)
			if max == Unbounded {
				return nil, newError(loc, "expected at least %d of %s, found %d", min, r.name, len(out))
			}
			return nil, newError(loc, "expected between %d and %d of %s, found %d", min, max, r.name, len(out))
		}
		return out, nil
	})
}

// Seq runs each rule in order on the shared cursor. A failure anywhere is
// fatal to the whole sequence and propagates immediately, cursor left at
// the failure point. Results of rules marked Ignore are dropped from the
// output; the rules themselves still run and still consume input.
func Seq(rules ...Rule[any]) Rule[[]any] {
	return NewRule("seq", func(src *Source) ([]any, *Error) {
		out := make([]any, 0, len(rules))
		for _, r := range rules {
			v, err := r.parse(src)
			if err != nil {
				return nil, err
			}
			if !r.ignored {
				out = append(out, v)
			}
		}
		return out, nil
	})
}

// Then sequences a and b, producing the pair of both results. Like Seq it
// never rolls back.
func Then[A, B any](a Rule[A], b Rule[B]) Rule[Pair[A, B]] {
	return NewRule("then", func(src *Source) (Pair[A, B], *Error) {
		var zero Pair[A, B]
		av, err := a.parse(src)
		if err != nil {
			return zero, err
		}
		bv, err := b.parse(src)
		if err != nil {
			return zero, err
		}
		return Pair[A, B]{First: av, Second: bv}, nil
	})
}

// ThenSkip sequences a and b but yields only a's result.
func ThenSkip[A, B any](a Rule[A], b Rule[B]) Rule[A] {
	return NewRule("then", func(src *Source) (A, *Error) {
		var zero A
		av, err := a.parse(src)
		if err != nil {
			return zero, err
		}
		if _, err := b.parse(src); err != nil {
			return zero, err
		}
		return av, nil
	})
}

// SkipThen sequences a and b but yields only b's result.
func SkipThen[A, B any](a Rule[A], b Rule[B]) Rule[B] {
	return NewRule("then", func(src *Source) (B, *Error) {
		var zero B
		if _, err := a.parse(src); err != nil {
			return zero, err
		}
		return b.parse(src)
	})
}

// Map transforms the rule's success value with a pure function. Failures
// pass through untouched.
func Map[A, B any](r Rule[A], f func(A) B) Rule[B] {
	return Rule[B]{
		name:    r.name,
		ignored: r.ignored,
		parse: func(src *Source) (B, *Error) {
			v, err := r.parse(src)
			if err != nil {
				var zero B
				return zero, err
			}
			return f(v), nil
		},
	}
}

// Rec supports self-referential rules. The build function receives a
// placeholder that delegates to the rule build returns, so the grammar can
// embed the placeholder anywhere, including recursively:
//
//	expr := parse.Rec(func(self parse.Rule[int]) parse.Rule[int] {
//	    group := parse.SkipThen(parse.Tag("("), parse.ThenSkip(self, parse.Tag(")")))
//	    return parse.Or(number, group)
//	})
//
// Left recursion is not supported: a rule whose first step is itself
// recurses until the stack is exhausted.
func Rec[T any](build func(self Rule[T]) Rule[T]) Rule[T] {
	var slot Rule[T]
	self := NewRule("rec", func(src *Source) (T, *Error) {
		return slot.parse(src)
	})
	slot = build(self)
	return slot
}

// Catch recovers from a failure of r by substituting handler's value. The
// cursor is restored to its pre-attempt position first, so a partial
// consumption by r never leaks into what follows.
func Catch[T any](r Rule[T], handler func(*Error) T) Rule[T] {
	return Rule[T]{
		name:    r.name,
		ignored: r.ignored,
		parse: func(src *Source) (T, *Error) {
			checkpoint := src.Save()
			v, err := r.parse(src)
			if err != nil {
				src.Restore(checkpoint)
				return handler(err), nil
			}
			return v, nil
		},
	}
}

// Optional substitutes fallback when r fails, restoring the cursor like
// Catch. Use the zero value as fallback for an "absent" result.
func Optional[T any](r Rule[T], fallback T) Rule[T] {
	return Catch(r, func(*Error) T { return fallback })
}
