package parse

// Pair holds the two results of SeparatedPair.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Context labels p with a grammar-rule name. On failure the label is
// appended to the trail together with the input at which the rule was
// attempted.
func Context[T any](label string, p Parser[T]) Parser[T] {
	return func(input string) (string, T, *Error) {
		rest, v, err := p(input)
		if err != nil {
			var zero T
			return input, zero, err.appendContext(input, label)
		}
		return rest, v, nil
	}
}

// Map transforms the result of p with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) (string, B, *Error) {
		rest, v, err := p(input)
		if err != nil {
			var zero B
			return input, zero, err
		}
		return rest, f(v), nil
	}
}

// Alt tries each parser in order and returns the first success. When every
// branch fails, the trail of the last branch is kept and an alt frame is
// appended at the original input. Failed branches consume nothing, so each
// branch is tried from the same offset.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(input string) (string, T, *Error) {
		var last *Error
		for _, p := range parsers {
			rest, v, err := p(input)
			if err == nil {
				return rest, v, nil
			}
			last = err
		}
		var zero T
		if last == nil {
			last = BareError()
		}
		return input, zero, last.appendKind(input, KindAlt)
	}
}

// Opt turns a failure of p into an absent result with the input unchanged.
// The result is nil when p failed, otherwise a pointer to p's value.
func Opt[T any](p Parser[T]) Parser[*T] {
	return func(input string) (string, *T, *Error) {
		rest, v, err := p(input)
		if err != nil {
			return input, nil, nil
		}
		return rest, &v, nil
	}
}

// Terminated runs p followed by suffix and returns p's value.
func Terminated[A, B any](p Parser[A], suffix Parser[B]) Parser[A] {
	return func(input string) (string, A, *Error) {
		var zero A
		rest, v, err := p(input)
		if err != nil {
			return input, zero, err
		}
		rest, _, err = suffix(rest)
		if err != nil {
			return input, zero, err
		}
		return rest, v, nil
	}
}

// Preceded runs prefix followed by p and returns p's value.
func Preceded[A, B any](prefix Parser[A], p Parser[B]) Parser[B] {
	return func(input string) (string, B, *Error) {
		var zero B
		rest, _, err := prefix(input)
		if err != nil {
			return input, zero, err
		}
		rest, v, err := p(rest)
		if err != nil {
			return input, zero, err
		}
		return rest, v, nil
	}
}

// Delimited runs open, p, end and returns p's value.
func Delimited[A, B, C any](open Parser[A], p Parser[B], end Parser[C]) Parser[B] {
	return func(input string) (string, B, *Error) {
		var zero B
		rest, _, err := open(input)
		if err != nil {
			return input, zero, err
		}
		rest, v, err := p(rest)
		if err != nil {
			return input, zero, err
		}
		rest, _, err = end(rest)
		if err != nil {
			return input, zero, err
		}
		return rest, v, nil
	}
}

// SeparatedPair runs first, sep, second and returns the outer two values.
func SeparatedPair[A, B, C any](first Parser[A], sep Parser[B], second Parser[C]) Parser[Pair[A, C]] {
	return func(input string) (string, Pair[A, C], *Error) {
		var zero Pair[A, C]
		rest, a, err := first(input)
		if err != nil {
			return input, zero, err
		}
		rest, _, err = sep(rest)
		if err != nil {
			return input, zero, err
		}
		rest, c, err := second(rest)
		if err != nil {
			return input, zero, err
		}
		return rest, Pair[A, C]{First: a, Second: c}, nil
	}
}

// Many0 applies p repeatedly until it fails, collecting the results. It
// never fails on zero matches, but rejects an inner parser that succeeds
// without consuming input, which would otherwise loop forever.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(input string) (string, []T, *Error) {
		var out []T
		rest := input
		for {
			next, v, err := p(rest)
			if err != nil {
				return rest, out, nil
			}
			if len(next) == len(rest) {
				return input, nil, NewError(rest, KindMany0)
			}
			out = append(out, v)
			rest = next
		}
	}
}

// Many1 is Many0 requiring at least one match. On zero matches the inner
// failure is kept and a many1 frame is appended at the original input.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(input string) (string, []T, *Error) {
		rest, v, err := p(input)
		if err != nil {
			return input, nil, err.appendKind(input, KindMany1)
		}
		if len(rest) == len(input) {
			return input, nil, NewError(input, KindMany1)
		}
		next, more, err := Many0(p)(rest)
		if err != nil {
			return input, nil, err
		}
		return next, append([]T{v}, more...), nil
	}
}

// ManyMN applies p between min and max times. Matching stops silently at
// max; fewer than min matches keeps the inner failure and appends a many_mn
// frame at the original input.
func ManyMN[T any](min, max int, p Parser[T]) Parser[[]T] {
	return func(input string) (string, []T, *Error) {
		var out []T
		rest := input
		for len(out) < max {
			next, v, err := p(rest)
			if err != nil {
				if len(out) < min {
					return input, nil, err.appendKind(input, KindManyMN)
				}
				break
			}
			if len(next) == len(rest) {
				return input, nil, NewError(rest, KindManyMN)
			}
			out = append(out, v)
			rest = next
		}
		return rest, out, nil
	}
}

// Count applies p exactly n times. Any failure keeps the inner trail and
// appends a count frame at the original input.
func Count[T any](p Parser[T], n int) Parser[[]T] {
	return func(input string) (string, []T, *Error) {
		out := make([]T, 0, n)
		rest := input
		for i := 0; i < n; i++ {
			next, v, err := p(rest)
			if err != nil {
				return input, nil, err.appendKind(input, KindCount)
			}
			out = append(out, v)
			rest = next
		}
		return rest, out, nil
	}
}

// SeparatedList0 collects zero or more values of p separated by sep. A
// failing first match yields an empty list; a trailing separator with no
// following value is left unconsumed.
func SeparatedList0[S, T any](sep Parser[S], p Parser[T]) Parser[[]T] {
	return func(input string) (string, []T, *Error) {
		rest, v, err := p(input)
		if err != nil {
			return input, []T{}, nil
		}
		out := []T{v}
		for {
			afterSep, _, err := sep(rest)
			if err != nil {
				return rest, out, nil
			}
			next, v, err := p(afterSep)
			if err != nil {
				return rest, out, nil
			}
			if len(next) == len(rest) {
				return input, nil, NewError(rest, KindSeparated)
			}
			out = append(out, v)
			rest = next
		}
	}
}
