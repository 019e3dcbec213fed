// Package parse implements small composable parsers over an immutable input
// string. A parser consumes a prefix of its input and returns the unconsumed
// remainder together with a value; on failure it returns its input untouched,
// so alternation can always retry another branch from the same offset.
//
// Failures carry an ordered trail of frames (see Error) recording which
// primitive gave up, which combinators wrapped it, and which grammar rules
// were being attempted. The trail is built only on the failure path; success
// allocates nothing beyond the parsed value.
package parse

import "strings"

// Parser consumes a prefix of input and produces a value of type T. On
// success rest holds the unconsumed suffix of input. On failure rest is the
// original input and the error describes the failure trail.
type Parser[T any] func(input string) (rest string, value T, err *Error)

// Tag recognizes the exact literal tag at the start of the input.
func Tag(tag string) Parser[string] {
	return func(input string) (string, string, *Error) {
		if len(input) >= len(tag) && input[:len(tag)] == tag {
			return input[len(tag):], input[:len(tag)], nil
		}
		return input, "", NewError(input, KindTag)
	}
}

// TagNoCase recognizes the literal tag at the start of the input, ignoring
// ASCII case. The returned value preserves the input's spelling.
func TagNoCase(tag string) Parser[string] {
	return func(input string) (string, string, *Error) {
		if len(input) >= len(tag) && strings.EqualFold(input[:len(tag)], tag) {
			return input[len(tag):], input[:len(tag)], nil
		}
		return input, "", NewError(input, KindTag)
	}
}

// Char recognizes the single byte c.
func Char(c byte) Parser[byte] {
	return func(input string) (string, byte, *Error) {
		if len(input) > 0 && input[0] == c {
			return input[1:], c, nil
		}
		return input, 0, NewError(input, KindChar)
	}
}

// OneOf recognizes a single byte contained in set.
func OneOf(set string) Parser[byte] {
	return func(input string) (string, byte, *Error) {
		if len(input) > 0 && strings.IndexByte(set, input[0]) >= 0 {
			return input[1:], input[0], nil
		}
		return input, 0, NewError(input, KindOneOf)
	}
}

// Take consumes exactly n bytes. Take(0) always succeeds with an empty
// match.
func Take(n int) Parser[string] {
	return func(input string) (string, string, *Error) {
		if len(input) < n {
			return input, "", NewError(input, KindTake)
		}
		return input[n:], input[:n], nil
	}
}

// IsNot consumes one or more bytes not contained in set.
func IsNot(set string) Parser[string] {
	return func(input string) (string, string, *Error) {
		i := 0
		for i < len(input) && strings.IndexByte(set, input[i]) < 0 {
			i++
		}
		if i == 0 {
			return input, "", NewError(input, KindIsNot)
		}
		return input[i:], input[:i], nil
	}
}

// TakeWhile0 consumes the maximal, possibly empty run of bytes satisfying
// pred. It never fails.
func TakeWhile0(pred func(byte) bool) Parser[string] {
	return func(input string) (string, string, *Error) {
		i := 0
		for i < len(input) && pred(input[i]) {
			i++
		}
		return input[i:], input[:i], nil
	}
}

// TakeWhile1 consumes the maximal run of bytes satisfying pred and fails
// with the given kind when the run is empty.
func TakeWhile1(pred func(byte) bool, kind Kind) Parser[string] {
	return func(input string) (string, string, *Error) {
		i := 0
		for i < len(input) && pred(input[i]) {
			i++
		}
		if i == 0 {
			return input, "", NewError(input, kind)
		}
		return input[i:], input[:i], nil
	}
}

// Alpha1 consumes one or more ASCII letters.
func Alpha1() Parser[string] {
	return TakeWhile1(IsAlpha, KindAlpha)
}

// Alphanumeric1 consumes one or more ASCII letters or digits.
func Alphanumeric1() Parser[string] {
	return TakeWhile1(IsAlphanumeric, KindAlphaNumeric)
}

// Digit1 consumes one or more ASCII digits.
func Digit1() Parser[string] {
	return TakeWhile1(IsDigit, KindDigit)
}

// Whitespace0 consumes the maximal, possibly empty run of ASCII whitespace.
func Whitespace0() Parser[string] {
	return TakeWhile0(IsSpace)
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlphanumeric reports whether c is an ASCII letter or digit.
func IsAlphanumeric(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsSpace reports whether c is ASCII whitespace.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
