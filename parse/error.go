package parse

import (
	"fmt"
	"strings"
)

// Kind identifies the primitive or combinator that produced a failure frame.
type Kind string

const (
	KindTag          Kind = "tag"
	KindChar         Kind = "char"
	KindOneOf        Kind = "one_of"
	KindIsNot        Kind = "is_not"
	KindTake         Kind = "take"
	KindAlpha        Kind = "alpha"
	KindAlphaNumeric Kind = "alphanumeric"
	KindDigit        Kind = "digit"
	KindAlt          Kind = "alt"
	KindMany0        Kind = "many0"
	KindMany1        Kind = "many1"
	KindManyMN       Kind = "many_mn"
	KindCount        Kind = "count"
	KindSeparated    Kind = "separated_list"
)

// Frame is one entry in a failure trail. Exactly one of Kind and Context is
// set: Kind for primitive and combinator failures, Context for grammar-rule
// labels attached by Context.
type Frame struct {
	Input   string // unconsumed input at the point the frame was recorded
	Kind    Kind
	Context string
}

// Error is the failure value produced by parsers. Frames are ordered from
// the innermost failure outward, ending with the outermost context label.
// An Error may carry no frames at all: validation failures such as numeric
// overflow report a bare error and rely on enclosing combinators and
// contexts to locate them.
type Error struct {
	Frames []Frame
}

// NewError returns a failure with a single kind frame.
func NewError(input string, kind Kind) *Error {
	return &Error{Frames: []Frame{{Input: input, Kind: kind}}}
}

// BareError returns a failure with no frames.
func BareError() *Error {
	return &Error{}
}

func (e *Error) appendKind(input string, kind Kind) *Error {
	e.Frames = append(e.Frames, Frame{Input: input, Kind: kind})
	return e
}

func (e *Error) appendContext(input string, label string) *Error {
	e.Frames = append(e.Frames, Frame{Input: input, Context: label})
	return e
}

func (e *Error) Error() string {
	if len(e.Frames) == 0 {
		return "parse failed"
	}
	var b strings.Builder
	for i, f := range e.Frames {
		if i > 0 {
			b.WriteString("\n")
		}
		if f.Context != "" {
			fmt.Fprintf(&b, "in %s at %q", f.Context, snippet(f.Input))
		} else {
			fmt.Fprintf(&b, "expected %s at %q", f.Kind, snippet(f.Input))
		}
	}
	return b.String()
}

// snippet truncates long inputs for error messages.
func snippet(s string) string {
	const max = 40
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
