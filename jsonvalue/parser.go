package jsonvalue

import (
	"strconv"
	"strings"

	"github.com/dhamidi/uriparse/parse"
)

var (
	ws     = parse.Whitespace0()
	quote  = parse.Char('"')
	digit1 = parse.Digit1()

	openBrace    = parse.Preceded(ws, parse.Char('{'))
	closeBrace   = parse.Preceded(ws, parse.Char('}'))
	openBracket  = parse.Preceded(ws, parse.Char('['))
	closeBracket = parse.Preceded(ws, parse.Char(']'))
	comma        = parse.Preceded(ws, parse.Char(','))
	colon        = parse.Preceded(ws, parse.Char(':'))

	booleanParser = parse.Alt(
		parse.Map(parse.Tag("true"), func(string) bool { return true }),
		parse.Map(parse.Tag("false"), func(string) bool { return false }),
	)
	nullTag = parse.Tag("null")
)

// valueParser dispatches on the alternatives in fixed order. Assigned in
// init because objectValue and arrayValue recurse back into it.
var valueParser parse.Parser[Value]

func init() {
	valueParser = parse.Alt[Value](
		objectValue,
		arrayValue,
		stringValue,
		numberValue,
		boolValue,
		nullValue,
	)
}

// Parse parses a single JSON value from the start of input and returns the
// unconsumed suffix alongside it. Trailing input, including trailing
// whitespace, is left for the caller.
func Parse(input string) (string, Value, error) {
	rest, v, err := value(input)
	if err != nil {
		return input, nil, err
	}
	return rest, v, nil
}

// value recognizes any JSON value after optional leading whitespace.
func value(input string) (string, Value, *parse.Error) {
	rest, _, _ := ws(input)
	next, v, err := valueParser(rest)
	if err != nil {
		return input, nil, err
	}
	return next, v, nil
}

// stringLiteral recognizes a double-quoted string. Backslash escapes are
// consumed as two-byte pairs and kept verbatim; no unescaping is performed.
func stringLiteral(input string) (string, string, *parse.Error) {
	rest, _, err := quote(input)
	if err != nil {
		return input, "", err
	}
	i := 0
	for i < len(rest) {
		switch rest[i] {
		case '"':
			return rest[i+1:], rest[:i], nil
		case '\\':
			if i+1 >= len(rest) {
				return input, "", parse.NewError(rest[i:], parse.KindChar)
			}
			i += 2
		default:
			i++
		}
	}
	return input, "", parse.NewError(rest, parse.KindChar)
}

// number recognizes an unsigned decimal with an optional fractional part.
// The fractional digits are consumed as a single run and the whole span is
// converted positionally, so "1.05" and "1.5" stay distinct. A dot without
// a following digit is left unconsumed.
func number(input string) (string, float64, *parse.Error) {
	rest, intPart, err := digit1(input)
	if err != nil {
		return input, 0, err
	}
	span := intPart
	if strings.HasPrefix(rest, ".") {
		fracRest, frac, fracErr := digit1(rest[1:])
		if fracErr == nil {
			span = input[:len(intPart)+1+len(frac)]
			rest = fracRest
		}
	}
	n, convErr := strconv.ParseFloat(span, 64)
	if convErr != nil {
		return input, 0, parse.BareError()
	}
	return rest, n, nil
}

// member recognizes "key": value; whitespace may precede the key.
func member(input string) (string, Member, *parse.Error) {
	rest, _, _ := ws(input)
	rest, k, err := stringLiteral(rest)
	if err != nil {
		return input, Member{}, err
	}
	rest, _, err = colon(rest)
	if err != nil {
		return input, Member{}, err
	}
	rest, v, err := value(rest)
	if err != nil {
		return input, Member{}, err
	}
	return rest, Member{Key: k, Value: v}, nil
}

var (
	memberList  = parse.SeparatedList0(comma, parse.Parser[Member](member))
	elementList = parse.SeparatedList0(comma, parse.Parser[Value](value))
)

func objectValue(input string) (string, Value, *parse.Error) {
	rest, _, err := openBrace(input)
	if err != nil {
		return input, nil, err
	}
	rest, members, err := memberList(rest)
	if err != nil {
		return input, nil, err
	}
	rest, _, err = closeBrace(rest)
	if err != nil {
		return input, nil, err
	}
	return rest, Object(members), nil
}

func arrayValue(input string) (string, Value, *parse.Error) {
	rest, _, err := openBracket(input)
	if err != nil {
		return input, nil, err
	}
	rest, elements, err := elementList(rest)
	if err != nil {
		return input, nil, err
	}
	rest, _, err = closeBracket(rest)
	if err != nil {
		return input, nil, err
	}
	return rest, Array(elements), nil
}

func stringValue(input string) (string, Value, *parse.Error) {
	rest, s, err := stringLiteral(input)
	if err != nil {
		return input, nil, err
	}
	return rest, String(s), nil
}

func numberValue(input string) (string, Value, *parse.Error) {
	rest, n, err := number(input)
	if err != nil {
		return input, nil, err
	}
	return rest, Number(n), nil
}

func boolValue(input string) (string, Value, *parse.Error) {
	rest, b, err := booleanParser(input)
	if err != nil {
		return input, nil, err
	}
	return rest, Bool(b), nil
}

func nullValue(input string) (string, Value, *parse.Error) {
	rest, _, err := nullTag(input)
	if err != nil {
		return input, nil, err
	}
	return rest, Null{}, nil
}
