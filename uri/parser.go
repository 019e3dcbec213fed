package uri

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/uriparse/parse"
)

func isAlphanumericOrHyphen(c byte) bool {
	return c == '-' || parse.IsAlphanumeric(c)
}

// isURLCodePoint covers the character set shared by path segments, query
// keys and values, and fragments.
func isURLCodePoint(c byte) bool {
	return c == '-' || c == '.' || parse.IsAlphanumeric(c)
}

var (
	alphanumericHyphen1 = parse.TakeWhile1(isAlphanumericOrHyphen, parse.KindAlphaNumeric)
	urlCodePoints       = parse.TakeWhile0(isURLCodePoint)
	alpha1              = parse.Alpha1()
	alphanumeric1       = parse.Alphanumeric1()
)

// digits recognizes between min and max decimal digits, greedily. It never
// backs off to a shorter run: overflow handling is left to the caller.
func digits(min, max int) parse.Parser[string] {
	return parse.Map(parse.ManyMN(min, max, parse.OneOf("0123456789")), func(ds []byte) string {
		return string(ds)
	})
}

var schemeLiteral = parse.Context("scheme",
	parse.Alt(parse.TagNoCase("HTTP://"), parse.TagNoCase("HTTPS://")))

// scheme recognizes the literal http:// or https:// prefix, ignoring case.
// Any other scheme is a failure, never coerced.
func scheme(input string) (string, Scheme, *parse.Error) {
	rest, match, err := schemeLiteral(input)
	if err != nil {
		return input, 0, err
	}
	if strings.EqualFold(match, "HTTPS://") {
		return rest, SchemeHTTPS, nil
	}
	return rest, SchemeHTTP, nil
}

var userinfo = parse.Context("authority", parse.Terminated(
	parse.SeparatedPair(alphanumeric1, parse.Opt(parse.Tag(":")), parse.Opt(alphanumeric1)),
	parse.Tag("@")))

// authority recognizes user[:password]@. Without the trailing @ the whole
// parse fails with nothing consumed, so callers can treat it as absent.
func authority(input string) (string, Authority, *parse.Error) {
	rest, pair, err := userinfo(input)
	if err != nil {
		return input, Authority{}, err
	}
	a := Authority{User: pair.First}
	if pair.Second != nil {
		a.Password = *pair.Second
	}
	return rest, a, nil
}

var dottedLabels = parse.Many1(parse.Terminated(alphanumericHyphen1, parse.Tag(".")))

// domainDotted recognizes one or more dot-terminated labels followed by an
// alphabetic top label. A numeric top label makes this branch fail, which
// is what leaves ".123" unconsumed for inputs like "example.123".
func domainDotted(input string) (string, Host, *parse.Error) {
	rest, labels, err := dottedLabels(input)
	if err != nil {
		return input, nil, err
	}
	rest, top, err := alpha1(rest)
	if err != nil {
		return input, nil, err
	}
	return rest, Domain(strings.Join(append(labels, top), ".")), nil
}

var singleLabel = parse.ManyMN(1, 1, alphanumericHyphen1)

// domainSingle recognizes a lone label such as "localhost".
func domainSingle(input string) (string, Host, *parse.Error) {
	rest, labels, err := singleLabel(input)
	if err != nil {
		return input, nil, err
	}
	return rest, Domain(labels[0]), nil
}

var hostParser = parse.Context("host", parse.Alt[Host](domainDotted, domainSingle))

var octetDigits = parse.Context("ip number", digits(1, 3))

// ipNum parses a 1-3 digit octet and range-checks it against 255. The digit
// run is greedy and never retried shorter: "1444" yields octet 144 with "4"
// left over. Overflow reports a bare failure and relies on the enclosing
// combinators to locate it.
func ipNum(input string) (string, uint8, *parse.Error) {
	rest, ds, err := octetDigits(input)
	if err != nil {
		return input, 0, err
	}
	n, convErr := strconv.ParseUint(ds, 10, 8)
	if convErr != nil {
		return input, 0, parse.BareError()
	}
	return rest, uint8(n), nil
}

var leadingOctets = parse.Count(parse.Terminated(parse.Parser[uint8](ipNum), parse.Tag(".")), 3)

// ipLiteral recognizes a dotted-quad address: three dot-terminated octets
// and a fourth with no trailing dot.
func ipLiteral(input string) (string, Host, *parse.Error) {
	rest, first, err := leadingOctets(input)
	if err != nil {
		return input, nil, err
	}
	rest, last, err := ipNum(rest)
	if err != nil {
		return input, nil, err
	}
	var a IPv4
	copy(a[:], first)
	a[3] = last
	return rest, a, nil
}

var ipParser = parse.Context("ip", parse.Parser[Host](ipLiteral))

// ipOrHost tries the IP literal first: dotted-quad syntax is a strict
// subset of domain syntax, so the order matters.
var ipOrHost = parse.Context("ip or host", parse.Alt(ipParser, hostParser))

var portDigits = parse.Context("port", parse.Preceded(parse.Tag(":"), digits(1, 5)))

// port recognizes : followed by 1-5 digits and validates the value fits in
// 16 bits. Overflow reports a bare failure, matching octet overflow.
func port(input string) (string, uint16, *parse.Error) {
	rest, ds, err := portDigits(input)
	if err != nil {
		return input, 0, err
	}
	n, convErr := strconv.ParseUint(ds, 10, 16)
	if convErr != nil {
		return input, 0, parse.BareError()
	}
	return rest, uint16(n), nil
}

var (
	pathSegments = parse.Many0(parse.Terminated(urlCodePoints, parse.Tag("/")))
	lastSegment  = parse.Opt(urlCodePoints)
	tagSlash     = parse.Tag("/")
)

// pathInner recognizes a leading slash, slash-terminated segments, and an
// optional trailing segment. A trailing empty segment is dropped, so paths
// ending in "/" do not grow an empty element, but the path itself stays
// present (non-nil) even when empty.
func pathInner(input string) (string, []string, *parse.Error) {
	rest, _, err := tagSlash(input)
	if err != nil {
		return input, nil, err
	}
	rest, segs, err := pathSegments(rest)
	if err != nil {
		return input, nil, err
	}
	out := make([]string, 0, len(segs)+1)
	out = append(out, segs...)
	rest, last, err := lastSegment(rest)
	if err != nil {
		return input, nil, err
	}
	if last != nil && *last != "" {
		out = append(out, *last)
	}
	return rest, out, nil
}

var pathParser = parse.Context("path", parse.Parser[[]string](pathInner))

var (
	tagEquals   = parse.Tag("=")
	tagQuestion = parse.Tag("?")
)

// keyValue recognizes key=value with both sides drawn from the URL code
// point set; either side may be empty.
func keyValue(input string) (string, QueryParam, *parse.Error) {
	rest, k, err := urlCodePoints(input)
	if err != nil {
		return input, QueryParam{}, err
	}
	rest, _, err = tagEquals(rest)
	if err != nil {
		return input, QueryParam{}, err
	}
	rest, v, err := urlCodePoints(rest)
	if err != nil {
		return input, QueryParam{}, err
	}
	return rest, QueryParam{Key: k, Value: v}, nil
}

var extraPairs = parse.Many0(parse.Preceded(parse.Tag("&"), parse.Parser[QueryParam](keyValue)))

// queryInner recognizes ?key=value with zero or more &key=value groups.
// Pairs keep input order and duplicate keys are retained.
func queryInner(input string) (string, []QueryParam, *parse.Error) {
	rest, _, err := tagQuestion(input)
	if err != nil {
		return input, nil, err
	}
	rest, first, err := keyValue(rest)
	if err != nil {
		return input, nil, err
	}
	rest, more, err := extraPairs(rest)
	if err != nil {
		return input, nil, err
	}
	return rest, append([]QueryParam{first}, more...), nil
}

var queryParser = parse.Context("query params", parse.Parser[[]QueryParam](queryInner))

var fragmentParser = parse.Context("fragment", parse.Preceded(parse.Tag("#"), urlCodePoints))

var (
	optAuthority = parse.Opt(parse.Parser[Authority](authority))
	optPort      = parse.Opt(parse.Parser[uint16](port))
	optPath      = parse.Opt(pathParser)
	optQuery     = parse.Opt(queryParser)
	optFragment  = parse.Opt(fragmentParser)
)

// uriInner sequences the components in their fixed order. Optional
// components either fully consume their grammar or are skipped with the
// cursor unchanged; there is no backtracking across components.
func uriInner(input string) (string, *URI, *parse.Error) {
	rest, s, err := scheme(input)
	if err != nil {
		return input, nil, err
	}
	rest, auth, err := optAuthority(rest)
	if err != nil {
		return input, nil, err
	}
	rest, h, err := ipOrHost(rest)
	if err != nil {
		return input, nil, err
	}
	rest, prt, err := optPort(rest)
	if err != nil {
		return input, nil, err
	}
	rest, pth, err := optPath(rest)
	if err != nil {
		return input, nil, err
	}
	rest, q, err := optQuery(rest)
	if err != nil {
		return input, nil, err
	}
	rest, frag, err := optFragment(rest)
	if err != nil {
		return input, nil, err
	}

	u := &URI{
		Scheme:    s,
		Authority: auth,
		Host:      h,
		Port:      prt,
		Fragment:  frag,
	}
	if pth != nil {
		u.Path = *pth
	}
	if q != nil {
		u.Query = *q
	}
	return rest, u, nil
}

var uriParser = parse.Context("uri", parse.Parser[*URI](uriInner))

// Parse parses a URI from the start of input and returns the unconsumed
// suffix alongside the result. Trailing input is not an error here; use
// ParseAll to require full consumption.
func Parse(input string) (string, *URI, error) {
	rest, u, err := uriParser(input)
	if err != nil {
		return input, nil, err
	}
	return rest, u, nil
}

// ParseAll is Parse requiring the whole input to be consumed.
func ParseAll(input string) (*URI, error) {
	rest, u, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("trailing input after uri: %q", rest)
	}
	return u, nil
}
