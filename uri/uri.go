// Package uri parses a restricted URI grammar of the form
//
//	scheme://[user[:password]@]host[:port][/path][?query][#fragment]
//
// where scheme is http or https, host is either a dotted domain name or an
// IPv4 literal, and path/query/fragment draw from a small unreserved
// character set. The parser performs no percent-decoding, no case
// normalization and no relative-reference resolution; it recognizes exactly
// this grammar and reports anything else as a failure with a full context
// trail.
package uri

import "fmt"

// Scheme is the protocol component of a URI.
type Scheme int

const (
	SchemeHTTP Scheme = iota
	SchemeHTTPS
)

func (s Scheme) String() string {
	if s == SchemeHTTPS {
		return "https"
	}
	return "http"
}

// Host is either a Domain or an IPv4 literal.
type Host interface {
	fmt.Stringer
	isHost()
}

// Domain is a dotted host name such as "www.example.org".
type Domain string

func (Domain) isHost() {}

func (d Domain) String() string { return string(d) }

// IPv4 is a dotted-quad address literal.
type IPv4 [4]uint8

func (IPv4) isHost() {}

func (a IPv4) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// Authority is the user information preceding the host. Password is empty
// when the userinfo carried no password; the grammar cannot produce an
// empty password, so "" always means absent.
type Authority struct {
	User     string
	Password string
}

// QueryParam is one key=value pair from the query component.
type QueryParam struct {
	Key   string
	Value string
}

// URI is the parse result. Scheme and Host are always populated; the
// remaining components are present only when the input contained them. A
// non-nil empty Path distinguishes a bare "/" from an absent path, and a
// non-nil empty Fragment distinguishes a bare "#" from an absent fragment.
type URI struct {
	Scheme    Scheme
	Authority *Authority
	Host      Host
	Port      *uint16
	Path      []string
	Query     []QueryParam
	Fragment  *string
}
