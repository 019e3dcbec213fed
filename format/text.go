package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/uriparse/uri"
)

// TextEncoder renders one component per line for human consumption.
type TextEncoder struct {
	w   io.Writer
	uri *uri.URI
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(u *uri.URI) error {
	e.uri = u
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	u := e.uri
	var b strings.Builder
	fmt.Fprintf(&b, "scheme:   %s\n", u.Scheme)
	if u.Authority != nil {
		fmt.Fprintf(&b, "user:     %s\n", u.Authority.User)
		if u.Authority.Password != "" {
			fmt.Fprintf(&b, "password: %s\n", u.Authority.Password)
		}
	}
	switch h := u.Host.(type) {
	case uri.Domain:
		fmt.Fprintf(&b, "host:     %s (domain)\n", h)
	case uri.IPv4:
		fmt.Fprintf(&b, "host:     %s (ipv4)\n", h)
	}
	if u.Port != nil {
		fmt.Fprintf(&b, "port:     %d\n", *u.Port)
	}
	if u.Path != nil {
		fmt.Fprintf(&b, "path:     /%s\n", strings.Join(u.Path, "/"))
	}
	for _, q := range u.Query {
		fmt.Fprintf(&b, "query:    %s=%s\n", q.Key, q.Value)
	}
	if u.Fragment != nil {
		fmt.Fprintf(&b, "fragment: %s\n", *u.Fragment)
	}
	return []byte(b.String()), nil
}
