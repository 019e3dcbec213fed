package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/uriparse/uri"
)

type JSONEncoder struct {
	w   io.Writer
	uri *uri.URI
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(u *uri.URI) error {
	e.uri = u
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildURIData()
	return json.MarshalIndent(data, "", "  ")
}

// Absent components render as null; a present-but-empty path renders as [],
// keeping the "/" versus no-path distinction visible.
type jsonURI struct {
	Scheme    string         `json:"scheme"`
	Authority *jsonAuthority `json:"authority"`
	Host      jsonHost       `json:"host"`
	Port      *uint16        `json:"port"`
	Path      []string       `json:"path"`
	Query     []jsonParam    `json:"query"`
	Fragment  *string        `json:"fragment"`
}

type jsonAuthority struct {
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
}

type jsonHost struct {
	Kind   string `json:"kind"`
	Domain string `json:"domain,omitempty"`
	Octets []int  `json:"octets,omitempty"`
}

type jsonParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (e *JSONEncoder) buildURIData() jsonURI {
	u := e.uri
	data := jsonURI{
		Scheme:   u.Scheme.String(),
		Port:     u.Port,
		Path:     u.Path,
		Fragment: u.Fragment,
	}
	if u.Authority != nil {
		data.Authority = &jsonAuthority{
			User:     u.Authority.User,
			Password: u.Authority.Password,
		}
	}
	switch h := u.Host.(type) {
	case uri.Domain:
		data.Host = jsonHost{Kind: "domain", Domain: string(h)}
	case uri.IPv4:
		data.Host = jsonHost{
			Kind:   "ipv4",
			Octets: []int{int(h[0]), int(h[1]), int(h[2]), int(h[3])},
		}
	}
	if u.Query != nil {
		data.Query = make([]jsonParam, 0, len(u.Query))
		for _, q := range u.Query {
			data.Query = append(data.Query, jsonParam{Key: q.Key, Value: q.Value})
		}
	}
	return data
}
