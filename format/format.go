// Package format renders parsed URIs for display.
package format

import (
	"encoding"

	"github.com/dhamidi/uriparse/uri"
)

// Encoder renders a parsed URI to its writer.
type Encoder interface {
	encoding.TextMarshaler
	Encode(u *uri.URI) error
}
