// Package jsonvalue parses JSON texts into a generic value tree using the
// same combinator engine as the uri package. Object members keep the order
// they appeared in; duplicate keys are retained as separate members.
package jsonvalue

import (
	"bytes"
	"encoding/json"
)

// Value is one of Object, Array, String, Number, Bool or Null.
type Value interface {
	isValue()
}

// Member is one key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered member list.
type Object []Member

// Array is an ordered element list.
type Array []Value

type String string

type Number float64

type Bool bool

type Null struct{}

func (Object) isValue() {}
func (Array) isValue()  {}
func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}

// MarshalJSON serializes the object with its member order intact, which a
// plain map would lose.
func (o Object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
