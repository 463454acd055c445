package rmq

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Arguments is an order-preserving JSON object used for broker-defined
// free-form configuration: optional queue and exchange arguments, binding
// arguments, and policy definitions.
//
// Unlike a plain map, Arguments remembers the order in which keys were first
// set (or first seen on the wire) and stores numbers as json.Number, so a
// value decoded from the API re-encodes to the exact same bytes. Nested
// objects decode to *Arguments and nested arrays to []interface{}.
type Arguments struct {
	pairs []argumentPair
}

type argumentPair struct {
	key   string
	value interface{}
}

// NewArguments returns an empty Arguments value.
func NewArguments() *Arguments {
	return &Arguments{}
}

// Set stores a value under key, keeping the key's original position if it is
// already present. It returns the receiver to allow chaining.
func (a *Arguments) Set(key string, value interface{}) *Arguments {
	for i := range a.pairs {
		if a.pairs[i].key == key {
			a.pairs[i].value = value

			return a
		}
	}

	a.pairs = append(a.pairs, argumentPair{key: key, value: value})

	return a
}

// Get returns the value stored under key and whether the key is present.
func (a *Arguments) Get(key string) (interface{}, bool) {
	if a == nil {
		return nil, false
	}

	for i := range a.pairs {
		if a.pairs[i].key == key {
			return a.pairs[i].value, true
		}
	}

	return nil, false
}

// Delete removes key. Deleting an absent key is a no-op.
func (a *Arguments) Delete(key string) {
	for i := range a.pairs {
		if a.pairs[i].key == key {
			a.pairs = append(a.pairs[:i], a.pairs[i+1:]...)

			return
		}
	}
}

// Keys returns all keys in their stored order.
func (a *Arguments) Keys() []string {
	if a == nil {
		return nil
	}

	keys := make([]string, 0, len(a.pairs))
	for i := range a.pairs {
		keys = append(keys, a.pairs[i].key)
	}

	return keys
}

// Len returns the number of keys.
func (a *Arguments) Len() int {
	if a == nil {
		return 0
	}

	return len(a.pairs)
}

// Clone returns a deep copy. The clone shares no storage with the receiver,
// so mutating the original after a request has been built cannot race the
// in-flight call.
func (a *Arguments) Clone() *Arguments {
	if a == nil {
		return nil
	}

	clone := &Arguments{pairs: make([]argumentPair, len(a.pairs))}
	for i := range a.pairs {
		clone.pairs[i] = argumentPair{key: a.pairs[i].key, value: cloneValue(a.pairs[i].value)}
	}

	return clone
}

func cloneValue(value interface{}) interface{} {
	switch val := value.(type) {
	case *Arguments:
		return val.Clone()
	case []interface{}:
		seq := make([]interface{}, len(val))
		for i := range val {
			seq[i] = cloneValue(val[i])
		}

		return seq
	default:
		// Scalars (string, bool, json.Number, numeric types, nil) are
		// immutable as stored.
		return value
	}
}

// MarshalJSON encodes the arguments as a JSON object with keys in stored
// order. Encoding the same value twice yields byte-identical output.
func (a *Arguments) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i := range a.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(a.pairs[i].key)
		if err != nil {
			return nil, fmt.Errorf("encoding argument key %q: %w", a.pairs[i].key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')

		if err := writeValue(&buf, a.pairs[i].value); err != nil {
			return nil, fmt.Errorf("encoding argument %q: %w", a.pairs[i].key, err)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, value interface{}) error {
	switch val := value.(type) {
	case nil:
		buf.WriteString("null")
	case json.Number:
		// Written verbatim to preserve the wire form exactly.
		buf.WriteString(val.String())
	case *Arguments:
		data, err := val.MarshalJSON()
		if err != nil {
			return err
		}

		buf.Write(data)
	case []interface{}:
		buf.WriteByte('[')

		for i := range val {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := writeValue(buf, val[i]); err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return err
		}

		buf.Write(data)
	}

	return nil
}

// UnmarshalJSON decodes a JSON object, preserving key order and numeric
// precision. null decodes to an empty value.
func (a *Arguments) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding arguments: %w", err)
	}

	if tok == nil {
		a.pairs = nil

		return nil
	}

	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("decoding arguments: expected object, got %v", tok)
	}

	pairs, err := decodeObjectPairs(dec)
	if err != nil {
		return err
	}

	a.pairs = pairs

	return nil
}

func decodeObjectPairs(dec *json.Decoder) ([]argumentPair, error) {
	var pairs []argumentPair

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding argument key: %w", err)
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decoding argument key: unexpected token %v", tok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("decoding argument %q: %w", key, err)
		}

		pairs = append(pairs, argumentPair{key: key, value: value})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decoding arguments: %w", err)
	}

	return pairs, nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch val := tok.(type) {
	case json.Delim:
		switch val {
		case '{':
			pairs, err := decodeObjectPairs(dec)
			if err != nil {
				return nil, err
			}

			return &Arguments{pairs: pairs}, nil
		case '[':
			var seq []interface{}

			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}

				seq = append(seq, elem)
			}

			if _, err := dec.Token(); err != nil {
				return nil, err
			}

			if seq == nil {
				seq = []interface{}{}
			}

			return seq, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", val)
		}
	default:
		// string, json.Number, bool, or nil.
		return tok, nil
	}
}
