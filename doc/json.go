package doc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ParseJSON decodes a JSON document, keeping object key order.
func ParseJSON(data []byte) (*Value, error) {
	return DecodeJSON(bytes.NewReader(data))
}

// DecodeJSON reads one JSON document from r.
func DecodeJSON(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode json: trailing data after document")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := NewArray()
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// MarshalJSON encodes v, writing object keys in insertion order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf, "", ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJSON writes v to w with two-space indentation.
func EncodeJSON(w io.Writer, v *Value) error {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf, "", "  "); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

func (v *Value) writeJSON(buf *bytes.Buffer, prefix, indent string) error {
	newline := func(depth string) {
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(depth)
		}
	}
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(strconv.FormatFloat(v.n, 'g', -1, 64))
	case KindString:
		b, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		if len(v.items) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		inner := prefix + indent
		for i, it := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(inner)
			if err := it.writeJSON(buf, inner, indent); err != nil {
				return err
			}
		}
		newline(prefix)
		buf.WriteByte(']')
	case KindObject:
		if len(v.keys) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		inner := prefix + indent
		for i, k := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(inner)
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			if err := v.props[k].writeJSON(buf, inner, indent); err != nil {
				return err
			}
		}
		newline(prefix)
		buf.WriteByte('}')
	}
	return nil
}
