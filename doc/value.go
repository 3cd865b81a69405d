// Package doc is the abstract key-value tree that window descriptions are
// loaded from and saved to. Values decode from JSON or TOML; controls read
// them through nil-safe accessors so a missing key always yields a default.
package doc

import (
	"fmt"
	"strings"
)

// Kind identifies the type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is one node of a document. A nil *Value behaves as null.
// Objects keep their keys in insertion order.
type Value struct {
	kind  Kind
	b     bool
	n     float64
	s     string
	items []*Value
	keys  []string
	props map[string]*Value
}

// Null returns a new null value.
func Null() *Value { return &Value{} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Number returns a numeric value.
func Number(n float64) *Value { return &Value{kind: KindNumber, n: n} }

// String returns a string value.
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// NewArray returns an array holding items.
func NewArray(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// NewObject returns an empty object.
func NewObject() *Value {
	return &Value{kind: KindObject, props: make(map[string]*Value)}
}

// Floats returns an array of numbers, the encoding used for vectors and rects.
func Floats(fs ...float32) *Value {
	arr := NewArray()
	for _, f := range fs {
		arr.Append(Number(float64(f)))
	}
	return arr
}

// Kind returns the kind of v; nil is KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func (v *Value) IsNull() bool   { return v.Kind() == KindNull }
func (v *Value) IsObject() bool { return v.Kind() == KindObject }
func (v *Value) IsArray() bool  { return v.Kind() == KindArray }
func (v *Value) IsString() bool { return v.Kind() == KindString }
func (v *Value) IsNumber() bool { return v.Kind() == KindNumber }
func (v *Value) IsBool() bool   { return v.Kind() == KindBool }

// Get returns the member named key, or nil if v is not an object or has no such key.
func (v *Value) Get(key string) *Value {
	if v.Kind() != KindObject {
		return nil
	}
	return v.props[key]
}

// Has reports whether an object carries key.
func (v *Value) Has(key string) bool {
	return v.Get(key) != nil
}

// Path walks a dotted path of object keys.
func (v *Value) Path(path string) *Value {
	cur := v
	for _, part := range strings.Split(path, ".") {
		cur = cur.Get(part)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Set stores val under key, keeping the first insertion position for existing keys.
// Set on a non-object panics.
func (v *Value) Set(key string, val *Value) *Value {
	if v.Kind() != KindObject {
		panic(fmt.Sprintf("doc: Set(%q) on %s value", key, v.Kind()))
	}
	if val == nil {
		val = Null()
	}
	if _, ok := v.props[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.props[key] = val
	return v
}

// Delete removes key from an object.
func (v *Value) Delete(key string) {
	if v.Kind() != KindObject {
		return
	}
	if _, ok := v.props[key]; !ok {
		return
	}
	delete(v.props, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
}

// Keys returns object keys in insertion order.
func (v *Value) Keys() []string {
	if v.Kind() != KindObject {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Append adds items to an array. Append on a non-array panics.
func (v *Value) Append(items ...*Value) *Value {
	if v.Kind() != KindArray {
		panic(fmt.Sprintf("doc: Append on %s value", v.Kind()))
	}
	for _, it := range items {
		if it == nil {
			it = Null()
		}
		v.items = append(v.items, it)
	}
	return v
}

// Len returns the number of array items or object members.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.keys)
	}
	return 0
}

// Index returns the i-th array item, or nil when out of range.
func (v *Value) Index(i int) *Value {
	if v.Kind() != KindArray || i < 0 || i >= len(v.items) {
		return nil
	}
	return v.items[i]
}

// Items returns the array items.
func (v *Value) Items() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.items
}

// Str returns the string value, or def when v is not a string.
func (v *Value) Str(def string) string {
	if v.Kind() != KindString {
		return def
	}
	return v.s
}

// Num returns the numeric value, or def when v is not a number.
func (v *Value) Num(def float64) float64 {
	if v.Kind() != KindNumber {
		return def
	}
	return v.n
}

// Float returns the numeric value as float32, or def.
func (v *Value) Float(def float32) float32 {
	if v.Kind() != KindNumber {
		return def
	}
	return float32(v.n)
}

// Int returns the numeric value truncated to int, or def.
func (v *Value) Int(def int) int {
	if v.Kind() != KindNumber {
		return def
	}
	return int(v.n)
}

// Boolean returns the bool value, or def when v is not a bool.
func (v *Value) Boolean(def bool) bool {
	if v.Kind() != KindBool {
		return def
	}
	return v.b
}

// FloatSlice returns the numbers of an array; non-numeric items read as 0.
// It returns nil when v is not an array.
func (v *Value) FloatSlice() []float32 {
	if v.Kind() != KindArray {
		return nil
	}
	out := make([]float32, len(v.items))
	for i, it := range v.items {
		out[i] = it.Float(0)
	}
	return out
}

// Clone returns a deep copy.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := &Value{kind: v.kind, b: v.b, n: v.n, s: v.s}
	switch v.kind {
	case KindArray:
		c.items = make([]*Value, len(v.items))
		for i, it := range v.items {
			c.items[i] = it.Clone()
		}
	case KindObject:
		c.props = make(map[string]*Value, len(v.props))
		c.keys = append([]string(nil), v.keys...)
		for k, it := range v.props {
			c.props[k] = it.Clone()
		}
	}
	return c
}

func (v *Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}
