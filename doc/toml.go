package doc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML decodes a TOML document. TOML tables carry no key order, so
// object keys are sorted; array order is preserved.
func ParseTOML(data []byte) (*Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode toml: %w", err)
	}
	return fromAny(raw), nil
}

// EncodeTOML writes v, which must be an object, as TOML. Null members are omitted.
func EncodeTOML(w io.Writer, v *Value) error {
	if !v.IsObject() {
		return fmt.Errorf("failed to encode toml: top level is %s, want object", v.Kind())
	}
	data, err := toml.Marshal(v.toAny())
	if err != nil {
		return fmt.Errorf("failed to encode toml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write toml: %w", err)
	}
	return nil
}

// FromGo converts decoded Go values (maps, slices, numbers, strings, bools)
// into a Value.
func FromGo(x any) *Value {
	return fromAny(x)
}

func fromAny(x any) *Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int64:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case time.Time:
		return String(t.Format(time.RFC3339))
	case fmt.Stringer:
		// local dates and times decode to their own types
		return String(t.String())
	case []any:
		arr := NewArray()
		for _, it := range t {
			arr.Append(fromAny(it))
		}
		return arr
	case []map[string]any:
		arr := NewArray()
		for _, it := range t {
			arr.Append(fromAny(it))
		}
		return arr
	case map[string]any:
		obj := NewObject()
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			obj.Set(k, fromAny(t[k]))
		}
		return obj
	}
	return String(fmt.Sprint(x))
}

func (v *Value) toAny() any {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, 0, len(v.items))
		for _, it := range v.items {
			if it.IsNull() {
				continue
			}
			out = append(out, it.toAny())
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			if v.props[k].IsNull() {
				continue
			}
			out[k] = v.props[k].toAny()
		}
		return out
	}
	return nil
}

// Format is a document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
)

// FormatFor picks the format from a file extension; anything but .toml is JSON.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Value, error) {
	if format == FormatTOML {
		return ParseTOML(data)
	}
	return ParseJSON(data)
}

// Load reads and decodes the file at path.
func Load(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	v, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Save encodes v into path using the format implied by its extension.
func Save(path string, v *Value) error {
	var buf bytes.Buffer
	var err error
	if FormatFor(path) == FormatTOML {
		err = EncodeTOML(&buf, v)
	} else {
		err = EncodeJSON(&buf, v)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
