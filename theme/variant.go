package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
)

// Kind is the type held by a Variant.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindFloat
	KindString
	KindVector
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindVector:
		return "vector"
	case KindColor:
		return "color"
	}
	return "null"
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA returns an opaque or translucent color.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseColor accepts "#rgb", "#rrggbb" and "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// Hex formats the color as "#rrggbb", with an alpha suffix when not opaque.
func (c Color) Hex() string {
	hex := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
	if c.A != 255 {
		hex += fmt.Sprintf("%02x", c.A)
	}
	return hex
}

// Blend mixes c toward o by t in [0, 1], interpolating in Lab space.
func (c Color) Blend(o Color, t float64) Color {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(o.R) / 255, G: float64(o.G) / 255, B: float64(o.B) / 255}
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	alpha := float64(c.A) + (float64(o.A)-float64(c.A))*t
	return Color{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// Variant is a tagged property value.
type Variant struct {
	kind Kind
	b    bool
	f    float32
	s    string
	v    geom.Vector2
	c    Color
}

func Bool(b bool) Variant           { return Variant{kind: KindBool, b: b} }
func Float(f float32) Variant       { return Variant{kind: KindFloat, f: f} }
func String(s string) Variant       { return Variant{kind: KindString, s: s} }
func Vector(v geom.Vector2) Variant { return Variant{kind: KindVector, v: v} }
func ColorValue(c Color) Variant    { return Variant{kind: KindColor, c: c} }

func (v Variant) Kind() Kind   { return v.kind }
func (v Variant) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean value; other kinds read as false.
func (v Variant) Bool() bool {
	return v.kind == KindBool && v.b
}

// Float returns the numeric value; other kinds read as 0.
func (v Variant) Float() float32 {
	if v.kind != KindFloat {
		return 0
	}
	return v.f
}

// Str returns the string value; other kinds read as "".
func (v Variant) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Vector returns the vector value; a float reads as a square vector.
func (v Variant) Vector() geom.Vector2 {
	switch v.kind {
	case KindVector:
		return v.v
	case KindFloat:
		return geom.Vec(v.f, v.f)
	}
	return geom.Vector2{}
}

// Color returns the color value; other kinds read as transparent black.
func (v Variant) Color() Color {
	if v.kind != KindColor {
		return Color{}
	}
	return v.c
}

func (v Variant) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindFloat:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	case KindString:
		return strconv.Quote(v.s)
	case KindVector:
		return v.v.String()
	case KindColor:
		return v.c.Hex()
	}
	return "null"
}

// FromDoc converts a document value into a Variant of the wanted kind.
// Values that cannot be converted produce a null Variant.
func FromDoc(val *doc.Value, want Kind) Variant {
	switch want {
	case KindBool:
		if val.IsBool() {
			return Bool(val.Boolean(false))
		}
	case KindFloat:
		if val.IsNumber() {
			return Float(val.Float(0))
		}
	case KindString:
		if val.IsString() {
			return String(val.Str(""))
		}
	case KindVector:
		if fs := val.FloatSlice(); len(fs) >= 2 {
			return Vector(geom.Vec(fs[0], fs[1]))
		}
		if val.IsNumber() {
			f := val.Float(0)
			return Vector(geom.Vec(f, f))
		}
	case KindColor:
		if val.IsString() {
			c, err := ParseColor(val.Str(""))
			if err == nil {
				return ColorValue(c)
			}
			return Variant{}
		}
		if fs := val.FloatSlice(); len(fs) >= 3 {
			c := Color{R: uint8(fs[0]), G: uint8(fs[1]), B: uint8(fs[2]), A: 255}
			if len(fs) >= 4 {
				c.A = uint8(fs[3])
			}
			return ColorValue(c)
		}
	}
	return Variant{}
}

// Doc converts v back into a document value.
func (v Variant) Doc() *doc.Value {
	switch v.kind {
	case KindBool:
		return doc.Bool(v.b)
	case KindFloat:
		return doc.Number(float64(v.f))
	case KindString:
		return doc.String(v.s)
	case KindVector:
		return doc.Floats(v.v.X, v.v.Y)
	case KindColor:
		return doc.String(v.c.Hex())
	}
	return doc.Null()
}
