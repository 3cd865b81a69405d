// Package font supplies the measurement faces the layout engine treats as a
// black box: Measure returns the natural size of a string and Size the line
// height. Nothing here rasterizes glyphs.
package font

import (
	"fmt"
	"os"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/agiangrant/trellis/geom"
)

// Face measures text.
type Face interface {
	Measure(text string) geom.Vector2
	Size() float32
}

// Provider resolves a face for a font path and pixel size.
type Provider interface {
	Face(path string, size float32) Face
}

// ImageFace measures with an x/image font.Face.
type ImageFace struct {
	face       xfont.Face
	lineHeight float32
}

// NewImageFace wraps face.
func NewImageFace(face xfont.Face) *ImageFace {
	m := face.Metrics()
	lh := fixedToFloat(m.Height)
	if lh <= 0 {
		lh = fixedToFloat(m.Ascent + m.Descent)
	}
	return &ImageFace{face: face, lineHeight: lh}
}

// Basic returns the 7x13 fixed bitmap face. It needs no font data.
func Basic() *ImageFace {
	return NewImageFace(basicfont.Face7x13)
}

// ParseOpenType builds a face from TTF/OTF data at size pixels.
func ParseOpenType(data []byte, size float32) (*ImageFace, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return NewImageFace(face), nil
}

// GoRegular returns the Go Regular face at size pixels.
func GoRegular(size float32) (*ImageFace, error) {
	return ParseOpenType(goregular.TTF, size)
}

// Measure returns the widest line and the total height of text.
func (f *ImageFace) Measure(text string) geom.Vector2 {
	lines := strings.Split(text, "\n")
	var width float32
	for _, line := range lines {
		width = max(width, fixedToFloat(xfont.MeasureString(f.face, line)))
	}
	return geom.Vec(width, f.lineHeight*float32(len(lines))).Floor()
}

// Size returns the line height.
func (f *ImageFace) Size() float32 {
	return f.lineHeight
}

// XFace exposes the wrapped face for renderers that draw with x/image.
func (f *ImageFace) XFace() xfont.Face {
	return f.face
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

var builtin = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
	"goitalic":  goitalic.TTF,
	"gomono":    gomono.TTF,
}

type cacheKey struct {
	path string
	size float32
}

// Cache is a Provider that parses each (path, size) pair once. An empty path
// or a failed load yields the fallback face.
type Cache struct {
	faces    map[cacheKey]Face
	fallback Face
	errs     map[string]error
}

// NewCache returns a cache whose fallback is the basic bitmap face.
func NewCache() *Cache {
	return &Cache{
		faces:    make(map[cacheKey]Face),
		fallback: Basic(),
		errs:     make(map[string]error),
	}
}

// SetFallback replaces the face returned for unresolvable requests.
func (c *Cache) SetFallback(f Face) {
	c.fallback = f
}

// Face returns the face for path at size. Builtin names "goregular",
// "gobold", "goitalic" and "gomono" need no file.
func (c *Cache) Face(path string, size float32) Face {
	if path == "" {
		return c.fallback
	}
	key := cacheKey{path: path, size: size}
	if f, ok := c.faces[key]; ok {
		return f
	}
	f, err := c.load(path, size)
	if err != nil {
		c.errs[path] = err
		return c.fallback
	}
	c.faces[key] = f
	return f
}

// Err returns the last load error recorded for path.
func (c *Cache) Err(path string) error {
	return c.errs[path]
}

func (c *Cache) load(path string, size float32) (Face, error) {
	if size <= 0 {
		size = 13
	}
	data, ok := builtin[path]
	if !ok {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}
	return ParseOpenType(data, size)
}
