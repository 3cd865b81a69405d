// Package theme is the property store controls fall back to when they carry
// no per-instance override. A Theme is a plain value owned by the
// application and handed to windows; there is no process-wide default.
package theme

import (
	"fmt"
	"os"
	"sort"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
)

// Property names one themable value.
type Property int

const (
	Text Property = iota
	TextDisabled
	Button
	ButtonHovered
	ButtonPressed
	ButtonHighlight3D
	ButtonShadow3D
	Button3D
	ButtonPadding
	Check
	Panel
	PanelOutline
	Separator
	SeparatorThickness
	SeparatorMargins
	ScrollBar
	ScrollBarHandle
	ScrollBarHandleHovered
	ScrollBarSize
	ScrollBarHandleMinSize
	ScrollBarAlwaysPaint
	ScrollBarButtons
	SelectableHovered
	SelectableSelected
	MenuMargins
	MenuBarPadding
	MenuRightPadding
	FontPath
	FontSize

	numProperties
)

type propertyInfo struct {
	name string
	kind Kind
}

var properties = [numProperties]propertyInfo{
	Text:                   {"Text", KindColor},
	TextDisabled:           {"Text_Disabled", KindColor},
	Button:                 {"Button", KindColor},
	ButtonHovered:          {"Button_Hovered", KindColor},
	ButtonPressed:          {"Button_Pressed", KindColor},
	ButtonHighlight3D:      {"Button_Highlight_3D", KindColor},
	ButtonShadow3D:         {"Button_Shadow_3D", KindColor},
	Button3D:               {"Button_3D", KindBool},
	ButtonPadding:          {"Button_Padding", KindVector},
	Check:                  {"Check", KindColor},
	Panel:                  {"Panel", KindColor},
	PanelOutline:           {"PanelOutline", KindColor},
	Separator:              {"Separator", KindColor},
	SeparatorThickness:     {"Separator_Thickness", KindFloat},
	SeparatorMargins:       {"Separator_Margins", KindFloat},
	ScrollBar:              {"ScrollBar", KindColor},
	ScrollBarHandle:        {"ScrollBar_Handle", KindColor},
	ScrollBarHandleHovered: {"ScrollBar_HandleHovered", KindColor},
	ScrollBarSize:          {"ScrollBar_Size", KindFloat},
	ScrollBarHandleMinSize: {"ScrollBar_HandleMinSize", KindFloat},
	ScrollBarAlwaysPaint:   {"ScrollBar_AlwaysPaint", KindBool},
	ScrollBarButtons:       {"ScrollBar_Buttons", KindBool},
	SelectableHovered:      {"TextSelectable_Hovered", KindColor},
	SelectableSelected:     {"TextSelectable_Selected", KindColor},
	MenuMargins:            {"Menu_Margins", KindVector},
	MenuBarPadding:         {"MenuBar_Padding", KindVector},
	MenuRightPadding:       {"Menu_RightPadding", KindFloat},
	FontPath:               {"FontPath", KindString},
	FontSize:               {"FontSize", KindFloat},
}

var propertyByName = func() map[string]Property {
	m := make(map[string]Property, numProperties)
	for p := Property(0); p < numProperties; p++ {
		m[properties[p].name] = p
	}
	return m
}()

// String returns the document key of p.
func (p Property) String() string {
	if p < 0 || p >= numProperties {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return properties[p].name
}

// Kind returns the value kind p stores.
func (p Property) Kind() Kind {
	if p < 0 || p >= numProperties {
		return KindNull
	}
	return properties[p].kind
}

// Lookup finds a property by its document key.
func Lookup(name string) (Property, bool) {
	p, ok := propertyByName[name]
	return p, ok
}

// All returns every property in declaration order.
func All() []Property {
	out := make([]Property, numProperties)
	for i := range out {
		out[i] = Property(i)
	}
	return out
}

// Theme holds one Variant per Property plus listeners for reloads.
type Theme struct {
	values   [numProperties]Variant
	onLoaded []func()
}

// New returns a theme populated with the default dark palette.
func New() *Theme {
	t := &Theme{}
	t.Reset()
	return t
}

// Reset restores every default.
func (t *Theme) Reset() {
	v := &t.values
	v[Text] = ColorValue(RGBA(255, 255, 255, 255))
	v[TextDisabled] = ColorValue(RGBA(105, 105, 105, 255))
	v[Button] = ColorValue(RGBA(48, 48, 48, 255))
	v[ButtonHovered] = ColorValue(RGBA(48, 63, 169, 255))
	v[ButtonPressed] = ColorValue(RGBA(98, 125, 152, 255))
	v[ButtonHighlight3D] = ColorValue(RGBA(117, 117, 117, 255))
	v[ButtonShadow3D] = ColorValue(RGBA(28, 28, 28, 255))
	v[Button3D] = Bool(false)
	v[ButtonPadding] = Vector(geom.Vec(12, 6))
	v[Check] = ColorValue(RGBA(255, 255, 255, 255))
	v[Panel] = ColorValue(RGBA(33, 33, 33, 255))
	v[PanelOutline] = ColorValue(RGBA(0, 0, 0, 255))
	v[Separator] = ColorValue(RGBA(48, 48, 48, 255))
	v[SeparatorThickness] = Float(1.5)
	v[SeparatorMargins] = Float(8)
	v[ScrollBar] = ColorValue(RGBA(48, 48, 48, 255))
	v[ScrollBarHandle] = ColorValue(RGBA(64, 64, 64, 255))
	v[ScrollBarHandleHovered] = ColorValue(RGBA(96, 96, 96, 255))
	v[ScrollBarSize] = Float(15)
	v[ScrollBarHandleMinSize] = Float(10)
	v[ScrollBarAlwaysPaint] = Bool(false)
	v[ScrollBarButtons] = Bool(false)
	v[SelectableHovered] = ColorValue(RGBA(48, 63, 169, 255))
	v[SelectableSelected] = ColorValue(RGBA(98, 125, 152, 255))
	v[MenuMargins] = Vector(geom.Vec(0, 8))
	v[MenuBarPadding] = Vector(geom.Vec(0, 6))
	v[MenuRightPadding] = Float(60)
	v[FontPath] = String("")
	v[FontSize] = Float(13)
}

// Get returns the value stored for p.
func (t *Theme) Get(p Property) Variant {
	if t == nil || p < 0 || p >= numProperties {
		return Variant{}
	}
	return t.values[p]
}

// Set stores val for p. Null values and values of the wrong kind are ignored.
func (t *Theme) Set(p Property, val Variant) {
	if p < 0 || p >= numProperties || val.IsNull() || val.Kind() != p.Kind() {
		return
	}
	t.values[p] = val
}

// OnLoaded registers fn to run after every Load.
func (t *Theme) OnLoaded(fn func()) {
	t.onLoaded = append(t.onLoaded, fn)
}

// Load applies every recognized key of root. Unknown keys and values of the
// wrong kind are skipped. A string root is treated as a file path.
func (t *Theme) Load(root *doc.Value) error {
	if root.IsString() {
		return t.LoadFile(root.Str(""))
	}
	for _, key := range root.Keys() {
		p, ok := Lookup(key)
		if !ok {
			continue
		}
		t.Set(p, FromDoc(root.Get(key), p.Kind()))
	}
	for _, fn := range t.onLoaded {
		fn()
	}
	return nil
}

// LoadFile reads a JSON or TOML theme file.
func (t *Theme) LoadFile(path string) error {
	root, err := doc.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	return t.Load(root)
}

// LoadTOML applies a TOML theme held in memory.
func (t *Theme) LoadTOML(data []byte) error {
	root, err := doc.ParseTOML(data)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	return t.Load(root)
}

// Doc exports every property, sorted by key.
func (t *Theme) Doc() *doc.Value {
	names := make([]string, 0, numProperties)
	for p := Property(0); p < numProperties; p++ {
		names = append(names, p.String())
	}
	sort.Strings(names)
	out := doc.NewObject()
	for _, name := range names {
		p, _ := Lookup(name)
		out.Set(name, t.values[p].Doc())
	}
	return out
}

// Save writes the theme to path as JSON or TOML.
func (t *Theme) Save(path string) error {
	if err := doc.Save(path, t.Doc()); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Exists reports whether path names a readable file; callers use it to make
// an optional theme file silent when absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
