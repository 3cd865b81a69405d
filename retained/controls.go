package retained

import (
	"strings"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/font"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/theme"
)

// ============================================================================
// Text
// ============================================================================

// Text is a label sized to its contents. With wrapping on it takes its
// parent's width and grows downward.
type Text struct {
	Node

	text  string
	wrap  bool
	lines []string
}

func NewText(w *Window, text string) *Text {
	t := &Text{text: text}
	t.init(t, w)
	t.updateSize()
	return t
}

func (t *Text) TypeName() string { return "Text" }

func (t *Text) Text() string { return t.text }

func (t *Text) SetText(text string) {
	if t.text == text {
		return
	}
	t.text = text
	t.updateSize()
	t.Invalidate(InvalidatePaint)
}

func (t *Text) Wrap() bool { return t.wrap }

func (t *Text) SetWrap(on bool) {
	t.wrap = on
	t.updateSize()
}

// Lines returns the text split as it is painted.
func (t *Text) Lines() []string { return t.lines }

// IsFixedSize is true unless wrapping, so plain labels ignore Expand.
func (t *Text) IsFixedSize() bool { return !t.wrap }

func (t *Text) updateSize() {
	face := t.Face()
	if t.wrap && t.parent != nil {
		t.lines = font.Wrap(face, t.text, t.parent.Base().Size().X)
	} else {
		t.lines = strings.Split(t.text, "\n")
	}
	var width float32
	for _, line := range t.lines {
		width = max(width, face.Measure(line).X)
	}
	t.SetSize(geom.Vec(width, face.Size()*float32(max(len(t.lines), 1))))
}

func (t *Text) Update()        { t.updateSize() }
func (t *Text) OnThemeLoaded() { t.updateSize() }

func (t *Text) OnPaint(p Painter) {
	face := t.Face()
	color := t.Property(theme.Text).Color()
	pos := t.AbsolutePosition()
	for _, line := range t.lines {
		p.Text(face, pos, line, color)
		pos.Y += face.Size()
	}
}

// OnLoad accepts either a plain string or an object with Text, Wrap, Font
// and FontSize keys.
func (t *Text) OnLoad(v *doc.Value) {
	if v.IsString() {
		t.SetText(v.Str(""))
		return
	}
	t.wrap = v.Get("Wrap").Boolean(t.wrap)
	t.Node.OnLoad(v)
	if path := v.Get("Font").Str(""); path != "" {
		t.SetProperty(theme.FontPath, theme.String(path))
	}
	if size := v.Get("FontSize").Float(0); size > 0 {
		t.SetProperty(theme.FontSize, theme.Float(size))
	}
	t.text = v.Get("Text").Str(t.text)
	t.updateSize()
}

func (t *Text) OnSave(v *doc.Value) {
	t.Node.OnSave(v)
	v.Set("Text", doc.String(t.text))
	v.Set("Wrap", doc.Bool(t.wrap))
}

// ============================================================================
// Button
// ============================================================================

// ButtonState is the interaction state of a Button.
type ButtonState uint8

const (
	ButtonNone ButtonState = iota
	ButtonHovered
	ButtonPressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonHovered:
		return "Hovered"
	case ButtonPressed:
		return "Pressed"
	}
	return "None"
}

// ButtonFunc is called with the button that changed state.
type ButtonFunc func(b *Button)

// Button is a pressable rectangle. A press only registers while hovered;
// releasing fires OnReleased, and OnClicked when the pointer is still
// inside.
type Button struct {
	Node

	state    ButtonState
	disabled bool

	onPressed  ButtonFunc
	onReleased ButtonFunc
	onClicked  ButtonFunc

	// pressedChanged lets embedding controls react to press state.
	pressedChanged func(pressed bool)
}

func NewButton(w *Window) *Button {
	b := &Button{}
	b.init(b, w)
	return b
}

func (b *Button) TypeName() string { return "Button" }

func (b *Button) State() ButtonState { return b.state }
func (b *Button) IsHovered() bool    { return b.state == ButtonHovered }
func (b *Button) IsPressed() bool    { return b.state == ButtonPressed }
func (b *Button) IsDisabled() bool   { return b.disabled }

func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	if disabled {
		b.state = ButtonNone
	}
	b.Invalidate(InvalidatePaint)
}

func (b *Button) SetOnPressed(fn ButtonFunc)  { b.onPressed = fn }
func (b *Button) SetOnReleased(fn ButtonFunc) { b.onReleased = fn }
func (b *Button) SetOnClicked(fn ButtonFunc)  { b.onClicked = fn }

func (b *Button) OnMousePressed(pos geom.Vector2, button MouseButton, count ClickCount) bool {
	if b.state != ButtonHovered {
		return false
	}
	b.state = ButtonPressed
	if b.pressedChanged != nil {
		b.pressedChanged(true)
	}
	if b.onPressed != nil {
		b.onPressed(b)
	}
	b.Invalidate(InvalidatePaint)
	return true
}

func (b *Button) OnMouseReleased(pos geom.Vector2, button MouseButton) {
	if b.disabled {
		return
	}
	hovered := b.Contains(pos)
	if b.state == ButtonPressed {
		if b.pressedChanged != nil {
			b.pressedChanged(false)
		}
		if b.onReleased != nil {
			b.onReleased(b)
		}
		if hovered && b.onClicked != nil {
			b.onClicked(b)
		}
	}
	next := ButtonNone
	if hovered {
		next = ButtonHovered
	}
	if b.state != next {
		b.state = next
		b.Invalidate(InvalidatePaint)
	}
}

func (b *Button) OnMouseEnter() {
	if b.disabled {
		return
	}
	if b.state != ButtonPressed {
		b.state = ButtonHovered
	}
	b.Invalidate(InvalidatePaint)
}

func (b *Button) OnMouseLeave() {
	if b.disabled {
		return
	}
	if b.state != ButtonPressed {
		b.state = ButtonNone
	}
	b.Invalidate(InvalidatePaint)
}

func (b *Button) background() theme.Color {
	switch b.state {
	case ButtonHovered:
		return b.Property(theme.ButtonHovered).Color()
	case ButtonPressed:
		return b.Property(theme.ButtonPressed).Color()
	}
	return b.Property(theme.Button).Color()
}

func (b *Button) OnPaint(p Painter) {
	bounds := b.AbsoluteBounds()
	p.Rectangle(bounds, b.background())
	if b.Property(theme.Button3D).Bool() {
		light, dark := b.Property(theme.ButtonHighlight3D).Color(), b.Property(theme.ButtonShadow3D).Color()
		if b.state == ButtonPressed {
			light, dark = dark, light
		}
		p.Line(bounds.Min, geom.Vec(bounds.Max.X, bounds.Min.Y), light, 1)
		p.Line(bounds.Min, geom.Vec(bounds.Min.X, bounds.Max.Y), light, 1)
		p.Line(geom.Vec(bounds.Min.X, bounds.Max.Y), bounds.Max, dark, 1)
		p.Line(geom.Vec(bounds.Max.X, bounds.Min.Y), bounds.Max, dark, 1)
	}
}

func (b *Button) OnLoad(v *doc.Value) {
	b.Node.OnLoad(v)
	b.disabled = v.Get("Disabled").Boolean(false)
	if v.Has("3D") {
		b.SetProperty(theme.Button3D, theme.Bool(v.Get("3D").Boolean(false)))
	}
}

func (b *Button) OnSave(v *doc.Value) {
	b.Node.OnSave(v)
	v.Set("Disabled", doc.Bool(b.disabled))
}

// ============================================================================
// TextButton
// ============================================================================

// TextButton is a Button sized to its label plus Button_Padding on every
// side.
type TextButton struct {
	Button

	label string
}

func NewTextButton(w *Window, label string) *TextButton {
	b := &TextButton{label: label}
	b.init(b, w)
	b.pressedChanged = func(bool) { b.Invalidate(InvalidatePaint) }
	b.updateSize()
	return b
}

func (b *TextButton) TypeName() string { return "TextButton" }

func (b *TextButton) Label() string { return b.label }

func (b *TextButton) SetLabel(label string) {
	b.label = label
	b.updateSize()
	b.Invalidate(InvalidatePaint)
}

func (b *TextButton) updateSize() {
	padding := b.Property(theme.ButtonPadding).Vector()
	b.SetSize(b.Face().Measure(b.label).Add(padding.Scale(2)))
}

func (b *TextButton) OnThemeLoaded() { b.updateSize() }

// labelPosition centers the label, nudged by a pixel while a 3D button is
// held down.
func (b *TextButton) labelPosition() geom.Vector2 {
	size := b.Face().Measure(b.label)
	pos := b.Size().Scale(0.5).Sub(size.Scale(0.5)).Floor()
	if b.IsPressed() && b.Property(theme.Button3D).Bool() {
		pos = pos.Add(geom.Vec(1, 1))
	}
	return b.AbsolutePosition().Add(pos)
}

func (b *TextButton) OnPaint(p Painter) {
	b.Button.OnPaint(p)
	color := b.Property(theme.Text).Color()
	if b.IsDisabled() {
		color = b.Property(theme.TextDisabled).Color()
	}
	p.Text(b.Face(), b.labelPosition(), b.label, color)
}

// OnLoad reads Text either as a string or as an object carrying Text.
func (b *TextButton) OnLoad(v *doc.Value) {
	b.Button.OnLoad(v)
	label := v.Get("Text")
	if label.IsObject() {
		label = label.Get("Text")
	}
	b.label = label.Str(b.label)
	b.updateSize()
	if size := v.Get("Size").FloatSlice(); len(size) >= 2 {
		b.SetSize(geom.Vec(size[0], size[1]))
	}
}

func (b *TextButton) OnSave(v *doc.Value) {
	b.Button.OnSave(v)
	v.Set("Text", doc.String(b.label))
}

// ============================================================================
// Separator
// ============================================================================

// Separator is a thin divider line. Horizontal separators expand in width,
// vertical ones in height. Inside a Splitter it doubles as the drag handle.
type Separator struct {
	Node

	orientation Orientation
	onHover     func(s *Separator)
	owner       *Splitter
	hovered     bool
}

// SeparatorSize is the thickness of the area a separator occupies.
const SeparatorSize = 16

func NewSeparator(w *Window, o Orientation) *Separator {
	s := &Separator{}
	s.init(s, w)
	s.SetOrientation(o)
	return s
}

func (s *Separator) TypeName() string { return "Separator" }

func (s *Separator) Orientation() Orientation { return s.orientation }

// SetOrientation sets the direction of the line and resets the size.
func (s *Separator) SetOrientation(o Orientation) {
	s.orientation = o
	if o == Vertical {
		s.expand = ExpandHeight
		s.SetSize(geom.Vec(SeparatorSize, 0))
	} else {
		s.expand = ExpandWidth
		s.SetSize(geom.Vec(0, SeparatorSize))
	}
	s.Invalidate(InvalidateLayout)
}

func (s *Separator) SetOnHover(fn func(s *Separator)) { s.onHover = fn }

func (s *Separator) IsHovered() bool { return s.hovered }

func (s *Separator) OnPaint(p Painter) {
	thickness := s.Property(theme.SeparatorThickness).Float()
	margins := s.Property(theme.SeparatorMargins).Float()
	color := s.Property(theme.Separator).Color()
	if s.owner != nil && (s.hovered || s.owner.dragging == s) {
		color = s.Property(theme.ButtonHovered).Color()
	}
	bounds := s.AbsoluteBounds()
	half := bounds.Size().Scale(0.5)
	if s.orientation == Vertical {
		from := bounds.Min.Add(geom.Vec(half.X, margins))
		to := geom.Vec(from.X, bounds.Max.Y-margins)
		p.Line(from, to, color, thickness)
		return
	}
	from := bounds.Min.Add(geom.Vec(margins, half.Y))
	to := geom.Vec(bounds.Max.X-margins, from.Y)
	p.Line(from, to, color, thickness)
}

func (s *Separator) OnMouseEnter() {
	s.hovered = true
	if s.onHover != nil {
		s.onHover(s)
	}
	if s.owner != nil {
		s.owner.separatorHovered(s, true)
	}
}

func (s *Separator) OnMouseLeave() {
	s.hovered = false
	if s.owner != nil {
		s.owner.separatorHovered(s, false)
	}
}

func (s *Separator) OnMousePressed(pos geom.Vector2, button MouseButton, count ClickCount) bool {
	if s.owner == nil || button != MouseButtonLeft {
		return false
	}
	s.owner.beginDrag(s, pos)
	return true
}

func (s *Separator) OnMouseMove(pos geom.Vector2) {
	if s.owner != nil && s.owner.dragging == s {
		s.owner.dragTo(pos)
	}
}

func (s *Separator) OnMouseReleased(pos geom.Vector2, button MouseButton) {
	if s.owner != nil && s.owner.dragging == s {
		s.owner.endDrag()
	}
}

func (s *Separator) OnLoad(v *doc.Value) {
	s.Node.OnLoad(v)
	if o, ok := ParseOrientation(v.Get("Orientation").Str("")); ok {
		s.SetOrientation(o)
	} else {
		s.SetOrientation(s.orientation)
	}
}

func (s *Separator) OnSave(v *doc.Value) {
	s.Node.OnSave(v)
	v.Set("Orientation", doc.String(s.orientation.String()))
}

// ============================================================================
// Panel and Spacer
// ============================================================================

// Panel fills its bounds with the Panel color and an outline.
type Panel struct {
	Node
}

func NewPanel(w *Window) *Panel {
	p := &Panel{}
	p.init(p, w)
	return p
}

func (p *Panel) TypeName() string { return "Panel" }

func (p *Panel) OnPaint(painter Painter) {
	bounds := p.AbsoluteBounds()
	painter.Rectangle(bounds, p.Property(theme.Panel).Color())
	painter.RectangleOutline(bounds, p.Property(theme.PanelOutline).Color(), 1)
}

func (p *Panel) OnLoad(v *doc.Value) {
	p.Node.OnLoad(v)
	if c, err := theme.ParseColor(v.Get("Color").Str("")); err == nil {
		p.SetProperty(theme.Panel, theme.ColorValue(c))
	}
}

// Spacer occupies space and draws nothing.
type Spacer struct {
	Node
}

func NewSpacer(w *Window, size geom.Vector2) *Spacer {
	s := &Spacer{}
	s.init(s, w)
	s.SetSize(size)
	return s
}

func (s *Spacer) TypeName() string { return "Spacer" }
