package retained

import (
	"strings"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/font"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/theme"
)

// ============================================================================
// Control
// ============================================================================

// Control is the behavior every element of the tree provides. Concrete
// controls embed Node, which supplies defaults for every hook, and override
// only what they need.
type Control interface {
	Base() *Node
	TypeName() string

	Update()
	IsFixedSize() bool
	OnResized()
	OnThemeLoaded()
	OnPaint(p Painter)
	OnLoad(v *doc.Value)
	OnSave(v *doc.Value)

	OnMouseMove(pos geom.Vector2)
	OnMousePressed(pos geom.Vector2, button MouseButton, count ClickCount) bool
	OnMouseReleased(pos geom.Vector2, button MouseButton)
	OnMouseWheel(delta geom.Vector2)
	OnMouseEnter()
	OnMouseLeave()
	OnFocused()
	OnUnfocused()
	OnKeyPressed(key Key) bool
	OnKeyReleased(key Key) bool
	OnText(r rune)
}

// InvalidateFunc receives invalidations. focus is the control whose change
// started the chain.
type InvalidateFunc func(focus Control, t InvalidateType)

// Node holds the state shared by every control: identity, bounds relative
// to the parent, expansion policy and per-instance theme overrides.
type Node struct {
	self   Control
	window *Window
	parent Composite

	id          string
	bounds      geom.Rect
	expand      Expand
	forwardKeys bool
	props       map[theme.Property]theme.Variant

	onInvalidate InvalidateFunc
}

// init binds the node to its concrete control. Every constructor calls it
// before touching any other state.
func (n *Node) init(self Control, w *Window) {
	n.self = self
	n.window = w
}

func (n *Node) Base() *Node      { return n }
func (n *Node) TypeName() string { return "Control" }

// Self returns the concrete control that embeds n.
func (n *Node) Self() Control { return n.self }

// Window returns the window the control was created for.
func (n *Node) Window() *Window { return n.window }

// Parent returns the containing composite, or nil for roots and detached
// controls.
func (n *Node) Parent() Composite { return n.parent }

func (n *Node) ID() string { return n.id }

func (n *Node) SetID(id string) {
	n.id = id
}

// FullID joins the non-empty IDs from the root down to n with dots.
func (n *Node) FullID() string {
	var parts []string
	for c := Control(n.self); c != nil; {
		b := c.Base()
		if b.id != "" {
			parts = append(parts, b.id)
		}
		c = idParent(c)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// idParent is the next control up the ID chain. A floating control that
// names an owner reports the owner instead of its parent.
func idParent(c Control) Control {
	if o, ok := c.(interface{ idOwner() Control }); ok {
		if owner := o.idOwner(); owner != nil {
			return owner
		}
	}
	if p := c.Base().parent; p != nil {
		return p
	}
	return nil
}

// ============================================================================
// Geometry
// ============================================================================

func (n *Node) Position() geom.Vector2 { return n.bounds.Min }
func (n *Node) Size() geom.Vector2     { return n.bounds.Size() }

// Bounds returns the rectangle relative to the parent.
func (n *Node) Bounds() geom.Rect { return n.bounds }

// SetPosition moves the control within its parent. Positions are floored.
func (n *Node) SetPosition(pos geom.Vector2) {
	old := n.bounds.Min
	n.bounds.SetPosition(pos)
	if old != n.bounds.Min {
		n.Invalidate(InvalidateLayout)
	}
}

// SetSize resizes the control. Sizes are floored; an unchanged size is a
// no-op, otherwise layout is invalidated and OnResized runs.
func (n *Node) SetSize(size geom.Vector2) {
	old := n.bounds.Size()
	n.bounds.SetSize(size)
	if old == n.bounds.Size() {
		return
	}
	n.Invalidate(InvalidateLayout)
	n.self.OnResized()
}

func (n *Node) Expand() Expand { return n.expand }

// SetExpand changes the expansion policy. Fixed-size controls ignore it.
func (n *Node) SetExpand(e Expand) {
	if n.self.IsFixedSize() || n.expand == e {
		return
	}
	n.expand = e
	n.Invalidate(InvalidateLayout)
}

// AbsolutePosition sums positions up the parent chain.
func (n *Node) AbsolutePosition() geom.Vector2 {
	pos := n.bounds.Min
	for p := n.parent; p != nil; p = p.Base().parent {
		pos = pos.Add(p.Base().bounds.Min)
	}
	return pos
}

// AbsoluteBounds returns the bounds in window coordinates.
func (n *Node) AbsoluteBounds() geom.Rect {
	return geom.RectFrom(n.AbsolutePosition(), n.Size())
}

// Contains hit-tests a window-space point against the absolute bounds.
func (n *Node) Contains(pos geom.Vector2) bool {
	return n.AbsoluteBounds().Contains(pos)
}

// ============================================================================
// Properties
// ============================================================================

// Theme returns the owning window's theme, or nil when detached.
func (n *Node) Theme() *theme.Theme {
	if n.window == nil {
		return nil
	}
	return n.window.Theme()
}

// Property returns the per-instance override for p or the theme's value.
func (n *Node) Property(p theme.Property) theme.Variant {
	if v, ok := n.props[p]; ok {
		return v
	}
	return n.Theme().Get(p)
}

// SetProperty overrides p for this control only. Null values are ignored.
func (n *Node) SetProperty(p theme.Property, v theme.Variant) {
	if v.IsNull() {
		return
	}
	if n.props == nil {
		n.props = make(map[theme.Property]theme.Variant)
	}
	n.props[p] = v
	n.Invalidate(InvalidatePaint)
}

// ClearProperty drops an override so the theme value applies again.
func (n *Node) ClearProperty(p theme.Property) {
	delete(n.props, p)
}

// Face resolves the font for the control's FontPath and FontSize.
func (n *Node) Face() font.Face {
	if n.window == nil {
		return font.Basic()
	}
	return n.window.Face(n.Property(theme.FontPath).Str(), n.Property(theme.FontSize).Float())
}

// ============================================================================
// Invalidation
// ============================================================================

// Invalidate reports a change of this control upward.
func (n *Node) Invalidate(t InvalidateType) {
	n.invalidateWith(n.self, t)
}

func (n *Node) invalidateWith(focus Control, t InvalidateType) {
	if n.onInvalidate != nil {
		n.onInvalidate(focus, t)
	}
}

// SetOnInvalidate installs the upward invalidation callback. Containers set
// it on insertion; roots and popups receive it from their window.
func (n *Node) SetOnInvalidate(fn InvalidateFunc) {
	n.onInvalidate = fn
}

// ForwardKeyEvents reports whether unhandled key events go to the parent.
func (n *Node) ForwardKeyEvents() bool { return n.forwardKeys }

func (n *Node) SetForwardKeyEvents(on bool) {
	n.forwardKeys = on
}

// IsFocused reports whether the control holds keyboard focus.
func (n *Node) IsFocused() bool {
	return n.window != nil && n.window.Focus() == n.self
}

// ============================================================================
// Default hooks
// ============================================================================

func (n *Node) Update()           {}
func (n *Node) IsFixedSize() bool { return false }
func (n *Node) OnResized()        {}
func (n *Node) OnThemeLoaded()    {}
func (n *Node) OnPaint(p Painter) {}

func (n *Node) OnMouseMove(pos geom.Vector2) {}
func (n *Node) OnMousePressed(pos geom.Vector2, button MouseButton, count ClickCount) bool {
	return false
}

func (n *Node) OnMouseReleased(pos geom.Vector2, button MouseButton) {}
func (n *Node) OnMouseEnter()                                        {}
func (n *Node) OnMouseLeave()                                        {}
func (n *Node) OnFocused()                                           {}
func (n *Node) OnUnfocused()                                         {}
func (n *Node) OnText(r rune)                                        {}

// OnMouseWheel passes the wheel to the parent so an enclosing scrollable
// region scrolls no matter which descendant is hovered.
func (n *Node) OnMouseWheel(delta geom.Vector2) {
	if n.parent != nil {
		n.parent.OnMouseWheel(delta)
	}
}

func (n *Node) OnKeyPressed(key Key) bool {
	if n.forwardKeys && n.parent != nil {
		return n.parent.OnKeyPressed(key)
	}
	return false
}

func (n *Node) OnKeyReleased(key Key) bool {
	if n.forwardKeys && n.parent != nil {
		return n.parent.OnKeyReleased(key)
	}
	return false
}

// OnLoad reads ID, Size and Expand.
func (n *Node) OnLoad(v *doc.Value) {
	n.id = v.Get("ID").Str(n.id)
	if size := v.Get("Size").FloatSlice(); len(size) >= 2 {
		n.SetSize(geom.Vec(size[0], size[1]))
	}
	if e, ok := ParseExpand(v.Get("Expand").Str("")); ok {
		n.SetExpand(e)
	}
}

// OnSave writes the fields OnLoad reads plus Type and Position.
func (n *Node) OnSave(v *doc.Value) {
	v.Set("Type", doc.String(n.self.TypeName()))
	if n.id != "" {
		v.Set("ID", doc.String(n.id))
	}
	v.Set("Expand", doc.String(n.expand.String()))
	pos, size := n.Position(), n.Size()
	v.Set("Position", doc.Floats(pos.X, pos.Y))
	v.Set("Size", doc.Floats(size.X, size.Y))
}
