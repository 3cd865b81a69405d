package retained

import (
	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
)

// ScrollableView wraps a ScrollableContainer so it can sit inside any
// layout. Points the content does not claim land on an invisible backdrop
// that still scrolls on the wheel.
type ScrollableView struct {
	Container

	backdrop   *scrollBackdrop
	scrollable *ScrollableContainer
}

// scrollBackdrop fills the view behind the content.
type scrollBackdrop struct {
	Node

	view *ScrollableView
}

func (b *scrollBackdrop) TypeName() string { return "ScrollableViewBackdrop" }

func (b *scrollBackdrop) OnMouseWheel(delta geom.Vector2) {
	b.view.scrollable.OnMouseWheel(delta)
}

func NewScrollableView(w *Window) *ScrollableView {
	v := &ScrollableView{}
	v.initContainer(v, w)
	v.SetExpand(ExpandBoth)

	v.backdrop = &scrollBackdrop{view: v}
	v.backdrop.init(v.backdrop, w)
	v.backdrop.expand = ExpandBoth
	v.AddControl(v.backdrop)

	v.scrollable = NewScrollableContainer(w)
	v.AddControl(v.scrollable)
	return v
}

func (v *ScrollableView) TypeName() string { return "ScrollableViewControl" }

// Scrollable returns the wrapped container that holds the content.
func (v *ScrollableView) Scrollable() *ScrollableContainer { return v.scrollable }

// AddContent adds item to the scrolled content.
func (v *ScrollableView) AddContent(item Control) Control {
	return v.scrollable.AddControl(item)
}

// ClearControls removes the scrolled content.
func (v *ScrollableView) ClearControls() { v.scrollable.ClearControls() }

// DesiredSize is the content size, so a non-expanding view hugs its content.
func (v *ScrollableView) DesiredSize() geom.Vector2 {
	if v.expand == ExpandBoth {
		return v.Size()
	}
	return v.scrollable.ChildrenSize()
}

// PlaceControls keeps the scrollable's position, which is its offset.
func (v *ScrollableView) PlaceControls(children []Control) {
	size := v.Size()
	v.backdrop.SetSize(size)
	v.scrollable.SetSize(size)
}

func (v *ScrollableView) ControlAt(pos geom.Vector2) Control {
	if hit := v.scrollable.ControlAt(pos); hit != nil {
		return hit
	}
	if v.backdrop.Contains(pos) {
		return v.backdrop
	}
	return nil
}

func (v *ScrollableView) OnPaint(p Painter) {
	p.PushClip(v.AbsoluteBounds())
	v.scrollable.OnPaint(p)
	p.PopClip()
}

// OnLoad takes Controls as the scrolled content.
func (v *ScrollableView) OnLoad(d *doc.Value) {
	v.Node.OnLoad(d)
	v.scrollable.loadControls(d.Get("Controls"))
	v.scrollable.SetHorizontalScrollBarEnabled(d.Get("HorizontalScrollBar").Boolean(true))
	v.scrollable.SetVerticalScrollBarEnabled(d.Get("VerticalScrollBar").Boolean(true))
}

func (v *ScrollableView) OnSave(d *doc.Value) {
	v.Node.OnSave(d)
	v.scrollable.saveControls(d, v.scrollable.content())
}
