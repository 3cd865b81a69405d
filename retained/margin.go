package retained

import (
	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
)

// MarginContainer insets its children. Margins.Min holds the left and top
// edges, Margins.Max the right and bottom.
type MarginContainer struct {
	Container

	margins geom.Rect
}

func NewMarginContainer(w *Window) *MarginContainer {
	m := &MarginContainer{}
	m.initContainer(m, w)
	return m
}

func (m *MarginContainer) TypeName() string { return "MarginContainer" }

func (m *MarginContainer) Margins() geom.Rect { return m.margins }

func (m *MarginContainer) SetMargins(r geom.Rect) {
	if m.margins == r {
		return
	}
	m.margins = r
	m.Invalidate(InvalidateLayout)
}

func (m *MarginContainer) DesiredSize() geom.Vector2 {
	return m.ChildrenSize().Add(m.margins.Min).Add(m.margins.Max)
}

func (m *MarginContainer) PlaceControls(children []Control) {
	inner := m.Size().Sub(m.margins.Min).Sub(m.margins.Max).Max(geom.Vector2{})
	for _, item := range children {
		s := naturalSize(item)
		e := item.Base().Expand()
		if e.Width() {
			s.X = inner.X
		}
		if e.Height() {
			s.Y = inner.Y
		}
		item.Base().SetSize(s)
		item.Base().SetPosition(m.margins.Min)
	}
}

func (m *MarginContainer) OnLoad(v *doc.Value) {
	if r := v.Get("Margins").FloatSlice(); len(r) >= 4 {
		m.margins = geom.Rect{Min: geom.Vec(r[0], r[1]), Max: geom.Vec(r[2], r[3])}
	}
	m.Container.OnLoad(v)
}

func (m *MarginContainer) OnSave(v *doc.Value) {
	m.Container.OnSave(v)
	r := m.margins
	v.Set("Margins", doc.Floats(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y))
}
