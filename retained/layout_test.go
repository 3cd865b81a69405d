package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
)

// traced logs the layout steps of a composite.
type traced struct {
	Container

	name string
	log  *[]string
}

func newTraced(name string, log *[]string) *traced {
	c := &traced{name: name, log: log}
	c.initContainer(c, nil)
	return c
}

func (c *traced) PlaceControls(children []Control) {
	*c.log = append(*c.log, c.name+".place")
	c.Container.PlaceControls(children)
}

func (c *traced) Update()           { *c.log = append(*c.log, c.name+".update") }
func (c *traced) OnLayoutComplete() { *c.log = append(*c.log, c.name+".complete") }

type tracedLeaf struct {
	Node

	name string
	log  *[]string
}

func newTracedLeaf(name string, log *[]string) *tracedLeaf {
	l := &tracedLeaf{name: name, log: log}
	l.init(l, nil)
	return l
}

func (l *tracedLeaf) Update() { *l.log = append(*l.log, l.name+".update") }

// resizer grows its target every time it updates.
type resizer struct {
	Node

	target Control
}

func (r *resizer) Update() {
	b := r.target.Base()
	b.SetSize(b.Size().Add(geom.Vec(1, 1)))
	b.Invalidate(InvalidatePaint)
}

func TestLayoutOrder(t *testing.T) {
	var log []string
	outer := newTraced("outer", &log)
	inner := newTraced("inner", &log)
	inner.AddControl(newTracedLeaf("b", &log))
	outer.AddControl(inner)
	outer.AddControl(newTracedLeaf("a", &log))

	outer.Layout()

	assert.Equal(t, []string{
		"outer.place",
		"inner.place",
		"b.update",
		"inner.complete",
		"inner.update",
		"a.update",
		"outer.complete",
	}, log)
	assert.False(t, outer.IsInLayout())
	assert.False(t, inner.IsInLayout())
}

func TestInLayoutSwallowsSiblingResize(t *testing.T) {
	c := NewContainer(nil)
	var rec invalidations
	c.SetOnInvalidate(rec.fn)

	target := newRecorder(nil, geom.Vec(10, 10))
	r := &resizer{target: target}
	r.init(r, nil)
	c.AddControl(target)
	c.AddControl(r)
	rec.reset()

	c.Layout()

	assert.Equal(t, geom.Vec(11, 11), target.Size())
	assert.Zero(t, rec.count(InvalidateLayout), "layout raised mid-pass is dropped")
	assert.Equal(t, 1, rec.count(InvalidatePaint), "paint still passes")

	target.SetSize(geom.Vec(20, 20))
	assert.Equal(t, 1, rec.count(InvalidateLayout), "outside the pass it propagates")
}

func TestContainerChildren(t *testing.T) {
	c := NewContainer(nil)
	a := newRecorder(nil, geom.Vec(1, 1))
	b := newRecorder(nil, geom.Vec(1, 1))
	x := newRecorder(nil, geom.Vec(1, 1))

	c.AddControl(a)
	c.AddControl(b)
	c.InsertControl(x, 1)
	c.AddControl(a)

	require.Equal(t, 3, c.NumControls(), "re-adding a child is ignored")
	assert.Equal(t, []Control{a, x, b}, c.Controls())

	assert.True(t, c.RemoveControl(x))
	assert.False(t, c.RemoveControl(x))
	assert.Nil(t, x.Parent())

	assert.Panics(t, func() { c.AddControl(nil) })
	assert.Panics(t, func() { c.Control(5) })
}

func TestControlAtPrefersLastChild(t *testing.T) {
	c := NewContainer(nil)
	below := newRecorder(nil, geom.Vec(50, 50))
	above := newRecorder(nil, geom.Vec(20, 20))
	above.SetPosition(geom.Vec(10, 10))
	inner := NewContainer(nil)
	deep := newRecorder(nil, geom.Vec(5, 5))
	deep.SetPosition(geom.Vec(100, 100))
	inner.AddControl(deep)

	c.AddControl(below)
	c.AddControl(above)
	c.AddControl(inner)

	assert.Equal(t, Control(above), c.ControlAt(geom.Vec(15, 15)))
	assert.Equal(t, Control(below), c.ControlAt(geom.Vec(45, 45)))
	assert.Equal(t, Control(deep), c.ControlAt(geom.Vec(102, 102)), "composites are descended into")
	assert.Nil(t, c.ControlAt(geom.Vec(300, 300)))
}

func TestContainerExpandsChildren(t *testing.T) {
	c := NewContainer(nil)
	c.SetSize(geom.Vec(200, 100))
	wide := newRecorder(nil, geom.Vec(10, 10))
	wide.SetExpand(ExpandWidth)
	wide.SetPosition(geom.Vec(5, 5))
	both := newRecorder(nil, geom.Vec(10, 10))
	both.SetExpand(ExpandBoth)
	c.AddControl(wide)
	c.AddControl(both)

	c.Layout()

	assert.Equal(t, geom.Vec(200, 10), wide.Size())
	assert.Equal(t, geom.Vec(5, 5), wide.Position(), "positions are left alone")
	assert.Equal(t, geom.Vec(200, 100), both.Size())
}

func TestBoxPartition(t *testing.T) {
	tests := []struct {
		name      string
		width     float32
		spacing   float32
		wantSizes [2]float32
		wantPos   [2]float32
	}{
		{"even", 1280, 0, [2]float32{640, 640}, [2]float32{0, 640}},
		{"odd with spacing", 101, 4, [2]float32{48, 49}, [2]float32{0, 52}},
		{"even with spacing", 100, 4, [2]float32{48, 48}, [2]float32{0, 52}},
		{"odd remainder", 9, 0, [2]float32{4, 5}, [2]float32{0, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewHorizontalBox(nil)
			box.SetSpacing(geom.Vec(tt.spacing, tt.spacing))
			box.SetSize(geom.Vec(tt.width, 30))
			a := newRecorder(nil, geom.Vec(0, 10))
			a.SetExpand(ExpandWidth)
			b := newRecorder(nil, geom.Vec(0, 10))
			b.SetExpand(ExpandWidth)
			box.AddControl(a)
			box.AddControl(b)

			box.Layout()

			assert.Equal(t, geom.Vec(tt.wantSizes[0], 10), a.Size())
			assert.Equal(t, geom.Vec(tt.wantSizes[1], 10), b.Size())
			assert.Equal(t, tt.wantPos[0], a.Position().X)
			assert.Equal(t, tt.wantPos[1], b.Position().X)
			assert.Equal(t, tt.width, a.Size().X+b.Size().X+tt.spacing)
		})
	}
}

func TestBoxFixedAndExpanding(t *testing.T) {
	box := NewVerticalBox(nil)
	box.SetSpacing(geom.Vec(0, 10))
	box.SetSize(geom.Vec(100, 300))
	header := newRecorder(nil, geom.Vec(40, 50))
	fill := newRecorder(nil, geom.Vec(0, 0))
	fill.SetExpand(ExpandBoth)
	footer := newRecorder(nil, geom.Vec(60, 20))
	box.AddControl(header)
	box.AddControl(fill)
	box.AddControl(footer)

	box.Layout()

	assert.Equal(t, geom.Vec(100, 210), fill.Size())
	assert.Equal(t, geom.Vec(0, 0), header.Position())
	assert.Equal(t, geom.Vec(0, 60), fill.Position())
	assert.Equal(t, geom.Vec(0, 280), footer.Position())
	assert.Equal(t, geom.Vec(40, 50), header.Size(), "fixed children keep their size")
}

func TestBoxGrow(t *testing.T) {
	tests := []struct {
		grow Grow
		want [2]float32
	}{
		{GrowBegin, [2]float32{0, 10}},
		{GrowCenter, [2]float32{40, 50}},
		{GrowEnd, [2]float32{80, 90}},
	}
	for _, tt := range tests {
		t.Run(tt.grow.String(), func(t *testing.T) {
			box := NewHorizontalBox(nil)
			box.SetSpacing(geom.Vector2{})
			box.SetGrow(tt.grow)
			box.SetSize(geom.Vec(100, 10))
			a := newRecorder(nil, geom.Vec(10, 10))
			b := newRecorder(nil, geom.Vec(10, 10))
			box.AddControl(a)
			box.AddControl(b)

			box.Layout()

			assert.Equal(t, tt.want[0], a.Position().X)
			assert.Equal(t, tt.want[1], b.Position().X)
		})
	}
}

func TestBoxDesiredSize(t *testing.T) {
	box := NewVerticalBox(nil)
	box.AddControl(newRecorder(nil, geom.Vec(30, 10)))
	box.AddControl(newRecorder(nil, geom.Vec(50, 20)))

	assert.Equal(t, geom.Vec(50, 10+20+DefaultSpacing.Y), box.DesiredSize())
}

func TestBoxIgnoreDesiredSize(t *testing.T) {
	tests := []struct {
		name   string
		ignore bool
		want   geom.Vector2
	}{
		{"measures children", false, geom.Vec(50, 10+20+DefaultSpacing.Y)},
		{"keeps its own size", true, geom.Vec(100, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewVerticalBox(nil)
			box.AddControl(newRecorder(nil, geom.Vec(30, 10)))
			box.AddControl(newRecorder(nil, geom.Vec(50, 20)))
			box.SetSize(geom.Vec(100, 15))
			box.SetIgnoreDesiredSize(tt.ignore)
			assert.Equal(t, tt.ignore, box.ShouldIgnoreDesiredSize())
			assert.Equal(t, tt.want, box.DesiredSize())

			row := NewHorizontalBox(nil)
			row.AddControl(box)
			row.SetSize(geom.Vec(300, 300))
			row.Layout()
			assert.Equal(t, tt.want, box.Size(), "a parent box places it at its natural size")
		})
	}
}

func TestBoxIgnoreDesiredSizeDocument(t *testing.T) {
	v, err := doc.ParseJSON([]byte(`{"IgnoreDesiredSize": true, "Spacing": [2, 2]}`))
	require.NoError(t, err)

	box := NewVerticalBox(nil)
	box.OnLoad(v)
	assert.True(t, box.ShouldIgnoreDesiredSize())

	out := doc.NewObject()
	box.OnSave(out)
	assert.True(t, out.Get("IgnoreDesiredSize").Boolean(false))
}

func TestMarginContainer(t *testing.T) {
	m := NewMarginContainer(nil)
	m.SetMargins(geom.Rect{Min: geom.Vec(5, 10), Max: geom.Vec(15, 20)})
	m.SetSize(geom.Vec(200, 100))
	fill := newRecorder(nil, geom.Vec(30, 40))
	fill.SetExpand(ExpandBoth)
	m.AddControl(fill)

	assert.Equal(t, geom.Vec(30+20, 40+30), m.DesiredSize())

	m.Layout()

	assert.Equal(t, geom.Vec(180, 70), fill.Size())
	assert.Equal(t, geom.Vec(5, 10), fill.Position())
}
