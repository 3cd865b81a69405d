package retained

import (
	"math"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
)

// Grow says where children sit along the stacking axis when none of them
// expand along it.
type Grow uint8

const (
	GrowBegin Grow = iota
	GrowCenter
	GrowEnd
)

func (g Grow) String() string {
	switch g {
	case GrowCenter:
		return "Center"
	case GrowEnd:
		return "End"
	}
	return "Begin"
}

// ParseGrow reads the document spelling of a Grow value.
func ParseGrow(s string) (Grow, bool) {
	switch s {
	case "Begin":
		return GrowBegin, true
	case "Center":
		return GrowCenter, true
	case "End":
		return GrowEnd, true
	}
	return GrowBegin, false
}

// BoxContainer stacks its children along one axis with fixed spacing.
type BoxContainer struct {
	Container

	orientation       Orientation
	grow              Grow
	spacing           geom.Vector2
	ignoreDesiredSize bool
}

// DefaultSpacing separates box children unless overridden.
var DefaultSpacing = geom.Vec(4, 4)

// NewBox returns a box stacking along o.
func NewBox(w *Window, o Orientation) *BoxContainer {
	b := &BoxContainer{orientation: o, spacing: DefaultSpacing}
	b.initContainer(b, w)
	return b
}

// NewHorizontalBox returns a box that stacks left to right.
func NewHorizontalBox(w *Window) *BoxContainer { return NewBox(w, Horizontal) }

// NewVerticalBox returns a box that stacks top to bottom.
func NewVerticalBox(w *Window) *BoxContainer { return NewBox(w, Vertical) }

func (b *BoxContainer) TypeName() string {
	if b.orientation == Vertical {
		return "VerticalContainer"
	}
	return "HorizontalContainer"
}

func (b *BoxContainer) Orientation() Orientation { return b.orientation }
func (b *BoxContainer) Grow() Grow               { return b.grow }
func (b *BoxContainer) Spacing() geom.Vector2    { return b.spacing }

func (b *BoxContainer) SetGrow(g Grow) {
	if b.grow == g {
		return
	}
	b.grow = g
	b.Invalidate(InvalidateLayout)
}

func (b *BoxContainer) SetSpacing(s geom.Vector2) {
	if b.spacing == s {
		return
	}
	b.spacing = s
	b.Invalidate(InvalidateLayout)
}

// SetIgnoreDesiredSize makes the box report its current size as its natural
// size instead of measuring its children.
func (b *BoxContainer) SetIgnoreDesiredSize(on bool) {
	if b.ignoreDesiredSize == on {
		return
	}
	b.ignoreDesiredSize = on
	b.Invalidate(InvalidateLayout)
}

func (b *BoxContainer) ShouldIgnoreDesiredSize() bool { return b.ignoreDesiredSize }

// DesiredSize sums natural sizes plus spacing along the stacking axis and
// takes the maximum across it.
func (b *BoxContainer) DesiredSize() geom.Vector2 {
	if b.ignoreDesiredSize {
		return b.Container.DesiredSize()
	}
	o := b.orientation
	var along, across float32
	for _, item := range b.controls {
		s := naturalSize(item)
		along += o.along(s)
		across = max(across, o.across(s))
	}
	if n := len(b.controls); n > 1 {
		along += o.along(b.spacing) * float32(n-1)
	}
	return o.vec(along, across)
}

// PlaceControls shares the space left by fixed children equally among the
// children that expand along the stacking axis, then positions everything
// in order. Shares are floored and the last expanding child takes the
// remainder.
func (b *BoxContainer) PlaceControls(children []Control) {
	o := b.orientation
	size := b.Size()
	spacing := o.along(b.spacing)
	n := len(children)
	if n == 0 {
		return
	}

	avail := o.along(size) - spacing*float32(n-1)
	expanders := 0
	for _, item := range children {
		if o.expandsAlong(item.Base().Expand()) {
			expanders++
		} else {
			avail -= o.along(naturalSize(item))
		}
	}
	avail = max(avail, 0)
	var share float32
	if expanders > 0 {
		share = float32(math.Floor(float64(avail / float32(expanders))))
	}

	var total float32
	seen := 0
	for _, item := range children {
		e := item.Base().Expand()
		s := naturalSize(item)
		along, across := o.along(s), o.across(s)
		if o.expandsAlong(e) {
			seen++
			along = share
			if seen == expanders {
				along = avail - share*float32(expanders-1)
			}
		}
		if o.expandsAcross(e) {
			across = o.across(size)
		}
		item.Base().SetSize(o.vec(along, across))
		total += o.along(item.Base().Size())
	}
	total += spacing * float32(n-1)

	var offset float32
	if expanders == 0 {
		switch b.grow {
		case GrowCenter:
			offset = (o.along(size) - total) / 2
		case GrowEnd:
			offset = o.along(size) - total
		}
	}
	for _, item := range children {
		item.Base().SetPosition(o.vec(offset, 0))
		offset += o.along(item.Base().Size()) + spacing
	}
}

func (b *BoxContainer) OnLoad(v *doc.Value) {
	if g, ok := ParseGrow(v.Get("Grow").Str("")); ok {
		b.grow = g
	}
	if s := v.Get("Spacing").FloatSlice(); len(s) >= 2 {
		b.spacing = geom.Vec(s[0], s[1])
	}
	b.ignoreDesiredSize = v.Get("IgnoreDesiredSize").Boolean(b.ignoreDesiredSize)
	b.Container.OnLoad(v)
}

func (b *BoxContainer) OnSave(v *doc.Value) {
	b.Container.OnSave(v)
	v.Set("Grow", doc.String(b.grow.String()))
	v.Set("Spacing", doc.Floats(b.spacing.X, b.spacing.Y))
	v.Set("IgnoreDesiredSize", doc.Bool(b.ignoreDesiredSize))
}
