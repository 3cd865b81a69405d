package retained

import (
	"fmt"
	"math"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/theme"
)

// ============================================================================
// Splitter
// ============================================================================
//
// Children are laid out as partition0, separator0, partition1, ... along
// the stacking axis. In fit mode the partitions share the space left after
// the separators exactly, the last one taking the remainder. Outside fit
// mode each partition starts at its content size and the splitter may be
// larger or smaller than its parent.

type splitItem struct {
	data     *Container
	handle   *Separator
	fraction float32
}

type Splitter struct {
	Container

	orientation Orientation
	fit         bool
	items       []*splitItem
	resize      bool

	dragging   *Separator
	dragIndex  int
	dragOffset geom.Vector2

	onResized func(s *Splitter)
}

// NewSplitter returns an empty fit-mode splitter stacking top to bottom.
func NewSplitter(w *Window) *Splitter {
	s := &Splitter{orientation: Vertical, fit: true}
	s.initContainer(s, w)
	return s
}

func (s *Splitter) TypeName() string { return "Splitter" }

func (s *Splitter) Orientation() Orientation { return s.orientation }
func (s *Splitter) Fit() bool                { return s.fit }
func (s *Splitter) Count() int               { return len(s.items) }

// SetOrientation changes the stacking axis and re-partitions on the next
// layout.
func (s *Splitter) SetOrientation(o Orientation) {
	if s.orientation == o {
		return
	}
	s.orientation = o
	for _, it := range s.items {
		if it.handle != nil {
			it.handle.SetOrientation(dividerOrientation(o))
		}
	}
	s.resize = true
	s.Invalidate(InvalidateLayout)
}

func (s *Splitter) SetFit(on bool) {
	if s.fit == on {
		return
	}
	s.fit = on
	s.resize = true
	s.Invalidate(InvalidateLayout)
}

func (s *Splitter) SetOnResized(fn func(s *Splitter)) { s.onResized = fn }

// dividerOrientation is the line direction of separators between items
// stacked along o.
func dividerOrientation(o Orientation) Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// AddContainer appends a partition, inserting a separator before it when it
// is not the first, and re-partitions evenly on the next layout.
func (s *Splitter) AddContainer() *Container {
	if n := len(s.items); n > 0 {
		sep := NewSeparator(s.window, dividerOrientation(s.orientation))
		sep.owner = s
		sep.SetProperty(theme.SeparatorMargins, theme.Float(0))
		s.items[n-1].handle = sep
		s.AddControl(sep)
	}
	data := NewContainer(s.window)
	s.items = append(s.items, &splitItem{data: data, fraction: -1})
	s.AddControl(data)

	for _, it := range s.items {
		it.fraction = -1
	}
	s.resize = true
	return data
}

// AddContainers appends n partitions.
func (s *Splitter) AddContainers(n int) {
	for i := 0; i < n; i++ {
		s.AddContainer()
	}
}

// Split returns partition i. Panics when i is out of range.
func (s *Splitter) Split(i int) *Container {
	s.checkIndex(i)
	return s.items[i].data
}

// SetSplitterPosition sets partition i to fraction f of the space remaining
// when it is placed. Applies on the next layout.
func (s *Splitter) SetSplitterPosition(i int, f float32) {
	s.checkIndex(i)
	s.items[i].fraction = f
	s.resize = true
	s.Invalidate(InvalidateLayout)
}

// SetSplitSize sets the stacking-axis size of partition i and reflows the
// others. Panics when i is out of range.
func (s *Splitter) SetSplitSize(i int, along float32) {
	s.checkIndex(i)
	if s.resize {
		s.placeItems()
	}
	s.resizeItem(i, max(along, 0))
}

func (s *Splitter) checkIndex(i int) {
	if i < 0 || i >= len(s.items) {
		panic(fmt.Sprintf("retained: splitter index %d out of range [0,%d)", i, len(s.items)))
	}
}

// SplitterSize is the size of one separator, zero with fewer than two
// partitions.
func (s *Splitter) SplitterSize() geom.Vector2 {
	if len(s.items) < 2 {
		return geom.Vector2{}
	}
	return s.items[0].handle.Size()
}

// availableAlong is the stacking-axis space left after the separators.
func (s *Splitter) availableAlong() float32 {
	n := len(s.items)
	if n == 0 {
		return 0
	}
	return s.orientation.along(s.Size()) - SeparatorSize*float32(n-1)
}

func (s *Splitter) DesiredSize() geom.Vector2 {
	if s.fit {
		return s.Size()
	}
	o := s.orientation
	var along, across float32
	for i, it := range s.items {
		size := it.data.ChildrenSize()
		if !s.resize {
			size = it.data.Size()
		}
		along += o.along(size)
		across = max(across, o.across(size))
		if i < len(s.items)-1 {
			along += SeparatorSize
		}
	}
	return o.vec(along, across)
}

// PlaceControls sizes and positions every partition and separator.
func (s *Splitter) PlaceControls(children []Control) {
	s.placeItems()
}

func (s *Splitter) placeItems() {
	n := len(s.items)
	if n == 0 {
		return
	}
	o := s.orientation
	sizes := make([]float32, n)
	cross := o.across(s.Size())
	if !s.fit {
		cross = max(cross, o.across(s.DesiredSize()))
	}

	if s.fit {
		avail := s.availableAlong()
		repartition := s.resize && avail > 0
		remaining := avail
		for i, it := range s.items {
			if i == n-1 {
				sizes[i] = max(remaining, 0)
				break
			}
			along := o.along(it.data.Size())
			if repartition {
				f := it.fraction
				if f < 0 {
					f = 1 / float32(n-i)
				}
				along = float32(math.Floor(float64(remaining * f)))
			}
			along = min(max(along, 0), max(remaining, 0))
			sizes[i] = along
			remaining -= along
		}
		if repartition {
			s.resize = false
		}
	} else {
		for i, it := range s.items {
			if s.resize {
				sizes[i] = o.along(it.data.ChildrenSize())
			} else {
				sizes[i] = o.along(it.data.Size())
			}
		}
		s.resize = false
	}

	remaining := s.availableAlong()
	var cursor float32
	for i, it := range s.items {
		it.data.SetSize(o.vec(sizes[i], cross))
		it.data.SetPosition(o.vec(cursor, 0))
		cursor += sizes[i]

		if s.fit {
			switch {
			case i == n-1:
				it.fraction = 1
			case remaining > 0:
				it.fraction = sizes[i] / remaining
			}
			remaining -= sizes[i]
		}

		if it.handle != nil {
			it.handle.SetSize(o.vec(SeparatorSize, cross))
			it.handle.SetPosition(o.vec(cursor, 0))
			cursor += SeparatorSize
		}
	}
}

// ============================================================================
// Dragging
// ============================================================================

func (s *Splitter) indexOfHandle(sep *Separator) int {
	for i, it := range s.items {
		if it.handle == sep {
			return i
		}
	}
	return -1
}

func (s *Splitter) separatorHovered(sep *Separator, on bool) {
	if on {
		s.window.SetMouseCursor(s.orientation.cursorFor())
		return
	}
	if s.dragging == nil {
		s.window.SetMouseCursor(CursorArrow)
	}
}

func (s *Splitter) beginDrag(sep *Separator, pos geom.Vector2) {
	idx := s.indexOfHandle(sep)
	if idx < 0 {
		return
	}
	s.dragging = sep
	s.dragIndex = idx
	s.dragOffset = pos.Sub(sep.AbsolutePosition())
}

// dragTo resizes the partition before the dragged separator so that the
// separator follows the pointer. In fit mode the partition can grow only
// until the last partition is empty.
func (s *Splitter) dragTo(pos geom.Vector2) {
	if s.dragging == nil {
		return
	}
	o := s.orientation
	it := s.items[s.dragIndex]
	diff := o.along(pos.Sub(it.data.AbsolutePosition()).Sub(s.dragOffset))
	diff = max(diff, 0)
	if s.fit {
		diff = min(diff, s.maxAlong(s.dragIndex))
	}
	s.resizeItem(s.dragIndex, diff)
}

func (s *Splitter) maxAlong(idx int) float32 {
	limit := s.availableAlong()
	for i, it := range s.items[:len(s.items)-1] {
		if i != idx {
			limit -= s.orientation.along(it.data.Size())
		}
	}
	return max(limit, 0)
}

func (s *Splitter) endDrag() {
	sep := s.dragging
	s.dragging = nil
	if sep != nil && !sep.IsHovered() {
		s.window.SetMouseCursor(CursorArrow)
	}
}

// resizeItem sets the stacking-axis size of partition idx and reflows the
// rest immediately.
func (s *Splitter) resizeItem(idx int, along float32) {
	o := s.orientation
	data := s.items[idx].data
	data.SetSize(o.vec(along, o.across(data.Size())))
	s.placeItems()
	s.Invalidate(InvalidateBoth)
	if s.onResized != nil {
		s.onResized(s)
	}
}

// ============================================================================
// Persistence
// ============================================================================

// OnLoad reads Orientation, Fit and the Containers array. Each container
// entry may carry a Position fraction.
func (s *Splitter) OnLoad(v *doc.Value) {
	s.Node.OnLoad(v)
	if o, ok := ParseOrientation(v.Get("Orientation").Str("")); ok {
		s.SetOrientation(o)
	}
	s.SetFit(v.Get("Fit").Boolean(s.fit))
	loaded := v.Get("Containers").Items()
	first := len(s.items)
	for _, sub := range loaded {
		s.AddContainer().OnLoad(sub)
	}
	for i, sub := range loaded {
		s.items[first+i].fraction = sub.Get("Position").Float(-1)
	}
	s.resize = true
}

func (s *Splitter) OnSave(v *doc.Value) {
	s.Node.OnSave(v)
	v.Set("Orientation", doc.String(s.orientation.String()))
	v.Set("Fit", doc.Bool(s.fit))
	list := doc.NewArray()
	for _, it := range s.items {
		item := doc.NewObject()
		it.data.OnSave(item)
		item.Set("Position", doc.Number(float64(it.fraction)))
		list.Append(item)
	}
	v.Set("Containers", list)
}
