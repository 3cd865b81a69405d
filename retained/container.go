package retained

import (
	"fmt"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
)

// Composite is a Control that owns an ordered list of children and places
// them during a layout pass.
type Composite interface {
	Control

	ContainerBase() *Container
	PlaceControls(children []Control)
	DesiredSize() geom.Vector2
	ControlAt(pos geom.Vector2) Control
	OnLayoutComplete()
	OnInsertControl(item Control)
	OnRemoveControl(item Control)
}

// Container is the base Composite. It places children at their natural
// size, stretched on the axes they expand along.
type Container struct {
	Node

	controls []Control
	inLayout bool
	clip     bool
}

// NewContainer returns an empty container.
func NewContainer(w *Window) *Container {
	c := &Container{}
	c.initContainer(c, w)
	return c
}

func (c *Container) initContainer(self Composite, w *Window) {
	c.Node.init(self, w)
	c.forwardKeys = true
}

func (c *Container) ContainerBase() *Container { return c }
func (c *Container) TypeName() string          { return "Container" }

func (c *Container) composite() Composite { return c.self.(Composite) }

// SetClip makes painting clip children to the container's bounds.
func (c *Container) SetClip(on bool) {
	c.clip = on
	c.Invalidate(InvalidatePaint)
}

func (c *Container) ShouldClip() bool { return c.clip }

// ============================================================================
// Children
// ============================================================================

// AddControl appends item. See InsertControl.
func (c *Container) AddControl(item Control) Control {
	return c.InsertControl(item, -1)
}

// InsertControl adds item at position at, or appends when at is out of
// range. An item already held by c is left alone; an item held by another
// composite moves. Panics on a nil item.
func (c *Container) InsertControl(item Control, at int) Control {
	if item == nil {
		panic("retained: InsertControl with nil control")
	}
	if c.HasControl(item) {
		return item
	}

	b := item.Base()
	if b.parent != nil {
		b.parent.ContainerBase().RemoveControl(item)
	}
	b.parent = c.composite()
	if b.window == nil {
		b.window = c.window
	}
	b.onInvalidate = c.handleInvalidate

	if at >= 0 && at < len(c.controls) {
		c.controls = append(c.controls, nil)
		copy(c.controls[at+1:], c.controls[at:])
		c.controls[at] = item
	} else {
		c.controls = append(c.controls, item)
	}

	c.invalidateWith(item, InvalidatePaint)
	c.Invalidate(InvalidateLayout)
	c.composite().OnInsertControl(item)
	return item
}

// RemoveControl detaches item. It reports false when item is not a child.
func (c *Container) RemoveControl(item Control) bool {
	idx := c.indexOf(item)
	if idx < 0 {
		return false
	}
	c.controls = append(c.controls[:idx], c.controls[idx+1:]...)
	b := item.Base()
	b.parent = nil
	b.onInvalidate = nil

	c.Invalidate(InvalidateBoth)
	c.composite().OnRemoveControl(item)
	return true
}

// ClearControls detaches every child.
func (c *Container) ClearControls() {
	for _, item := range c.controls {
		b := item.Base()
		b.parent = nil
		b.onInvalidate = nil
	}
	c.controls = nil
	c.Invalidate(InvalidateBoth)
}

func (c *Container) indexOf(item Control) int {
	for i, ch := range c.controls {
		if ch == item {
			return i
		}
	}
	return -1
}

// HasControl reports whether item is a direct child.
func (c *Container) HasControl(item Control) bool {
	return c.indexOf(item) >= 0
}

// HasControlRecurse reports whether item is anywhere below c.
func (c *Container) HasControlRecurse(item Control) bool {
	for _, ch := range c.controls {
		if ch == item {
			return true
		}
		if cc, ok := ch.(Composite); ok && cc.ContainerBase().HasControlRecurse(item) {
			return true
		}
	}
	return false
}

// Control returns the child at index i. Panics when i is out of range.
func (c *Container) Control(i int) Control {
	if i < 0 || i >= len(c.controls) {
		panic(fmt.Sprintf("retained: control index %d out of range [0,%d)", i, len(c.controls)))
	}
	return c.controls[i]
}

// NumControls returns the child count.
func (c *Container) NumControls() int { return len(c.controls) }

// Controls returns the child list. Callers must not modify it.
func (c *Container) Controls() []Control { return c.controls }

// FindControl returns the first descendant, depth first, whose ID is id.
func (c *Container) FindControl(id string) Control {
	for _, ch := range c.controls {
		if ch.Base().id == id {
			return ch
		}
		if cc, ok := ch.(Composite); ok {
			if found := cc.ContainerBase().FindControl(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// ============================================================================
// Sizing and hit testing
// ============================================================================

// naturalSize is what a child asks for: DesiredSize for composites and the
// current size for leaves.
func naturalSize(item Control) geom.Vector2 {
	if cc, ok := item.(Composite); ok {
		return cc.DesiredSize()
	}
	return item.Base().Size()
}

// ChildrenSize returns the component-wise maximum natural size of the
// children.
func (c *Container) ChildrenSize() geom.Vector2 {
	var size geom.Vector2
	for _, ch := range c.controls {
		size = size.Max(naturalSize(ch))
	}
	return size
}

// DesiredSize defaults to the current size.
func (c *Container) DesiredSize() geom.Vector2 {
	return c.Size()
}

// ControlAt returns the topmost leaf under pos. Children are searched last
// to first and composites are descended into, never returned.
func (c *Container) ControlAt(pos geom.Vector2) Control {
	for i := len(c.controls) - 1; i >= 0; i-- {
		item := c.controls[i]
		if cc, ok := item.(Composite); ok {
			if hit := cc.ControlAt(pos); hit != nil {
				return hit
			}
			continue
		}
		if item.Base().Contains(pos) {
			return item
		}
	}
	return nil
}

func (c *Container) OnLayoutComplete()            {}
func (c *Container) OnInsertControl(item Control) {}
func (c *Container) OnRemoveControl(item Control) {}

// ============================================================================
// Hooks
// ============================================================================

func (c *Container) OnThemeLoaded() {
	for _, ch := range c.controls {
		ch.OnThemeLoaded()
	}
}

func (c *Container) OnPaint(p Painter) {
	c.paintChildren(p, c.controls)
}

func (c *Container) paintChildren(p Painter, children []Control) {
	if c.clip {
		p.PushClip(c.AbsoluteBounds())
		defer p.PopClip()
	}
	for _, ch := range children {
		ch.OnPaint(p)
	}
}

// OnLoad reads the node fields, Clip and the Controls array.
func (c *Container) OnLoad(v *doc.Value) {
	c.Node.OnLoad(v)
	c.clip = v.Get("Clip").Boolean(c.clip)
	c.loadControls(v.Get("Controls"))
}

// loadControls instantiates each entry through the factory. Each control is
// inserted before it loads so that it can resolve its window and parent.
func (c *Container) loadControls(list *doc.Value) {
	for _, item := range list.Items() {
		typ := item.Get("Type").Str("")
		ctl := CreateControl(typ, c.window)
		if ctl == nil {
			debugLog("unknown control type", "type", typ, "parent", c.FullID())
			continue
		}
		c.AddControl(ctl)
		ctl.OnLoad(item)
	}
}

func (c *Container) OnSave(v *doc.Value) {
	c.Node.OnSave(v)
	if c.clip {
		v.Set("Clip", doc.Bool(true))
	}
	c.saveControls(v, c.controls)
}

func (c *Container) saveControls(v *doc.Value, children []Control) {
	list := doc.NewArray()
	for _, ch := range children {
		item := doc.NewObject()
		ch.OnSave(item)
		list.Append(item)
	}
	v.Set("Controls", list)
}
