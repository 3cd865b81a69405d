package retained

import "github.com/agiangrant/trellis/geom"

// ============================================================================
// Layout pass
// ============================================================================
//
// A pass over a composite runs in a fixed order:
//   1. mark the composite in-layout
//   2. PlaceControls sizes and positions the direct children
//   3. child composites lay themselves out, in child order
//   4. every direct child runs Update
//   5. OnLayoutComplete
//   6. clear the in-layout mark
//
// While a composite or any ancestor is in-layout, Layout and Both
// invalidations raised below it are dropped; the pass is already producing
// the state those invalidations would ask for. Paint invalidations always
// pass through.

// Layout runs a layout pass rooted at c.
func (c *Container) Layout() {
	self := c.composite()
	c.inLayout = true

	children := snapshotControls(c.controls)
	self.PlaceControls(children)

	for _, item := range children {
		if cc, ok := item.(Composite); ok {
			cc.ContainerBase().Layout()
		}
	}
	for _, item := range children {
		item.Update()
	}
	releaseControlSlice(children)

	self.OnLayoutComplete()
	c.inLayout = false
}

// IsInLayout reports whether c or any ancestor is mid-pass.
func (c *Container) IsInLayout() bool {
	for p := Composite(c.composite()); p != nil; p = p.Base().parent {
		if p.ContainerBase().inLayout {
			return true
		}
	}
	return false
}

// handleInvalidate is the callback installed on every child.
func (c *Container) handleInvalidate(focus Control, t InvalidateType) {
	if t != InvalidatePaint && c.IsInLayout() {
		return
	}
	c.invalidateWith(focus, t)
}

// PlaceControls sizes each child to its natural size, replaced by the
// container's size on each axis the child expands along. Positions are
// left alone.
func (c *Container) PlaceControls(children []Control) {
	size := c.Size()
	for _, item := range children {
		s := naturalSize(item)
		e := item.Base().Expand()
		if e.Width() {
			s.X = size.X
		}
		if e.Height() {
			s.Y = size.Y
		}
		item.Base().SetSize(s)
	}
}

// ============================================================================
// Axis helpers
// ============================================================================

// along returns the component of v on the stacking axis.
func (o Orientation) along(v geom.Vector2) float32 {
	if o == Vertical {
		return v.Y
	}
	return v.X
}

// across returns the component of v on the other axis.
func (o Orientation) across(v geom.Vector2) float32 {
	if o == Vertical {
		return v.X
	}
	return v.Y
}

// vec builds a vector from stacking-axis and cross-axis components.
func (o Orientation) vec(along, across float32) geom.Vector2 {
	if o == Vertical {
		return geom.Vec(across, along)
	}
	return geom.Vec(along, across)
}

// expandsAlong reports whether e stretches on the stacking axis.
func (o Orientation) expandsAlong(e Expand) bool {
	if o == Vertical {
		return e.Height()
	}
	return e.Width()
}

// expandsAcross reports whether e stretches on the cross axis.
func (o Orientation) expandsAcross(e Expand) bool {
	if o == Vertical {
		return e.Width()
	}
	return e.Height()
}

// cursorFor is the resize cursor for a divider between items stacked along o.
func (o Orientation) cursorFor() Cursor {
	if o == Vertical {
		return CursorSizeNS
	}
	return CursorSizeWE
}
