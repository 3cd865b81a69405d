package retained

import (
	"time"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
)

// ============================================================================
// ScrollableContainer
// ============================================================================
//
// A scrollable container is positioned at the negated scroll offset inside
// its parent's viewport, so its children stay at content coordinates while
// the visible window slides over them. The two scroll bars are children too;
// they are repositioned after every offset change so that they stay pinned
// to the viewport edges.

const (
	scrollStep         = 6
	scrollInitialDelay = 400 * time.Millisecond
	scrollRepeatDelay  = 100 * time.Millisecond
)

// DefaultScrollSpeed is the wheel multiplier for new containers.
var DefaultScrollSpeed = geom.Vec(10, 10)

// ScrollableContainer scrolls its content. Its parent must not position it,
// since the position is the negated offset; wrap it in a ScrollableView to
// place it inside a box.
type ScrollableContainer struct {
	Container

	hbar, vbar  *ScrollBar
	contentSize geom.Vector2
	scrollSpeed geom.Vector2
	infinite    bool
	onScroll    func(delta geom.Vector2)

	timer         *Timer
	step          geom.Vector2
	initialScroll bool
}

func NewScrollableContainer(w *Window) *ScrollableContainer {
	s := &ScrollableContainer{scrollSpeed: DefaultScrollSpeed, initialScroll: true}
	s.initContainer(s, w)
	s.SetExpand(ExpandBoth)

	s.hbar = NewScrollBar(w, Horizontal)
	s.hbar.SetOnScrollMin(func(*ScrollBar) { s.startStepping(geom.Vec(-scrollStep, 0)) })
	s.hbar.SetOnScrollMax(func(*ScrollBar) { s.startStepping(geom.Vec(scrollStep, 0)) })
	s.hbar.SetOnRelease(func(*ScrollBar) { s.stopStepping() })
	s.hbar.Handle().SetOnDrag(func(*ScrollBar) {
		pct := s.hbar.Handle().OffsetPct()
		s.SetOffset(geom.Vec(pct*s.Overflow().X, -s.Position().Y), false)
		s.Invalidate(InvalidatePaint)
	})
	s.AddControl(s.hbar)

	s.vbar = NewScrollBar(w, Vertical)
	s.vbar.SetOnScrollMin(func(*ScrollBar) { s.startStepping(geom.Vec(0, -scrollStep)) })
	s.vbar.SetOnScrollMax(func(*ScrollBar) { s.startStepping(geom.Vec(0, scrollStep)) })
	s.vbar.SetOnRelease(func(*ScrollBar) { s.stopStepping() })
	s.vbar.Handle().SetOnDrag(func(*ScrollBar) {
		pct := s.vbar.Handle().OffsetPct()
		s.SetOffset(geom.Vec(-s.Position().X, pct*s.Overflow().Y), false)
		s.Invalidate(InvalidatePaint)
	})
	s.AddControl(s.vbar)

	s.hbar.OnThemeLoaded()
	s.vbar.OnThemeLoaded()
	return s
}

func (s *ScrollableContainer) TypeName() string { return "ScrollableContainer" }

func (s *ScrollableContainer) HorizontalScrollBar() *ScrollBar { return s.hbar }
func (s *ScrollableContainer) VerticalScrollBar() *ScrollBar   { return s.vbar }
func (s *ScrollableContainer) ContentSize() geom.Vector2       { return s.contentSize }
func (s *ScrollableContainer) ScrollSpeed() geom.Vector2       { return s.scrollSpeed }
func (s *ScrollableContainer) IsInfinite() bool                { return s.infinite }

func (s *ScrollableContainer) SetScrollSpeed(v geom.Vector2)           { s.scrollSpeed = v }
func (s *ScrollableContainer) SetOnScroll(fn func(delta geom.Vector2)) { s.onScroll = fn }

// SetInfinite lifts the clamp on the offset.
func (s *ScrollableContainer) SetInfinite(on bool) { s.infinite = on }

// SetHorizontalScrollBarEnabled hides or shows the horizontal bar.
func (s *ScrollableContainer) SetHorizontalScrollBarEnabled(on bool) {
	s.hbar.SetEnabled(on)
	s.updateScrollBarSizes()
}

// SetVerticalScrollBarEnabled hides or shows the vertical bar.
func (s *ScrollableContainer) SetVerticalScrollBarEnabled(on bool) {
	s.vbar.SetEnabled(on)
	s.updateScrollBarSizes()
}

// IsScrolling reports whether a handle is being dragged.
func (s *ScrollableContainer) IsScrolling() bool {
	return s.hbar.Handle().IsDragging() || s.vbar.Handle().IsDragging()
}

func (s *ScrollableContainer) isScrollBar(item Control) bool {
	return item == Control(s.hbar) || item == Control(s.vbar)
}

// content returns the children other than the scroll bars.
func (s *ScrollableContainer) content() []Control {
	out := make([]Control, 0, len(s.controls))
	for _, item := range s.controls {
		if !s.isScrollBar(item) {
			out = append(out, item)
		}
	}
	return out
}

// ClearControls removes the content and keeps the scroll bars.
func (s *ScrollableContainer) ClearControls() {
	for _, item := range s.content() {
		s.RemoveControl(item)
	}
}

func (s *ScrollableContainer) computeContentSize() geom.Vector2 {
	var size geom.Vector2
	for _, item := range s.controls {
		if s.isScrollBar(item) {
			continue
		}
		b := item.Base()
		size = size.Max(b.Position().Add(naturalSize(item)))
	}
	return size
}

// ============================================================================
// Overflow and bar geometry
// ============================================================================

// scrollBarsVisible settles which bars show. A bar appears when the content
// overflows its axis; showing one bar eats into the other axis, which may
// then overflow too. Two rounds reach the fixed point.
func (s *ScrollableContainer) scrollBarsVisible() (h, v bool) {
	size := s.Size()
	thickness := s.vbar.Thickness()
	overX := s.contentSize.X - size.X
	overY := s.contentSize.Y - size.Y

	h = s.hbar.Enabled() && (s.hbar.AlwaysPaint() || overX > 0)
	v = s.vbar.Enabled() && (s.vbar.AlwaysPaint() || overY > 0)
	for i := 0; i < 2; i++ {
		if v && !h {
			h = s.hbar.Enabled() && overX+thickness > 0
		}
		if h && !v {
			v = s.vbar.Enabled() && overY+thickness > 0
		}
	}
	return h, v
}

// Overflow is how far the content extends past the viewport, counting the
// space taken by a visible bar on the other axis.
func (s *ScrollableContainer) Overflow() geom.Vector2 {
	h, v := s.scrollBarsVisible()
	thickness := s.vbar.Thickness()
	size := s.Size()
	over := s.contentSize.Sub(size)
	if v {
		over.X += thickness
	}
	if h {
		over.Y += thickness
	}
	return over.Max(geom.Vector2{})
}

func (s *ScrollableContainer) updateScrollBarSizes() {
	h, v := s.scrollBarsVisible()
	thickness := s.vbar.Thickness()
	size := s.Size()
	overflow := s.Overflow()

	width := size.X
	if v {
		width -= thickness
	}
	height := size.Y
	if h {
		height -= thickness
	}
	s.hbar.SetScrollBarSize(geom.Vec(max(width, 0), thickness))
	s.vbar.SetScrollBarSize(geom.Vec(thickness, max(height, 0)))

	var hs, vs float32
	if h && overflow.X > 0 {
		hs = s.hbar.ScrollBarSize().X - overflow.X
	}
	if v && overflow.Y > 0 {
		vs = s.vbar.ScrollBarSize().Y - overflow.Y
	}
	s.hbar.Handle().SetHandleSize(hs)
	s.vbar.Handle().SetHandleSize(vs)
}

// updateScrollBarPositions pins the bars to the bottom and right edges of
// the viewport.
func (s *ScrollableContainer) updateScrollBarPositions() {
	pos := s.Position()
	size := s.Size()
	thickness := s.vbar.Thickness()
	s.hbar.SetPosition(geom.Vec(-pos.X, -pos.Y+size.Y-thickness))
	s.vbar.SetPosition(geom.Vec(-pos.X+size.X-thickness, -pos.Y))
}

// ============================================================================
// Offset
// ============================================================================

// Offset is the scrolled distance, the negated position.
func (s *ScrollableContainer) Offset() geom.Vector2 {
	return s.Position().Neg()
}

// SetOffset scrolls to offset, clamped to [0, Overflow] unless infinite.
// With updateHandles the thumbs follow the new offset.
func (s *ScrollableContainer) SetOffset(offset geom.Vector2, updateHandles bool) {
	overflow := s.Overflow()
	pos := offset.Neg()
	if !s.infinite {
		pos = pos.Clamp(overflow.Neg(), geom.Vector2{})
	}
	delta := s.Position().Sub(pos)
	s.SetPosition(pos)
	if s.onScroll != nil && !delta.IsZero() {
		s.onScroll(delta)
	}

	if updateHandles {
		cur := s.Position()
		pct := geom.Vec(-cur.X/nonZero(overflow.X), -cur.Y/nonZero(overflow.Y))
		s.hbar.Handle().SetOffset(pct.X * s.hbar.Handle().AvailableScrollSize())
		s.vbar.Handle().SetOffset(pct.Y * s.vbar.Handle().AvailableScrollSize())
	}
	s.updateScrollBarPositions()
}

func nonZero(v float32) float32 {
	if v > 0 {
		return v
	}
	return 1
}

// AddOffset scrolls by delta.
func (s *ScrollableContainer) AddOffset(delta geom.Vector2) {
	s.SetOffset(s.Offset().Add(delta), true)
}

// ScrollIntoView scrolls so that item's origin sits at the viewport origin,
// clamped as usual.
func (s *ScrollableContainer) ScrollIntoView(item Control) {
	offset := item.Base().AbsolutePosition().Sub(s.AbsolutePosition())
	s.SetOffset(offset, true)
}

// TranslatedBounds is the viewport in window coordinates.
func (s *ScrollableContainer) TranslatedBounds() geom.Rect {
	return geom.RectFrom(s.AbsolutePosition().Sub(s.Position()), s.Size())
}

func (s *ScrollableContainer) startStepping(step geom.Vector2) {
	s.step = step
	s.AddOffset(step)
	if s.timer == nil {
		s.timer = s.window.CreateTimer(scrollRepeatDelay, true, func() {
			if s.initialScroll {
				s.initialScroll = false
				s.timer.SetInterval(scrollRepeatDelay)
			}
			s.AddOffset(s.step)
		})
	}
	s.timer.SetInterval(scrollInitialDelay)
	s.timer.Start()
}

func (s *ScrollableContainer) stopStepping() {
	s.initialScroll = true
	if s.timer != nil {
		s.timer.Stop()
	}
}

// ============================================================================
// Hooks
// ============================================================================

func (s *ScrollableContainer) Update() {
	s.contentSize = s.computeContentSize()
	s.updateScrollBarSizes()
	s.SetOffset(s.Offset(), true)
}

func (s *ScrollableContainer) OnResized() {
	s.Update()
}

func (s *ScrollableContainer) OnThemeLoaded() {
	s.Container.OnThemeLoaded()
	s.updateScrollBarSizes()
}

// ControlAt tests the visible bars first, then the content, but only inside
// the viewport.
func (s *ScrollableContainer) ControlAt(pos geom.Vector2) Control {
	for _, bar := range []*ScrollBar{s.vbar, s.hbar} {
		if bar.ShouldPaint() && bar.Contains(pos) {
			return bar.ControlAt(pos)
		}
	}
	if !s.TranslatedBounds().Contains(pos) {
		return nil
	}
	for i := len(s.controls) - 1; i >= 0; i-- {
		item := s.controls[i]
		if s.isScrollBar(item) {
			continue
		}
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

// OnMouseWheel scrolls by the negated delta times the scroll speed.
func (s *ScrollableContainer) OnMouseWheel(delta geom.Vector2) {
	s.AddOffset(delta.Neg().Mul(s.scrollSpeed))
}

func (s *ScrollableContainer) OnPaint(p Painter) {
	p.PushClip(s.TranslatedBounds())
	for _, item := range s.controls {
		if !s.isScrollBar(item) {
			item.OnPaint(p)
		}
	}
	p.PopClip()

	for _, bar := range []*ScrollBar{s.hbar, s.vbar} {
		if bar.ShouldPaint() {
			bar.OnPaint(p)
		}
	}
}

func (s *ScrollableContainer) OnLoad(v *doc.Value) {
	s.Container.OnLoad(v)
	s.infinite = v.Get("Infinite").Boolean(s.infinite)
	if speed := v.Get("ScrollSpeed").FloatSlice(); len(speed) >= 2 {
		s.scrollSpeed = geom.Vec(speed[0], speed[1])
	}
	s.hbar.SetEnabled(v.Get("HorizontalScrollBar").Boolean(true))
	s.vbar.SetEnabled(v.Get("VerticalScrollBar").Boolean(true))
	s.SetExpand(ExpandBoth)
}

func (s *ScrollableContainer) OnSave(v *doc.Value) {
	s.Node.OnSave(v)
	s.saveControls(v, s.content())
	v.Set("ContentSize", doc.Floats(s.contentSize.X, s.contentSize.Y))
	off := s.Offset()
	v.Set("Offset", doc.Floats(off.X, off.Y))
	v.Set("Infinite", doc.Bool(s.infinite))
}
