package retained

import (
	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/theme"
)

// ============================================================================
// ScrollBarHandle
// ============================================================================

// ScrollBarHandle is the track of a scroll bar. Its bounds cover the whole
// track; the draggable thumb is the HandleBounds sub-rectangle.
type ScrollBarHandle struct {
	Node

	bar         *ScrollBar
	orientation Orientation
	handleSize  float32
	offset      float32
	hovered     bool
	drag        bool
	anchor      geom.Vector2
	onDrag      func(bar *ScrollBar)
}

func newScrollBarHandle(w *Window, bar *ScrollBar, o Orientation) *ScrollBarHandle {
	h := &ScrollBarHandle{bar: bar, orientation: o}
	h.init(h, w)
	return h
}

func (h *ScrollBarHandle) TypeName() string { return "ScrollBarHandle" }

func (h *ScrollBarHandle) Orientation() Orientation { return h.orientation }

func (h *ScrollBarHandle) trackLength() float32 {
	if h.orientation == Horizontal {
		return h.Size().X
	}
	return h.Size().Y
}

// SetHandleSize sets the thumb length. Zero removes the thumb; any other
// value is raised to ScrollBar_HandleMinSize.
func (h *ScrollBarHandle) SetHandleSize(size float32) {
	h.handleSize = 0
	if size != 0 {
		h.handleSize = max(h.Property(theme.ScrollBarHandleMinSize).Float(), size)
		h.clampOffset()
	}
}

func (h *ScrollBarHandle) HandleSize() float32 { return h.handleSize }
func (h *ScrollBarHandle) HasHandle() bool     { return h.handleSize > 0 }
func (h *ScrollBarHandle) Offset() float32     { return h.offset }
func (h *ScrollBarHandle) IsDragging() bool    { return h.drag }

// AvailableScrollSize is how far the thumb can travel.
func (h *ScrollBarHandle) AvailableScrollSize() float32 {
	return max(0, h.trackLength()-h.handleSize)
}

func (h *ScrollBarHandle) SetOffset(offset float32) {
	if h.offset == offset {
		return
	}
	h.offset = offset
	h.clampOffset()
	h.Invalidate(InvalidatePaint)
}

// OffsetPct is the thumb position as a fraction of its travel.
func (h *ScrollBarHandle) OffsetPct() float32 {
	if h.handleSize <= 0 {
		return 0
	}
	travel := h.trackLength() - h.handleSize
	if travel <= 0 {
		return 0
	}
	return h.offset / travel
}

func (h *ScrollBarHandle) clampOffset() {
	length := h.trackLength()
	if length <= 0 {
		h.offset = 0
		return
	}
	h.offset = min(max(h.offset, 0), length-h.handleSize)
}

// HandleBounds returns the thumb in window coordinates.
func (h *ScrollBarHandle) HandleBounds() geom.Rect {
	pos := h.AbsolutePosition()
	size := h.Size()
	if h.orientation == Horizontal {
		return geom.RectFrom(pos.Add(geom.Vec(h.offset, 0)), geom.Vec(h.handleSize, size.Y))
	}
	return geom.RectFrom(pos.Add(geom.Vec(0, h.offset)), geom.Vec(size.X, h.handleSize))
}

func (h *ScrollBarHandle) SetOnDrag(fn func(bar *ScrollBar)) { h.onDrag = fn }

func (h *ScrollBarHandle) OnPaint(p Painter) {
	if h.handleSize <= 0 {
		return
	}
	color := h.Property(theme.ScrollBarHandle).Color()
	if h.hovered || h.drag {
		color = h.Property(theme.ScrollBarHandleHovered).Color()
	}
	p.Rectangle(h.HandleBounds(), color)
}

func (h *ScrollBarHandle) OnMouseMove(pos geom.Vector2) {
	hovered := h.HandleBounds().Contains(pos)
	if hovered != h.hovered {
		h.hovered = hovered
		h.Invalidate(InvalidatePaint)
	}
	if !h.drag {
		return
	}
	offset := h.offset
	if h.orientation == Horizontal {
		offset += pos.X - h.anchor.X
	} else {
		offset += pos.Y - h.anchor.Y
	}
	h.anchor = pos
	h.SetOffset(offset)
	if h.onDrag != nil {
		h.onDrag(h.bar)
	}
}

func (h *ScrollBarHandle) OnMousePressed(pos geom.Vector2, button MouseButton, count ClickCount) bool {
	if h.hovered && button == MouseButtonLeft {
		h.drag = true
		h.anchor = pos
		return true
	}
	return false
}

func (h *ScrollBarHandle) OnMouseReleased(pos geom.Vector2, button MouseButton) {
	if button != MouseButtonLeft {
		return
	}
	if !h.Contains(pos) {
		h.Invalidate(InvalidatePaint)
	}
	h.drag = false
}

func (h *ScrollBarHandle) OnMouseLeave() {
	h.hovered = false
	if !h.drag {
		h.Invalidate(InvalidatePaint)
	}
}

func (h *ScrollBarHandle) OnSave(v *doc.Value) {
	h.Node.OnSave(v)
	v.Set("Orientation", doc.String(h.orientation.String()))
	v.Set("HandleSize", doc.Number(float64(h.handleSize)))
	v.Set("Offset", doc.Number(float64(h.offset)))
}

// ============================================================================
// ScrollBar
// ============================================================================

// ScrollBar holds a handle and, when the theme asks for them, step buttons
// at each end of the track.
type ScrollBar struct {
	Container

	handle      *ScrollBarHandle
	minButton   *Button
	maxButton   *Button
	alwaysPaint bool
	buttons     bool
	enabled     bool

	onScrollMin func(bar *ScrollBar)
	onScrollMax func(bar *ScrollBar)
	onRelease   func(bar *ScrollBar)
}

func NewScrollBar(w *Window, o Orientation) *ScrollBar {
	s := &ScrollBar{enabled: true}
	s.initContainer(s, w)
	s.handle = newScrollBarHandle(w, s, o)
	s.AddControl(s.handle)
	return s
}

func (s *ScrollBar) TypeName() string { return "ScrollBar" }

func (s *ScrollBar) Handle() *ScrollBarHandle { return s.handle }
func (s *ScrollBar) Orientation() Orientation { return s.handle.orientation }

// Thickness is the themed cross-axis size of a bar.
func (s *ScrollBar) Thickness() float32 {
	return s.Property(theme.ScrollBarSize).Float()
}

// SetScrollBarSize sizes the bar and its track, leaving room for the step
// buttons when present.
func (s *ScrollBar) SetScrollBarSize(size geom.Vector2) {
	s.SetSize(size)
	track := size
	thickness := s.Thickness()
	if s.buttons {
		if s.Orientation() == Horizontal {
			track.X -= thickness * 2
			s.handle.SetPosition(geom.Vec(thickness, 0))
			if s.maxButton != nil {
				s.maxButton.SetPosition(geom.Vec(track.X+thickness, 0))
			}
		} else {
			track.Y -= thickness * 2
			s.handle.SetPosition(geom.Vec(0, thickness))
			if s.maxButton != nil {
				s.maxButton.SetPosition(geom.Vec(0, track.Y+thickness))
			}
		}
	} else {
		s.handle.SetPosition(geom.Vector2{})
	}
	s.handle.SetSize(track.Max(geom.Vector2{}))
}

// ScrollBarSize is the size of the track.
func (s *ScrollBar) ScrollBarSize() geom.Vector2 { return s.handle.Size() }

func (s *ScrollBar) AlwaysPaint() bool      { return s.alwaysPaint }
func (s *ScrollBar) SetAlwaysPaint(on bool) { s.alwaysPaint = on }
func (s *ScrollBar) Enabled() bool          { return s.enabled }
func (s *ScrollBar) SetEnabled(on bool)     { s.enabled = on }
func (s *ScrollBar) HasButtons() bool       { return s.buttons }

// ShouldPaint reports whether the bar is visible and hit-testable.
func (s *ScrollBar) ShouldPaint() bool {
	return (s.alwaysPaint || s.handle.HasHandle()) && s.enabled
}

func (s *ScrollBar) SetOnScrollMin(fn func(bar *ScrollBar)) { s.onScrollMin = fn }
func (s *ScrollBar) SetOnScrollMax(fn func(bar *ScrollBar)) { s.onScrollMax = fn }
func (s *ScrollBar) SetOnRelease(fn func(bar *ScrollBar))   { s.onRelease = fn }

// Update disables the step buttons while there is nothing to scroll.
func (s *ScrollBar) Update() {
	has := s.handle.HasHandle()
	for _, b := range []*Button{s.minButton, s.maxButton} {
		if b != nil && b.IsDisabled() == has {
			b.SetDisabled(!has)
		}
	}
}

func (s *ScrollBar) OnPaint(p Painter) {
	p.Rectangle(s.handle.AbsoluteBounds(), s.Property(theme.ScrollBar).Color())
	s.Container.OnPaint(p)
}

// OnThemeLoaded reads AlwaysPaint and Buttons and creates or removes the
// step buttons to match.
func (s *ScrollBar) OnThemeLoaded() {
	s.Container.OnThemeLoaded()
	s.alwaysPaint = s.Property(theme.ScrollBarAlwaysPaint).Bool()
	s.buttons = s.Property(theme.ScrollBarButtons).Bool()

	if !s.buttons {
		for _, b := range []*Button{s.minButton, s.maxButton} {
			if b != nil {
				s.RemoveControl(b)
			}
		}
		s.minButton, s.maxButton = nil, nil
		s.SetScrollBarSize(s.Size())
		return
	}

	thickness := s.Thickness()
	if s.minButton == nil {
		s.minButton = s.newStepButton(func() {
			if s.onScrollMin != nil {
				s.onScrollMin(s)
			}
		})
	}
	if s.maxButton == nil {
		s.maxButton = s.newStepButton(func() {
			if s.onScrollMax != nil {
				s.onScrollMax(s)
			}
		})
	}
	s.minButton.SetSize(geom.Vec(thickness, thickness))
	s.maxButton.SetSize(geom.Vec(thickness, thickness))
	s.SetScrollBarSize(s.Size())
}

func (s *ScrollBar) newStepButton(pressed func()) *Button {
	b := NewButton(s.window)
	b.SetOnPressed(func(*Button) { pressed() })
	b.SetOnReleased(func(*Button) {
		if s.onRelease != nil {
			s.onRelease(s)
		}
	})
	s.AddControl(b)
	return b
}

func (s *ScrollBar) OnSave(v *doc.Value) {
	s.Node.OnSave(v)
	v.Set("AlwaysPaint", doc.Bool(s.alwaysPaint))
	v.Set("Buttons", doc.Bool(s.buttons))
	v.Set("Enabled", doc.Bool(s.enabled))
}
