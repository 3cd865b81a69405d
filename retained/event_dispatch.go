package retained

import (
	"time"

	"github.com/agiangrant/trellis/geom"
)

// ============================================================================
// Input routing
// ============================================================================
//
// The host delivers normalized input to the window between frames. Pointer
// events go to the hovered control; a press that is handled moves the focus
// there. Keyboard and text go to the focus and bubble through key-forwarding
// parents.

const (
	// multiClickTime is the longest gap between presses counted as one
	// double or triple click.
	multiClickTime = 500 * time.Millisecond
	// multiClickDist is the farthest the pointer may travel between them.
	multiClickDist = float32(5)
)

type clickTracker struct {
	last   time.Time
	pos    geom.Vector2
	button MouseButton
	count  ClickCount
}

// next returns the click count for a press at pos, cycling single, double,
// triple.
func (c *clickTracker) next(now time.Time, pos geom.Vector2, button MouseButton) ClickCount {
	d := pos.Sub(c.pos)
	near := d.X*d.X+d.Y*d.Y <= multiClickDist*multiClickDist
	if c.count > 0 && c.count < ClickTriple && button == c.button && near && now.Sub(c.last) <= multiClickTime {
		c.count++
	} else {
		c.count = ClickSingle
	}
	c.last = now
	c.pos = pos
	c.button = button
	return c.count
}

// hitTest resolves the control under pos. A modal popup hides the tree;
// a non-modal popup takes priority only where it is hit.
func (w *Window) hitTest(pos geom.Vector2) Control {
	if hit := w.popup.ControlAt(pos); hit != nil {
		return hit
	}
	if w.popup.IsModal() {
		return nil
	}
	return w.root.ControlAt(pos)
}

// OnMouseMove updates the hover target and forwards the move to it, and to
// the focus when that differs so drags continue outside the focused control.
func (w *Window) OnMouseMove(pos geom.Vector2) {
	w.mousePos = pos
	hit := w.hitTest(pos)
	if hit != w.hovered {
		if w.hovered != nil {
			w.hovered.OnMouseLeave()
		}
		w.hovered = hit
		if hit != nil {
			hit.OnMouseEnter()
		}
	}
	if w.hovered != nil {
		w.hovered.OnMouseMove(pos)
	}
	if w.focus != nil && w.focus != w.hovered {
		w.focus.OnMouseMove(pos)
	}
}

// OnMousePressed sends the press to the hover target. When it is handled the
// target takes focus; otherwise focus is cleared. A count of zero lets the
// window derive single, double and triple clicks from its clock.
func (w *Window) OnMousePressed(pos geom.Vector2, button MouseButton, count ClickCount) {
	if count == 0 {
		count = w.clicks.next(w.clock.Now(), pos, button)
	}
	w.mousePos = pos
	if w.hovered != nil && w.hovered.OnMousePressed(pos, button, count) {
		w.UpdateFocus(w.hovered)
		return
	}
	w.UpdateFocus(nil)
}

// OnMouseReleased sends the release to the hover target and to the focus, so
// a drag ends wherever the pointer is.
func (w *Window) OnMouseReleased(pos geom.Vector2, button MouseButton) {
	w.mousePos = pos
	if w.hovered != nil && w.hovered != w.focus {
		w.hovered.OnMouseReleased(pos, button)
	}
	if w.focus != nil {
		w.focus.OnMouseReleased(pos, button)
	}
}

func (w *Window) OnMouseWheel(delta geom.Vector2) {
	if w.hovered != nil {
		w.hovered.OnMouseWheel(delta)
	}
}

// OnMouseLeave runs when the pointer leaves the window.
func (w *Window) OnMouseLeave() {
	if w.hovered != nil {
		w.hovered.OnMouseLeave()
		w.hovered = nil
	}
}

// OnKeyPressed records the key and sends it to the focus. It reports
// whether any control consumed it.
func (w *Window) OnKeyPressed(key Key) bool {
	if key == KeyNone {
		return false
	}
	w.keys[key] = true
	if w.focus == nil {
		return false
	}
	return w.focus.OnKeyPressed(key)
}

func (w *Window) OnKeyReleased(key Key) bool {
	if key == KeyNone {
		return false
	}
	delete(w.keys, key)
	if w.focus == nil {
		return false
	}
	return w.focus.OnKeyReleased(key)
}

// OnText delivers a typed character to the focus.
func (w *Window) OnText(r rune) {
	if w.focus != nil {
		w.focus.OnText(r)
	}
}

// UpdateFocus moves keyboard focus to c, which may be nil. Focus outside the
// open popup closes it.
func (w *Window) UpdateFocus(c Control) {
	if c != w.focus {
		old := w.focus
		w.focus = c
		if old != nil {
			old.OnUnfocused()
		}
		if c != nil {
			c.OnFocused()
		}
		debugLog("focus", "window", w.title, "from", controlName(old), "to", controlName(c))
	}
	if w.popup.IsOpen() && (c == nil || !w.popup.HasControl(c)) {
		w.popup.Close()
	}
}

func controlName(c Control) string {
	if c == nil {
		return ""
	}
	if id := c.Base().FullID(); id != "" {
		return c.TypeName() + "#" + id
	}
	return c.TypeName()
}

func (w *Window) Hovered() Control            { return w.hovered }
func (w *Window) Focus() Control              { return w.focus }
func (w *Window) MousePosition() geom.Vector2 { return w.mousePos }

// IsKeyPressed reports whether key is held.
func (w *Window) IsKeyPressed(key Key) bool { return w.keys[key] }

// Modifiers reports which modifier keys are held, either side counting.
func (w *Window) Modifiers() Modifiers {
	var m Modifiers
	if w.keys[KeyLeftShift] || w.keys[KeyRightShift] {
		m |= ModShift
	}
	if w.keys[KeyLeftControl] || w.keys[KeyRightControl] {
		m |= ModCtrl
	}
	if w.keys[KeyLeftAlt] || w.keys[KeyRightAlt] {
		m |= ModAlt
	}
	if w.keys[KeyLeftSuper] || w.keys[KeyRightSuper] {
		m |= ModSuper
	}
	return m
}
