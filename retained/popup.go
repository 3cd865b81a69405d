package retained

import "github.com/agiangrant/trellis/geom"

// PopupState tracks the lifetime of the window's popup.
type PopupState uint8

const (
	PopupNone PopupState = iota
	// PopupOpening lasts until the next window update so that the press
	// which opened the popup cannot also close it.
	PopupOpening
	PopupOpened
)

func (s PopupState) String() string {
	switch s {
	case PopupOpening:
		return "Opening"
	case PopupOpened:
		return "Opened"
	}
	return "None"
}

// Popup holds at most one floating composite drawn above the window tree.
type Popup struct {
	container    Composite
	modal        bool
	state        PopupState
	onInvalidate InvalidateFunc
	onClose      func(c Composite)
}

// Open shows c. Opening a different composite first closes the current one,
// running the close callback even if it is still opening. Opening the
// current composite again does nothing.
func (p *Popup) Open(c Composite, modal bool) {
	if c == p.container {
		return
	}
	if p.container != nil {
		p.forceClose()
	}
	if c == nil {
		return
	}
	p.container = c
	p.modal = modal
	p.state = PopupOpening
	c.Base().SetOnInvalidate(p.onInvalidate)
}

// Close hides the popup unless it is still opening.
func (p *Popup) Close() {
	if p.state == PopupOpening || p.container == nil {
		return
	}
	p.forceClose()
}

func (p *Popup) forceClose() {
	c := p.container
	c.Base().SetOnInvalidate(nil)
	p.container = nil
	p.modal = false
	p.state = PopupNone
	if p.onClose != nil {
		p.onClose(c)
	}
}

// Update completes an opening transition.
func (p *Popup) Update() {
	if p.container != nil && p.state == PopupOpening {
		p.state = PopupOpened
	}
}

func (p *Popup) State() PopupState    { return p.state }
func (p *Popup) Container() Composite { return p.container }
func (p *Popup) IsOpen() bool         { return p.container != nil }
func (p *Popup) IsModal() bool        { return p.container != nil && p.modal }

// HasControl reports whether c is the popup or anything inside it.
func (p *Popup) HasControl(c Control) bool {
	if p.container == nil || c == nil {
		return false
	}
	return c == Control(p.container) || p.container.ContainerBase().HasControlRecurse(c)
}

// ControlAt hit-tests the popup.
func (p *Popup) ControlAt(pos geom.Vector2) Control {
	if p.container == nil {
		return nil
	}
	return p.container.ControlAt(pos)
}

func (p *Popup) OnPaint(painter Painter) {
	if p.container != nil {
		p.container.OnPaint(painter)
	}
}
