package retained

import (
	"fmt"
	"strings"
)

// ============================================================================
// Input Types
// ============================================================================

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// ClickCount distinguishes single, double and triple presses.
type ClickCount uint8

const (
	ClickSingle ClickCount = iota + 1
	ClickDouble
	ClickTriple
)

// Modifiers is the set of held modifier keys. Window.Modifiers derives it
// from the key state.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// String joins the held modifiers with "+", as in "ctrl+shift".
func (m Modifiers) String() string {
	var parts []string
	for _, mod := range []struct {
		bit  Modifiers
		name string
	}{{ModCtrl, "ctrl"}, {ModAlt, "alt"}, {ModShift, "shift"}, {ModSuper, "super"}} {
		if m&mod.bit != 0 {
			parts = append(parts, mod.name)
		}
	}
	return strings.Join(parts, "+")
}

// Key is a platform independent key code. Printable input arrives through
// OnText, so only keys that drive navigation and editing are named here.
type Key uint16

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
)

var keyNames = map[Key]string{
	KeyNone:         "None",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeySpace:        "Space",
	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightAlt:     "RightAlt",
	KeyLeftSuper:    "LeftSuper",
	KeyRightSuper:   "RightSuper",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// Cursor is the mouse cursor shape a window asks its host to show.
type Cursor uint8

const (
	CursorArrow Cursor = iota
	CursorIBeam
	CursorSizeWE
	CursorSizeNS
	CursorHand
)

// FileFilter represents a file type filter for file dialogs.
type FileFilter struct {
	Name       string   // Display name (e.g., "Images")
	Extensions []string // File extensions without dots (e.g., []string{"png", "jpg", "jpeg"})
}

// ============================================================================
// Layout Enumerations
// ============================================================================

// InvalidateType says what a change affects.
type InvalidateType uint8

const (
	InvalidatePaint InvalidateType = iota
	InvalidateLayout
	InvalidateBoth
)

func (t InvalidateType) String() string {
	switch t {
	case InvalidatePaint:
		return "Paint"
	case InvalidateLayout:
		return "Layout"
	case InvalidateBoth:
		return "Both"
	}
	return fmt.Sprintf("InvalidateType(%d)", uint8(t))
}

// Expand says on which axes a control fills the space its parent offers.
type Expand uint8

const (
	ExpandNone Expand = iota
	ExpandWidth
	ExpandHeight
	ExpandBoth
)

func (e Expand) String() string {
	switch e {
	case ExpandWidth:
		return "Width"
	case ExpandHeight:
		return "Height"
	case ExpandBoth:
		return "Both"
	}
	return "None"
}

// Width reports whether e includes the horizontal axis.
func (e Expand) Width() bool { return e == ExpandWidth || e == ExpandBoth }

// Height reports whether e includes the vertical axis.
func (e Expand) Height() bool { return e == ExpandHeight || e == ExpandBoth }

// ParseExpand reads the document spelling of an Expand value.
func ParseExpand(s string) (Expand, bool) {
	switch s {
	case "None":
		return ExpandNone, true
	case "Width":
		return ExpandWidth, true
	case "Height":
		return ExpandHeight, true
	case "Both":
		return ExpandBoth, true
	}
	return ExpandNone, false
}

// Orientation is the axis children are stacked along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// ParseOrientation reads the document spelling of an Orientation.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "Horizontal":
		return Horizontal, true
	case "Vertical":
		return Vertical, true
	}
	return Horizontal, false
}
