package retained

import "github.com/agiangrant/trellis/geom"

// ============================================================================
// TitleBar
// ============================================================================

// TitleBar is the optional strip above the menu bar for hosts that draw no
// decorations of their own: the window title on the left and a close button
// on the right. Everything but the button counts as the drag area.
type TitleBar struct {
	Container

	panel *Panel
	strip *BoxContainer
	title *Text
	close *TextButton
}

func NewTitleBar(w *Window) *TitleBar {
	b := &TitleBar{}
	b.initContainer(b, w)
	b.SetExpand(ExpandWidth)

	b.panel = NewPanel(w)
	b.panel.SetExpand(ExpandBoth)
	b.AddControl(b.panel)

	b.strip = NewHorizontalBox(w)
	b.strip.SetSpacing(geom.Vector2{})
	b.strip.SetExpand(ExpandBoth)
	b.AddControl(b.strip)

	label := NewVerticalBox(w)
	label.SetGrow(GrowCenter)
	label.SetExpand(ExpandHeight)
	b.title = NewText(w, "")
	label.AddControl(b.title)
	b.strip.AddControl(label)

	fill := NewSpacer(w, geom.Vector2{})
	fill.SetExpand(ExpandWidth)
	b.strip.AddControl(fill)

	b.close = NewTextButton(w, "x")
	b.close.SetExpand(ExpandHeight)
	b.close.SetOnClicked(func(*Button) {
		if b.window != nil {
			b.window.Close()
		}
	})
	b.strip.AddControl(b.close)
	return b
}

func (b *TitleBar) TypeName() string { return "TitleBar" }

func (b *TitleBar) Title() string            { return b.title.Text() }
func (b *TitleBar) CloseButton() *TextButton { return b.close }
func (b *TitleBar) SetTitle(title string)    { b.title.SetText(title) }

// IsDraggable reports whether pos lies in the drag area.
func (b *TitleBar) IsDraggable(pos geom.Vector2) bool {
	return b.Contains(pos) && !b.close.Contains(pos)
}

// DesiredSize is as tall as the taller of the title and the close button.
func (b *TitleBar) DesiredSize() geom.Vector2 {
	return geom.Vec(0, max(b.title.Size().Y, b.close.Size().Y))
}
