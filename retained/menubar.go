package retained

import (
	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/theme"
)

// ============================================================================
// MenuItem
// ============================================================================

const (
	// menuItemInset pads a label on both sides.
	menuItemInset = 6
	// menuCheckColumn is the room reserved left of labels inside a menu.
	menuCheckColumn = 18
)

// MenuItem is one selectable label. In the menu bar it opens its menu when
// pressed; inside a menu it either opens its submenu on hover or fires its
// callback and closes the popup.
type MenuItem struct {
	Node

	label    string
	inBar    bool
	hovered  bool
	selected bool
	checked  bool
	menu     *Menu

	onHovered  func(item *MenuItem)
	onPressed  func(item *MenuItem)
	onSelected func()
}

func newMenuItem(w *Window, label string, inBar bool) *MenuItem {
	m := &MenuItem{label: label, inBar: inBar}
	m.init(m, w)
	m.updateSize()
	return m
}

func (m *MenuItem) TypeName() string { return "MenuItem" }

func (m *MenuItem) Label() string    { return m.label }
func (m *MenuItem) IsSelected() bool { return m.selected }
func (m *MenuItem) IsChecked() bool  { return m.checked }

// Menu returns the item's submenu, nil when it has none.
func (m *MenuItem) Menu() *Menu { return m.menu }

// CreateMenu returns the submenu, creating it on first use.
func (m *MenuItem) CreateMenu() *Menu {
	if m.menu == nil {
		m.menu = newMenu(m.window, m)
	}
	return m.menu
}

func (m *MenuItem) SetChecked(on bool) {
	m.checked = on
	m.Invalidate(InvalidatePaint)
}

func (m *MenuItem) setSelected(on bool) {
	if m.selected == on {
		return
	}
	m.selected = on
	m.Invalidate(InvalidatePaint)
}

// naturalWidth is the width the label needs before any expansion.
func (m *MenuItem) naturalWidth() float32 {
	width := m.Face().Measure(m.label).X + menuItemInset*2
	if !m.inBar {
		width += menuCheckColumn
	}
	return width
}

func (m *MenuItem) updateSize() {
	height := m.Face().Size()
	if m.inBar {
		height += m.Property(theme.MenuBarPadding).Vector().Y * 2
	}
	m.SetSize(geom.Vec(m.naturalWidth(), height))
}

func (m *MenuItem) OnThemeLoaded() { m.updateSize() }

func (m *MenuItem) OnMouseEnter() {
	m.hovered = true
	if m.onHovered != nil {
		m.onHovered(m)
	}
	m.Invalidate(InvalidatePaint)
}

func (m *MenuItem) OnMouseLeave() {
	m.hovered = false
	m.Invalidate(InvalidatePaint)
}

func (m *MenuItem) OnMousePressed(pos geom.Vector2, button MouseButton, count ClickCount) bool {
	if m.onPressed != nil {
		m.onPressed(m)
	}
	if m.menu == nil && !m.inBar {
		m.window.ClosePopup()
	}
	return true
}

func (m *MenuItem) OnPaint(p Painter) {
	bounds := m.AbsoluteBounds()
	if m.hovered || m.selected {
		p.Rectangle(bounds, m.Property(theme.SelectableHovered).Color())
	}
	face := m.Face()
	color := m.Property(theme.Text).Color()
	x := bounds.Min.X + menuItemInset
	if !m.inBar {
		x += menuCheckColumn
	}
	y := bounds.Min.Y + float32(int((bounds.Height()-face.Size())/2))
	p.Text(face, geom.Vec(x, y), m.label, color)

	mid := bounds.Min.Y + bounds.Height()/2
	if m.checked {
		check := m.Property(theme.Check).Color()
		left := bounds.Min.X + menuItemInset
		p.Line(geom.Vec(left, mid), geom.Vec(left+3, mid+3), check, 1)
		p.Line(geom.Vec(left+3, mid+3), geom.Vec(left+9, mid-4), check, 1)
	}
	if m.menu != nil && !m.inBar {
		right := bounds.Max.X - menuItemInset
		p.Line(geom.Vec(right-4, mid-4), geom.Vec(right, mid), color, 1)
		p.Line(geom.Vec(right, mid), geom.Vec(right-4, mid+4), color, 1)
	}
}

// OnLoad reads ID and Checked, and builds a submenu from Items.
func (m *MenuItem) OnLoad(v *doc.Value) {
	m.id = v.Get("ID").Str(m.id)
	m.checked = v.Get("Checked").Boolean(m.checked)
	if items := v.Get("Items"); items.IsArray() {
		m.CreateMenu().loadItems(items)
	}
}

func (m *MenuItem) OnSave(v *doc.Value) {
	v.Set("Text", doc.String(m.label))
	if m.id != "" {
		v.Set("ID", doc.String(m.id))
	}
	if m.checked {
		v.Set("Checked", doc.Bool(true))
	}
	if m.menu != nil {
		v.Set("Items", m.menu.saveItems())
	}
}

// ============================================================================
// Menu
// ============================================================================

// Menu is a popup list of items. It floats above the tree: it has no parent
// while shown and takes its IDs from the item that owns it.
type Menu struct {
	Container

	owner *MenuItem
	panel *Panel
	list  *BoxContainer
	items []*MenuItem
	open  *Menu
}

func newMenu(w *Window, owner *MenuItem) *Menu {
	m := &Menu{owner: owner}
	m.initContainer(m, w)

	m.panel = NewPanel(w)
	m.panel.SetExpand(ExpandBoth)
	m.AddControl(m.panel)

	m.list = NewVerticalBox(w)
	m.list.SetSpacing(geom.Vector2{})
	m.list.SetExpand(ExpandWidth)
	m.AddControl(m.list)
	return m
}

func (m *Menu) TypeName() string { return "Menu" }

func (m *Menu) idOwner() Control {
	if m.owner == nil {
		return nil
	}
	return m.owner
}

// Items returns the menu's items in order.
func (m *Menu) Items() []*MenuItem { return m.items }

// AddItem appends an item that runs fn when chosen.
func (m *Menu) AddItem(label string, fn func()) *MenuItem {
	item := newMenuItem(m.window, label, false)
	item.SetExpand(ExpandWidth)
	item.onSelected = fn
	item.onHovered = m.itemHovered
	item.onPressed = m.itemPressed
	m.list.AddControl(item)
	m.items = append(m.items, item)
	return item
}

// AddSeparator appends a divider. Hovering it closes any open submenu.
func (m *Menu) AddSeparator() *Separator {
	sep := NewSeparator(m.window, Horizontal)
	sep.SetOnHover(func(*Separator) { m.closeSubmenu() })
	m.list.AddControl(sep)
	return sep
}

// Item finds the item labelled label.
func (m *Menu) Item(label string) *MenuItem {
	for _, item := range m.items {
		if item.label == label {
			return item
		}
	}
	return nil
}

// Resize fits the menu to its items.
func (m *Menu) Resize() {
	margins := m.Property(theme.MenuMargins).Vector()
	rightPadding := m.Property(theme.MenuRightPadding).Float()

	width := rightPadding
	height := margins.Y * 2
	for _, item := range m.list.Controls() {
		w := item.Base().Size().X
		if mi, ok := item.(*MenuItem); ok {
			w = mi.naturalWidth()
		}
		width = max(width, w+rightPadding)
		height += item.Base().Size().Y
	}
	m.list.SetPosition(margins)
	m.SetSize(geom.Vec(width+margins.X*2, height))
}

// Close hides any open submenu and clears item selection.
func (m *Menu) Close() {
	m.closeSubmenu()
	for _, item := range m.items {
		item.setSelected(false)
	}
}

func (m *Menu) closeSubmenu() {
	if m.open == nil {
		return
	}
	m.open.Close()
	m.open.owner.setSelected(false)
	m.RemoveControl(m.open)
	m.open = nil
}

func (m *Menu) itemHovered(item *MenuItem) {
	if m.open != nil && item.menu == m.open {
		return
	}
	m.closeSubmenu()
	if item.menu == nil {
		return
	}
	sub := item.menu
	item.setSelected(true)
	sub.SetPosition(m.list.Position().Add(item.Position()).Add(geom.Vec(m.Size().X, 0)))
	sub.Resize()
	m.AddControl(sub)
	m.open = sub
}

func (m *Menu) itemPressed(item *MenuItem) {
	if item.menu == nil && item.onSelected != nil {
		item.onSelected()
	}
}

// menuItems appends every item of m and its submenus, depth first.
func (m *Menu) menuItems(out []*MenuItem) []*MenuItem {
	for _, item := range m.items {
		out = append(out, item)
		if item.menu != nil {
			out = item.menu.menuItems(out)
		}
	}
	return out
}

// loadItems adds an entry per element. Entries with a Type are created
// through the factory; the rest are items.
func (m *Menu) loadItems(list *doc.Value) {
	for _, entry := range list.Items() {
		if typ := entry.Get("Type").Str(""); typ != "" {
			ctl := CreateControl(typ, m.window)
			if ctl == nil {
				debugLog("unknown menu entry type", "type", typ)
				continue
			}
			m.list.AddControl(ctl)
			ctl.OnLoad(entry)
			continue
		}
		m.AddItem(entry.Get("Text").Str(""), nil).OnLoad(entry)
	}
}

func (m *Menu) saveItems() *doc.Value {
	list := doc.NewArray()
	for _, ch := range m.list.Controls() {
		entry := doc.NewObject()
		ch.OnSave(entry)
		list.Append(entry)
	}
	return list
}

// ============================================================================
// MenuBar
// ============================================================================

// MenuBar is the strip of top-level items above the window body. It is zero
// height until it holds an item.
type MenuBar struct {
	Container

	panel  *Panel
	strip  *BoxContainer
	items  []*MenuItem
	opened *MenuItem
}

func NewMenuBar(w *Window) *MenuBar {
	b := &MenuBar{}
	b.initContainer(b, w)
	b.SetExpand(ExpandWidth)

	b.panel = NewPanel(w)
	b.panel.SetExpand(ExpandBoth)
	b.AddControl(b.panel)

	b.strip = NewHorizontalBox(w)
	b.strip.SetSpacing(geom.Vector2{})
	b.strip.SetExpand(ExpandBoth)
	b.AddControl(b.strip)
	return b
}

func (b *MenuBar) TypeName() string { return "MenuBar" }

// AddItem appends a top-level item and returns its menu.
func (b *MenuBar) AddItem(label string) *Menu {
	item := newMenuItem(b.window, label, true)
	item.SetExpand(ExpandHeight)
	item.onHovered = b.itemHovered
	item.onPressed = b.itemPressed
	b.strip.AddControl(item)
	b.items = append(b.items, item)
	b.Invalidate(InvalidateLayout)
	return item.CreateMenu()
}

// Item returns the menu of the top-level item labelled label.
func (b *MenuBar) Item(label string) *Menu {
	for _, item := range b.items {
		if item.label == label {
			return item.menu
		}
	}
	return nil
}

// MenuItems returns the top-level items.
func (b *MenuBar) MenuItems() []*MenuItem { return b.items }

// AllMenuItems returns every item in the bar and its menus, depth first.
func (b *MenuBar) AllMenuItems() []*MenuItem {
	var out []*MenuItem
	for _, item := range b.items {
		out = append(out, item)
		if item.menu != nil {
			out = item.menu.menuItems(out)
		}
	}
	return out
}

// ClearMenuItems removes every item and collapses the bar.
func (b *MenuBar) ClearMenuItems() {
	if b.opened != nil {
		b.window.ClosePopup()
	}
	b.strip.ClearControls()
	b.items = nil
	b.Invalidate(InvalidateBoth)
}

// IsOpen reports whether one of the bar's menus is showing.
func (b *MenuBar) IsOpen() bool { return b.opened != nil }

// DesiredSize is the tallest item, zero with no items.
func (b *MenuBar) DesiredSize() geom.Vector2 {
	var height float32
	for _, item := range b.items {
		height = max(height, item.Size().Y)
	}
	return geom.Vec(0, height)
}

func (b *MenuBar) itemHovered(item *MenuItem) {
	if b.opened != nil {
		b.open(item)
	}
}

func (b *MenuBar) itemPressed(item *MenuItem) {
	if item.menu != nil && b.window.Popup().Container() == Composite(item.menu) {
		b.window.ClosePopup()
		return
	}
	b.open(item)
}

// open shows item's menu below it, replacing any menu already open.
func (b *MenuBar) open(item *MenuItem) {
	if b.opened == item {
		return
	}
	if item.menu == nil {
		return
	}
	menu := item.menu
	menu.SetPosition(item.AbsolutePosition().Add(geom.Vec(0, b.Size().Y)))
	menu.Resize()
	b.window.SetPopup(menu, func(*Window, Composite) { b.closed(item) }, false)
	// SetPopup closes the previous menu first, which clears opened.
	item.setSelected(true)
	b.opened = item
	b.Invalidate(InvalidatePaint)
}

func (b *MenuBar) closed(item *MenuItem) {
	item.setSelected(false)
	if item.menu != nil {
		item.menu.Close()
	}
	if b.opened == item {
		b.opened = nil
	}
}

func (b *MenuBar) OnThemeLoaded() {
	b.Container.OnThemeLoaded()
	for _, item := range b.AllMenuItems() {
		if item.menu != nil {
			item.menu.OnThemeLoaded()
		}
	}
}

// OnLoad reads Items: each entry has Text, an optional ID and optional
// nested Items.
func (b *MenuBar) OnLoad(v *doc.Value) {
	b.Node.OnLoad(v)
	for _, entry := range v.Get("Items").Items() {
		b.AddItem(entry.Get("Text").Str(""))
		b.items[len(b.items)-1].OnLoad(entry)
	}
	b.SetExpand(ExpandWidth)
}

func (b *MenuBar) OnSave(v *doc.Value) {
	b.Node.OnSave(v)
	list := doc.NewArray()
	for _, item := range b.items {
		entry := doc.NewObject()
		item.OnSave(entry)
		list.Append(entry)
	}
	v.Set("Items", list)
}
