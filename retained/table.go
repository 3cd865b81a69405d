package retained

import (
	"fmt"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/theme"
)

// ============================================================================
// Table
// ============================================================================
//
// A table is a vertical box holding a header splitter and a scrollable list
// of rows. The header's partitions are the columns: resizing one resizes
// the matching cell of every row. Pointer input over the rows goes to an
// invisible interaction layer that tracks the hovered and selected row.

// TableCell holds the controls of one column in one row. It keeps the width
// its column gives it and is as tall as its content.
type TableCell struct {
	Container
}

func newTableCell(w *Window) *TableCell {
	c := &TableCell{}
	c.initContainer(c, w)
	c.SetClip(true)
	return c
}

func (c *TableCell) TypeName() string { return "TableCell" }

func (c *TableCell) DesiredSize() geom.Vector2 {
	return geom.Vec(c.Size().X, c.ChildrenSize().Y)
}

// TableRow is one row of cells separated by gaps as wide as the header's
// separators.
type TableRow struct {
	BoxContainer

	cells []*TableCell
	gaps  []*Container
}

func newTableRow(w *Window) *TableRow {
	r := &TableRow{}
	r.orientation = Horizontal
	r.initContainer(r, w)
	r.SetExpand(ExpandWidth)
	return r
}

func (r *TableRow) TypeName() string { return "TableRow" }

func (r *TableRow) addCell() *TableCell {
	if len(r.cells) > 0 {
		gap := NewContainer(r.window)
		gap.SetExpand(ExpandHeight)
		r.gaps = append(r.gaps, gap)
		r.AddControl(gap)
	}
	cell := newTableCell(r.window)
	r.cells = append(r.cells, cell)
	r.AddControl(cell)
	return cell
}

// Columns returns the number of cells in the row.
func (r *TableRow) Columns() int { return len(r.cells) }

// Column returns cell i. Panics when i is out of range.
func (r *TableRow) Column(i int) *TableCell {
	if i < 0 || i >= len(r.cells) {
		panic(fmt.Sprintf("retained: table column %d out of range [0,%d)", i, len(r.cells)))
	}
	return r.cells[i]
}

func (r *TableRow) setCellSize(i int, width, gap float32) {
	cell := r.cells[i]
	cell.SetSize(geom.Vec(width, cell.ChildrenSize().Y))
	if i < len(r.gaps) {
		r.gaps[i].SetSize(geom.Vec(gap, 0))
	}
}

// tableInteraction sits above the rows and turns pointer and arrow-key
// input into row hover and selection.
type tableInteraction struct {
	Node

	table *Table
}

func (i *tableInteraction) TypeName() string { return "TableInteraction" }

func (i *tableInteraction) OnMouseMove(pos geom.Vector2) { i.table.hoverAt(pos) }
func (i *tableInteraction) OnMouseLeave()                { i.table.setHovered(-1) }

func (i *tableInteraction) OnMousePressed(pos geom.Vector2, button MouseButton, count ClickCount) bool {
	return i.table.pressAt(pos, button)
}

func (i *tableInteraction) OnMouseWheel(delta geom.Vector2) {
	i.table.rows.Scrollable().OnMouseWheel(delta)
}

func (i *tableInteraction) OnKeyPressed(key Key) bool {
	t := i.table
	switch key {
	case KeyUp:
		if t.selected > 0 {
			t.Select(t.selected - 1)
		}
		return true
	case KeyDown:
		if t.selected < t.Rows()-1 {
			t.Select(t.selected + 1)
		}
		return true
	}
	return i.Node.OnKeyPressed(key)
}

type Table struct {
	Container

	contents    *BoxContainer
	header      *Splitter
	labels      []string
	rows        *ScrollableView
	rowList     *BoxContainer
	interaction *tableInteraction

	rowSelectable bool
	hovered       int
	selected      int
	onSelected    func(t *Table, row int)
}

func NewTable(w *Window) *Table {
	t := &Table{rowSelectable: true, hovered: -1, selected: -1}
	t.initContainer(t, w)
	t.SetClip(true)

	t.contents = NewVerticalBox(w)
	t.contents.SetSpacing(geom.Vector2{})
	t.contents.SetExpand(ExpandBoth)
	t.AddControl(t.contents)

	t.header = NewSplitter(w)
	t.header.SetOrientation(Horizontal)
	t.header.SetFit(false)
	t.header.SetExpand(ExpandWidth)
	t.header.SetOnResized(func(*Splitter) { t.syncSize() })
	t.contents.AddControl(t.header)

	t.rows = NewScrollableView(w)
	t.contents.AddControl(t.rows)
	t.rowList = NewVerticalBox(w)
	t.rowList.SetSpacing(geom.Vector2{})
	t.rows.AddContent(t.rowList)
	t.rows.Scrollable().SetOnScroll(func(geom.Vector2) { t.alignHeader() })

	t.interaction = &tableInteraction{table: t}
	t.interaction.init(t.interaction, w)
	t.interaction.expand = ExpandBoth
	t.AddControl(t.interaction)
	return t
}

func (t *Table) TypeName() string { return "Table" }

// Header returns the splitter whose partitions are the column headings.
func (t *Table) Header() *Splitter { return t.header }

// AddColumn appends a column headed by label. Existing rows gain an empty
// cell.
func (t *Table) AddColumn(label string) {
	heading := t.header.AddContainer()
	heading.SetClip(true)
	text := NewText(t.window, label)
	heading.AddControl(text)
	heading.SetSize(text.Size())
	t.labels = append(t.labels, label)

	for _, row := range t.rowControls() {
		row.addCell()
	}
	t.syncSize()
}

func (t *Table) Columns() int { return t.header.Count() }

// ColumnSize returns the width of column i.
func (t *Table) ColumnSize(i int) float32 {
	return t.header.Split(i).Size().X
}

// SetColumnSize sets the width of column i. Panics when i is out of range.
func (t *Table) SetColumnSize(i int, width float32) {
	t.header.SetSplitSize(i, width)
}

// FitColumn widens column i to its widest cell, never narrower than its
// heading.
func (t *Table) FitColumn(i int) {
	width := t.header.Split(i).Size().X
	for _, row := range t.rowControls() {
		width = max(width, row.Column(i).ChildrenSize().X)
	}
	t.header.SetSplitSize(i, width)
}

// AddRow appends a row with one cell per column.
func (t *Table) AddRow() *TableRow {
	row := newTableRow(t.window)
	t.rowList.AddControl(row)
	for i, n := 0, t.Columns(); i < n; i++ {
		row.addCell()
	}
	t.syncRow(row)
	return row
}

// ClearRows removes every row and the selection.
func (t *Table) ClearRows() {
	t.rowList.ClearControls()
	t.hovered, t.selected = -1, -1
}

func (t *Table) Rows() int { return t.rowList.NumControls() }

// Row returns row i. Panics when i is out of range.
func (t *Table) Row(i int) *TableRow {
	return t.rowList.Control(i).(*TableRow)
}

// Cell returns the cell at row, column.
func (t *Table) Cell(row, column int) *TableCell {
	return t.Row(row).Column(column)
}

func (t *Table) rowControls() []*TableRow {
	out := make([]*TableRow, 0, t.rowList.NumControls())
	for _, item := range t.rowList.Controls() {
		out = append(out, item.(*TableRow))
	}
	return out
}

func (t *Table) RowSelectable() bool { return t.rowSelectable }

func (t *Table) SetRowSelectable(on bool) {
	t.rowSelectable = on
	if !on {
		t.setHovered(-1)
	}
}

func (t *Table) SetOnSelected(fn func(t *Table, row int)) { t.onSelected = fn }

// SelectedRow returns the selected row index, -1 when none is.
func (t *Table) SelectedRow() int { return t.selected }

// HoveredRow returns the row under the pointer, -1 when none is.
func (t *Table) HoveredRow() int { return t.hovered }

// Select selects row i, or clears the selection with -1. Panics when i is
// out of range.
func (t *Table) Select(i int) {
	if i < -1 || i >= t.Rows() {
		panic(fmt.Sprintf("retained: table row %d out of range [-1,%d)", i, t.Rows()))
	}
	if t.selected == i {
		return
	}
	t.selected = i
	t.Invalidate(InvalidatePaint)
	if t.onSelected != nil {
		t.onSelected(t, i)
	}
}

// syncSize resizes every cell to its column's heading.
func (t *Table) syncSize() {
	for _, row := range t.rowControls() {
		t.syncRow(row)
	}
}

func (t *Table) syncRow(row *TableRow) {
	gap := t.header.SplitterSize().X
	for i, n := 0, min(row.Columns(), t.Columns()); i < n; i++ {
		row.setCellSize(i, t.ColumnSize(i), gap)
	}
}

// alignHeader keeps the header scrolled with the rows.
func (t *Table) alignHeader() {
	x := t.rows.Scrollable().Position().X
	t.header.SetPosition(geom.Vec(x, t.header.Position().Y))
}

// ============================================================================
// Interaction
// ============================================================================

// rowBounds is row i widened to at least the width of the visible rows.
func (t *Table) rowBounds(i int) geom.Rect {
	bounds := t.Row(i).AbsoluteBounds()
	width := max(t.rows.Size().X, bounds.Width())
	return geom.RectFrom(bounds.Min, geom.Vec(width, bounds.Height()))
}

func (t *Table) hoverAt(pos geom.Vector2) {
	if !t.rowSelectable || t.rows.Scrollable().IsScrolling() || !t.rows.Contains(pos) {
		t.setHovered(-1)
		return
	}
	for i, n := 0, t.Rows(); i < n; i++ {
		if t.rowBounds(i).Contains(pos) {
			t.setHovered(i)
			return
		}
	}
	t.setHovered(-1)
}

func (t *Table) pressAt(pos geom.Vector2, button MouseButton) bool {
	t.hoverAt(pos)
	if button != MouseButtonLeft || t.hovered < 0 {
		return false
	}
	t.Select(t.hovered)
	return true
}

func (t *Table) setHovered(i int) {
	if t.hovered == i {
		return
	}
	t.hovered = i
	t.Invalidate(InvalidatePaint)
}

// ControlAt lets the header and scroll bars take their own input and sends
// everything else over the table to the interaction layer.
func (t *Table) ControlAt(pos geom.Vector2) Control {
	hit := t.contents.ControlAt(pos)
	if !t.rowSelectable {
		return hit
	}
	if hit != nil && t.ownsInput(hit) {
		return hit
	}
	if t.Contains(pos) {
		return t.interaction
	}
	return hit
}

func (t *Table) ownsInput(c Control) bool {
	s := t.rows.Scrollable()
	return t.header.HasControlRecurse(c) ||
		s.HorizontalScrollBar().HasControlRecurse(c) ||
		s.VerticalScrollBar().HasControlRecurse(c)
}

// ============================================================================
// Layout and paint
// ============================================================================

func (t *Table) DesiredSize() geom.Vector2 {
	size := t.contents.DesiredSize()
	if t.expand.Width() {
		size.X = t.Size().X
	}
	if t.expand.Height() {
		size.Y = t.Size().Y
	}
	return size
}

func (t *Table) PlaceControls(children []Control) {
	t.syncSize()
	t.Container.PlaceControls(children)
}

func (t *Table) OnLayoutComplete() {
	t.alignHeader()
}

func (t *Table) OnPaint(p Painter) {
	p.PushClip(t.rows.AbsoluteBounds())
	t.paintRow(p, t.hovered, theme.SelectableHovered)
	if t.selected != t.hovered {
		t.paintRow(p, t.selected, theme.SelectableSelected)
	}
	p.PopClip()
	t.Container.OnPaint(p)
}

func (t *Table) paintRow(p Painter, i int, prop theme.Property) {
	if i < 0 || i >= t.Rows() {
		return
	}
	color := t.Property(prop).Color()
	if prop == theme.SelectableHovered {
		color.A = 128
	}
	p.Rectangle(t.rowBounds(i), color)
}

// ============================================================================
// Persistence
// ============================================================================

// OnLoad reads Header (objects with Label), Rows (objects whose Columns
// hold one entry per cell) and RowSelectable. A cell entry with a Type is a
// single control; otherwise it is loaded as the cell container itself.
func (t *Table) OnLoad(v *doc.Value) {
	t.Node.OnLoad(v)
	for _, col := range v.Get("Header").Items() {
		t.AddColumn(col.Get("Label").Str(""))
	}
	for _, entry := range v.Get("Rows").Items() {
		row := t.AddRow()
		for i, col := range entry.Get("Columns").Items() {
			if i >= row.Columns() {
				debugLog("table row has more cells than columns", "table", t.FullID(), "cells", entry.Get("Columns").Len())
				break
			}
			cell := row.Column(i)
			if typ := col.Get("Type").Str(""); typ != "" && typ != "TableCell" {
				cell.loadControls(doc.NewArray(col))
				continue
			}
			cell.OnLoad(col)
		}
	}
	t.SetRowSelectable(v.Get("RowSelectable").Boolean(t.rowSelectable))
	t.syncSize()
}

func (t *Table) OnSave(v *doc.Value) {
	t.Node.OnSave(v)
	header := doc.NewArray()
	for _, label := range t.labels {
		col := doc.NewObject()
		col.Set("Label", doc.String(label))
		header.Append(col)
	}
	v.Set("Header", header)

	rows := doc.NewArray()
	for _, row := range t.rowControls() {
		cols := doc.NewArray()
		for _, cell := range row.cells {
			c := doc.NewObject()
			cell.OnSave(c)
			cols.Append(c)
		}
		entry := doc.NewObject()
		entry.Set("Columns", cols)
		rows.Append(entry)
	}
	v.Set("Rows", rows)
	v.Set("RowSelectable", doc.Bool(t.rowSelectable))
}
