package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/geom"
)

// newFilledTable builds a two-column table with one text per cell.
func newFilledTable(w *Window, rows ...[2]string) *Table {
	t := NewTable(w)
	t.AddColumn("Name")
	t.AddColumn("Size")
	for _, r := range rows {
		row := t.AddRow()
		row.Column(0).AddControl(NewText(w, r[0]))
		row.Column(1).AddControl(NewText(w, r[1]))
	}
	return t
}

func TestTableColumns(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	tbl := newFilledTable(w, [2]string{"a", "1"})

	require.Equal(t, 2, tbl.Columns())
	assert.Equal(t, float32(32), tbl.ColumnSize(0), "a column starts at its heading width")
	assert.Equal(t, float32(32), tbl.Cell(0, 0).Size().X)

	tbl.SetColumnSize(0, 100)
	assert.Equal(t, float32(100), tbl.ColumnSize(0))
	assert.Equal(t, float32(100), tbl.Cell(0, 0).Size().X, "cells follow their column")

	tbl.AddColumn("Kind")
	assert.Equal(t, 3, tbl.Row(0).Columns(), "existing rows gain a cell")
	assert.Panics(t, func() { tbl.Row(0).Column(3) })
}

func TestTableFitColumn(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	tbl := newFilledTable(w, [2]string{"a", "1234567890"}, [2]string{"b", "12"})

	tbl.FitColumn(1)
	assert.Equal(t, float32(80), tbl.ColumnSize(1))
	assert.Equal(t, float32(80), tbl.Cell(1, 1).Size().X)

	tbl.FitColumn(0)
	assert.Equal(t, float32(32), tbl.ColumnSize(0), "never narrower than the heading")
}

func TestTableSelect(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	tbl := newFilledTable(w, [2]string{"a", "1"}, [2]string{"b", "2"})
	var got []int
	tbl.SetOnSelected(func(_ *Table, row int) { got = append(got, row) })

	assert.Equal(t, -1, tbl.SelectedRow())
	tbl.Select(1)
	tbl.Select(1)
	assert.Equal(t, []int{1}, got, "reselecting does not notify")

	assert.True(t, tbl.interaction.OnKeyPressed(KeyUp))
	assert.True(t, tbl.interaction.OnKeyPressed(KeyUp))
	assert.Equal(t, 0, tbl.SelectedRow(), "up stops at the first row")
	assert.True(t, tbl.interaction.OnKeyPressed(KeyDown))
	assert.True(t, tbl.interaction.OnKeyPressed(KeyDown))
	assert.Equal(t, 1, tbl.SelectedRow(), "down stops at the last row")
	assert.Equal(t, []int{1, 0, 1}, got)

	assert.Panics(t, func() { tbl.Select(2) })
	assert.Panics(t, func() { tbl.Select(-2) })

	tbl.ClearRows()
	assert.Zero(t, tbl.Rows())
	assert.Equal(t, -1, tbl.SelectedRow())
}

func TestTablePointerSelection(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	tbl := newFilledTable(w, [2]string{"a", "1"}, [2]string{"b", "2"})
	tbl.SetExpand(ExpandBoth)
	w.Body().AddControl(tbl)
	selected := -1
	tbl.SetOnSelected(func(_ *Table, row int) { selected = row })
	w.Update()

	require.Equal(t, geom.Vec(640, 16), tbl.Header().Size())
	require.Equal(t, geom.Vec(0, 32), tbl.Row(1).AbsolutePosition())

	// Rows count as hovered across the full view width.
	w.OnMouseMove(geom.Vec(300, 40))
	require.Equal(t, Control(tbl.interaction), w.Hovered())
	assert.Equal(t, 1, tbl.HoveredRow())

	w.OnMousePressed(geom.Vec(300, 40), MouseButtonLeft, ClickSingle)
	assert.Equal(t, 1, selected)
	assert.Equal(t, Control(tbl.interaction), w.Focus())

	assert.True(t, w.OnKeyPressed(KeyUp))
	assert.Equal(t, 0, selected)

	w.OnMouseMove(geom.Vec(300, 300))
	assert.Equal(t, -1, tbl.HoveredRow(), "below the last row")
	w.OnMousePressed(geom.Vec(300, 300), MouseButtonLeft, ClickSingle)
	assert.Equal(t, 0, selected, "an empty press keeps the selection")
	assert.Nil(t, w.Focus())

	w.OnMouseMove(geom.Vec(5, 5))
	assert.IsType(t, &Text{}, w.Hovered(), "the header takes its own input")

	tbl.SetRowSelectable(false)
	w.OnMouseMove(geom.Vec(300, 40))
	assert.Equal(t, -1, tbl.HoveredRow())
}

func TestTableHeaderDragResizesCells(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	tbl := newFilledTable(w, [2]string{"a", "1"})
	tbl.SetExpand(ExpandBoth)
	w.Body().AddControl(tbl)
	w.Update()

	w.OnMouseMove(geom.Vec(40, 8))
	require.IsType(t, &Separator{}, w.Hovered())
	w.OnMousePressed(geom.Vec(40, 8), MouseButtonLeft, ClickSingle)
	w.OnMouseMove(geom.Vec(60, 8))
	w.OnMouseReleased(geom.Vec(60, 8), MouseButtonLeft)

	assert.Equal(t, float32(52), tbl.ColumnSize(0))
	assert.Equal(t, float32(52), tbl.Cell(0, 0).Size().X)
	assert.Equal(t, float32(32), tbl.Cell(0, 1).Size().X)
}

func TestTableLoadSave(t *testing.T) {
	w, _ := newTestWindow(t, 640, 480)
	v, err := doc.ParseJSON([]byte(`{
		"Type": "Table",
		"ID": "files",
		"Header": [{"Label": "Name"}, {"Label": "Size"}],
		"Rows": [
			{"Columns": [{"Type": "Text", "Text": "x"}, {"Controls": [{"Type": "Text", "Text": "y"}]}]},
			{"Columns": [{"Type": "Text", "Text": "z"}]}
		],
		"RowSelectable": false
	}`))
	require.NoError(t, err)

	ctl := CreateControl("Table", w)
	require.IsType(t, &Table{}, ctl)
	ctl.OnLoad(v)
	tbl := ctl.(*Table)

	require.Equal(t, 2, tbl.Columns())
	require.Equal(t, 2, tbl.Rows())
	assert.Equal(t, "x", tbl.Cell(0, 0).Control(0).(*Text).Text())
	assert.Equal(t, "y", tbl.Cell(0, 1).Control(0).(*Text).Text())
	assert.Zero(t, tbl.Cell(1, 1).NumControls())
	assert.False(t, tbl.RowSelectable())

	out := doc.NewObject()
	tbl.OnSave(out)
	assert.Equal(t, "Table", out.Get("Type").Str(""))
	assert.Equal(t, 2, out.Get("Header").Len())
	assert.Equal(t, "Size", out.Get("Header").Index(1).Get("Label").Str(""))
	assert.Equal(t, 2, out.Get("Rows").Len())
	assert.Equal(t, 2, out.Get("Rows").Index(1).Get("Columns").Len())
}
