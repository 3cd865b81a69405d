package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/trellis"
	"github.com/agiangrant/trellis/internal/termdraw"
	"github.com/agiangrant/trellis/retained"
	"github.com/agiangrant/trellis/theme"
)

const buttonDoc = `{
	"Title": "Inspect",
	"Body": {"Controls": [{"Type": "TextButton", "ID": "ok", "Text": "OK"}]}
}`

func writeDoc(t *testing.T, content string) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "main.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return dir, path
}

func TestLayoutPrintsTree(t *testing.T) {
	dir, path := writeDoc(t, `{"Body": {"Controls": [{"Type": "Text", "ID": "greeting", "Text": "hello"}]}}`)

	var out bytes.Buffer
	err := layout(&out, []string{"-config", filepath.Join(dir, "none.toml"), "-w", "320", "-h", "160", "-paint", path})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "MenuBar")
	assert.Contains(t, text, "#greeting")
	assert.Contains(t, text, "(0, 0) 40x16")
	assert.Contains(t, text, "(0, 0) 320x160", "the root fills the requested size")
	assert.Contains(t, text, "hello", "painted output follows the tree")
}

func TestLayoutNeedsDocument(t *testing.T) {
	var out bytes.Buffer
	err := layout(&out, []string{"-config", filepath.Join(t.TempDir(), "none.toml"), "-w", "100", "-h", "100"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no window document")
}

func TestInitThenLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")
	require.NoError(t, Init([]string{"-dir", dir}))

	config, err := trellis.LoadConfig(filepath.Join(dir, "trellis.toml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "main.json"), config.Window)
	assert.FileExists(t, config.Theme)

	err = Init([]string{"-dir", dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	var out bytes.Buffer
	require.NoError(t, layout(&out, []string{"-config", filepath.Join(dir, "trellis.toml"), "-w", "640", "-h", "480"}))
	assert.Contains(t, out.String(), "#greeting")
	assert.Contains(t, out.String(), "#ok")
}

func TestThemeCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.toml")
	require.NoError(t, os.WriteFile(in, []byte("FontSize = 20\nText = \"#ff0000\"\n"), 0644))
	saved := filepath.Join(dir, "out.json")

	var out bytes.Buffer
	require.NoError(t, printTheme(&out, []string{"-config", filepath.Join(dir, "none.toml"), "-o", saved, in}))
	assert.Regexp(t, `FontSize\s+\S*\s*float\s+20`, out.String())
	assert.Contains(t, out.String(), "#ff0000")
	assert.Contains(t, out.String(), "wrote "+saved)

	reloaded := theme.New()
	require.NoError(t, reloaded.LoadFile(saved))
	assert.Equal(t, float32(20), reloaded.Get(theme.FontSize).Float())
	assert.Equal(t, theme.RGBA(255, 0, 0, 255), reloaded.Get(theme.Text).Color())
}

func newTestViewModel(t *testing.T) (*viewModel, *retained.TextButton) {
	t.Helper()
	dir, path := writeDoc(t, buttonDoc)
	canvas := termdraw.New(40, 10, termdraw.DefaultCell)
	app, w, err := openWindow(filepath.Join(dir, "none.toml"), path, canvas)
	require.NoError(t, err)

	list := retained.NewControlList()
	w.Populate(list)
	ok, found := retained.Lookup[*retained.TextButton](list, "ok")
	require.True(t, found)
	return newViewModel(app, w, canvas), ok
}

func TestViewModelResizeAndPaint(t *testing.T) {
	m, _ := newTestViewModel(t)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 30, Height: 6})
	assert.Nil(t, cmd)
	cols, rows := m.canvas.Size()
	assert.Equal(t, 30, cols)
	assert.Equal(t, 5, rows, "one row is kept for the status line")
	assert.Equal(t, m.canvas.PixelSize(), m.window.Size())
	assert.Contains(t, m.canvas.Plain(), "OK")
	assert.Contains(t, m.View(), "Inspect")

	_, cmd = m.Update(frameMsg{})
	assert.NotNil(t, cmd, "frames keep ticking")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestViewModelMouse(t *testing.T) {
	m, ok := newTestViewModel(t)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})
	clicked := 0
	ok.SetOnClicked(func(*retained.Button) { clicked++ })

	m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionMotion})
	assert.Equal(t, retained.Control(ok), m.window.Hovered())
	assert.Contains(t, m.status(), "hover TextButton#ok")

	m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	assert.Equal(t, 1, clicked)
	assert.Equal(t, retained.Control(ok), m.window.Focus())

	m.Update(tea.MouseMsg{X: 1, Y: 10, Action: tea.MouseActionMotion})
	assert.Nil(t, m.window.Hovered(), "the status line is outside the window")
}

func TestViewModelKeys(t *testing.T) {
	m, _ := newTestViewModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, m.window.IsKeyPressed(retained.KeyDown), "terminal keys are released at once")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
}

func TestViewModelModifiers(t *testing.T) {
	m, _ := newTestViewModel(t)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})

	m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionMotion, Ctrl: true, Shift: true})
	assert.Equal(t, retained.ModCtrl|retained.ModShift, m.window.Modifiers())
	assert.Contains(t, m.status(), "ctrl+shift")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	assert.Equal(t, retained.ModAlt, m.window.Modifiers(), "keys carry only alt")

	m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionMotion})
	assert.Zero(t, m.window.Modifiers())
}
