package commands

import (
	"flag"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agiangrant/trellis"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/internal/termdraw"
	"github.com/agiangrant/trellis/retained"
)

// View implements the 'trellis view' command
func View(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "Path to trellis.toml")
	fs.Parse(args)

	cols, rows := terminalSize()
	canvas := termdraw.New(cols, rows-1, termdraw.DefaultCell)
	app, w, err := openWindow(*configPath, fs.Arg(0), canvas)
	if err != nil {
		return err
	}

	m := newViewModel(app, w, canvas)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run inspector: %w", err)
	}
	return nil
}

// ============================================================================
// Inspector model
// ============================================================================

type frameMsg struct{}

// viewModel forwards terminal input to a window and shows its canvas above
// a status line naming the hovered and focused controls.
type viewModel struct {
	app    *trellis.Application
	window *retained.Window
	canvas *termdraw.Canvas
	frame  time.Duration
	mouse  geom.Vector2
}

func newViewModel(app *trellis.Application, w *retained.Window, canvas *termdraw.Canvas) *viewModel {
	return &viewModel{
		app:    app,
		window: w,
		canvas: canvas,
		frame:  time.Second / time.Duration(app.Config().FrameRate),
	}
}

var keyMap = map[tea.KeyType]retained.Key{
	tea.KeyEsc:       retained.KeyEscape,
	tea.KeyEnter:     retained.KeyEnter,
	tea.KeyTab:       retained.KeyTab,
	tea.KeyBackspace: retained.KeyBackspace,
	tea.KeyDelete:    retained.KeyDelete,
	tea.KeyLeft:      retained.KeyLeft,
	tea.KeyRight:     retained.KeyRight,
	tea.KeyUp:        retained.KeyUp,
	tea.KeyDown:      retained.KeyDown,
	tea.KeyHome:      retained.KeyHome,
	tea.KeyEnd:       retained.KeyEnd,
	tea.KeyPgUp:      retained.KeyPageUp,
	tea.KeyPgDown:    retained.KeyPageDown,
	tea.KeySpace:     retained.KeySpace,
}

var buttonMap = map[tea.MouseButton]retained.MouseButton{
	tea.MouseButtonLeft:   retained.MouseButtonLeft,
	tea.MouseButtonRight:  retained.MouseButtonRight,
	tea.MouseButtonMiddle: retained.MouseButtonMiddle,
}

func (m *viewModel) tick() tea.Cmd {
	return tea.Tick(m.frame, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *viewModel) Init() tea.Cmd {
	return m.tick()
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The last row holds the status line.
		m.canvas.Resize(msg.Width, max(msg.Height-1, 0))
		m.window.SetSize(m.canvas.PixelSize())
		// Resizing cleared the canvas even if the window kept its size.
		m.window.Root().Invalidate(retained.InvalidatePaint)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.handleKey(msg)
	case frameMsg:
		m.app.Tick()
		if len(m.app.Windows()) == 0 {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	m.app.Tick()
	return m, nil
}

func (m *viewModel) handleMouse(msg tea.MouseMsg) {
	_, rows := m.canvas.Size()
	if msg.Y >= rows {
		m.window.OnMouseLeave()
		return
	}
	m.mouse = m.canvas.CellToPixel(msg.X, msg.Y)
	m.syncModifiers(msg.Shift, msg.Ctrl, msg.Alt)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.window.OnMouseMove(m.mouse)
	case tea.MouseActionPress:
		m.window.OnMouseMove(m.mouse)
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.window.OnMouseWheel(geom.Vec(0, 1))
		case tea.MouseButtonWheelDown:
			m.window.OnMouseWheel(geom.Vec(0, -1))
		case tea.MouseButtonWheelLeft:
			m.window.OnMouseWheel(geom.Vec(1, 0))
		case tea.MouseButtonWheelRight:
			m.window.OnMouseWheel(geom.Vec(-1, 0))
		default:
			if b, ok := buttonMap[msg.Button]; ok {
				// Zero lets the window count double and triple clicks.
				m.window.OnMousePressed(m.mouse, b, 0)
			}
		}
	case tea.MouseActionRelease:
		// Most terminals do not report which button was released.
		b, ok := buttonMap[msg.Button]
		if !ok {
			b = retained.MouseButtonLeft
		}
		m.window.OnMouseReleased(m.mouse, b)
	}
}

// handleKey sends named keys as a press and release pair, since terminals
// report no releases, and printable runes as text.
func (m *viewModel) handleKey(msg tea.KeyMsg) {
	m.syncModifiers(false, false, msg.Alt)
	if key, ok := keyMap[msg.Type]; ok {
		m.window.OnKeyPressed(key)
		m.window.OnKeyReleased(key)
		if msg.Type == tea.KeySpace {
			m.window.OnText(' ')
		}
		return
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			m.window.OnText(r)
		}
	}
}

// syncModifiers holds the left modifier keys the terminal reported with an
// event and releases the others. Terminals send no modifier events of their
// own.
func (m *viewModel) syncModifiers(shift, ctrl, alt bool) {
	for _, mod := range []struct {
		key  retained.Key
		held bool
	}{
		{retained.KeyLeftShift, shift},
		{retained.KeyLeftControl, ctrl},
		{retained.KeyLeftAlt, alt},
	} {
		switch {
		case mod.held && !m.window.IsKeyPressed(mod.key):
			m.window.OnKeyPressed(mod.key)
		case !mod.held && m.window.IsKeyPressed(mod.key):
			m.window.OnKeyReleased(mod.key)
		}
	}
}

func (m *viewModel) status() string {
	mods := ""
	if held := m.window.Modifiers(); held != 0 {
		mods = "  " + held.String()
	}
	return fmt.Sprintf(" %s  hover %s  focus %s  %s%s  ctrl+c quits ",
		m.window.Title(), describeShort(m.window.Hovered()), describeShort(m.window.Focus()), m.mouse, mods)
}

func (m *viewModel) View() string {
	return m.canvas.Render() + "\n" + statusStyle.Render(m.status())
}
