// Package trellis drives retained control trees: it owns the windows, the
// shared theme and fonts, and the frame loop that lays out and paints them.
package trellis

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/agiangrant/trellis/font"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/retained"
	"github.com/agiangrant/trellis/theme"
)

// Application owns a set of windows that share one theme and font cache.
// All methods must be called from the goroutine that runs the frame loop.
type Application struct {
	config  AppConfig
	log     *slog.Logger
	theme   *theme.Theme
	fonts   font.Provider
	clock   retained.Clock
	windows []*retained.Window

	painter func(w *retained.Window) retained.Painter
	onFrame func(a *Application)
	frames  uint64
}

// Option customizes an Application before its main window is created.
type Option func(a *Application)

// WithFonts replaces the font cache. The config's Font is then ignored.
func WithFonts(p font.Provider) Option {
	return func(a *Application) { a.fonts = p }
}

// WithClock sets the clock every window's timers run on.
func WithClock(c retained.Clock) Option {
	return func(a *Application) { a.clock = c }
}

// NewApplication applies config: logging, theme file, font and, when set,
// the main window document.
func NewApplication(config AppConfig, opts ...Option) (*Application, error) {
	def := DefaultAppConfig()
	if config.FrameRate <= 0 {
		config.FrameRate = def.FrameRate
	}
	if config.FontSize <= 0 {
		config.FontSize = def.FontSize
	}

	level := slog.LevelInfo
	if config.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	retained.SetLogger(log)
	retained.SetVerbose(config.Debug)

	a := &Application{
		config: config,
		log:    log,
		theme:  theme.New(),
		fonts:  font.NewCache(),
		clock:  retained.SystemClock{},
	}
	for _, opt := range opts {
		opt(a)
	}

	if config.Theme != "" {
		if err := a.theme.LoadFile(config.Theme); err != nil {
			return nil, fmt.Errorf("failed to initialize application: %w", err)
		}
	}
	if cache, ok := a.fonts.(*font.Cache); ok && config.Font != "" {
		face := cache.Face(config.Font, config.FontSize)
		if err := cache.Err(config.Font); err != nil {
			return nil, fmt.Errorf("failed to initialize application: %w", err)
		}
		cache.SetFallback(face)
	}

	if config.Window != "" {
		w := a.NewWindow(config.Title)
		if err := w.LoadFile(config.Window); err != nil {
			a.CloseWindow(w)
			return nil, fmt.Errorf("failed to initialize application: %w", err)
		}
		log.Debug("window loaded", "path", config.Window, "title", w.Title())
	}
	return a, nil
}

func (a *Application) Config() AppConfig    { return a.config }
func (a *Application) Logger() *slog.Logger { return a.log }
func (a *Application) Theme() *theme.Theme  { return a.theme }
func (a *Application) Fonts() font.Provider { return a.fonts }
func (a *Application) Frames() uint64       { return a.frames }

// Windows returns the open windows in creation order.
func (a *Application) Windows() []*retained.Window {
	return slices.Clone(a.windows)
}

// SetPainter selects the painter each window is drawn into. fn is only
// called for windows that need a repaint. Without one, Tick lays windows out
// but never paints them.
func (a *Application) SetPainter(fn func(w *retained.Window) retained.Painter) {
	a.painter = fn
}

// OnFrame registers fn to run after every Tick.
func (a *Application) OnFrame(fn func(a *Application)) { a.onFrame = fn }

// NewWindow opens an empty window sized from the config. Window.Close
// removes it from the application.
func (a *Application) NewWindow(title string) *retained.Window {
	w := retained.NewWindow(retained.WindowConfig{
		ID:        fmt.Sprintf("window%d", len(a.windows)),
		Title:     title,
		Width:     a.config.Width,
		Height:    a.config.Height,
		Resizable: a.config.Resizable,
		Theme:     a.theme,
		Fonts:     a.fonts,
		Clock:     a.clock,
		Hooks: retained.Hooks{
			Resize: func(w *retained.Window, size geom.Vector2) {
				if w.IsResizable() {
					w.SetSize(size)
				}
			},
			Close: a.CloseWindow,
		},
	})
	w.ShowTitleBar(a.config.TitleBar)
	a.windows = append(a.windows, w)
	a.log.Debug("window opened", "id", w.ID(), "title", title)
	return w
}

// CloseWindow drops w. Closing a window twice is a no-op.
func (a *Application) CloseWindow(w *retained.Window) {
	i := slices.Index(a.windows, w)
	if i < 0 {
		return
	}
	a.windows = slices.Delete(a.windows, i, i+1)
	a.log.Debug("window closed", "id", w.ID(), "title", w.Title())
}

// Tick runs one frame: every window updates, then repaints if it changed.
// It returns the number of windows painted.
func (a *Application) Tick() int {
	painted := 0
	// Windows may close themselves from a timer or callback.
	for _, w := range slices.Clone(a.windows) {
		w.Update()
		if a.painter == nil || !w.NeedsRepaint() {
			continue
		}
		if w.DoPaint(a.painter(w)) {
			painted++
		}
	}
	a.frames++
	if a.onFrame != nil {
		a.onFrame(a)
	}
	return painted
}

// Run drives Tick at the configured frame rate until ctx is cancelled or the
// last window closes.
func (a *Application) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(a.config.FrameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.log.Debug("frame loop started", "fps", a.config.FrameRate, "windows", len(a.windows))
	for {
		select {
		case <-ctx.Done():
			a.log.Debug("frame loop stopped", "frames", a.frames)
			return ctx.Err()
		case <-ticker.C:
			a.Tick()
			if len(a.windows) == 0 {
				a.log.Debug("frame loop finished", "frames", a.frames)
				return nil
			}
		}
	}
}
