package retained

import (
	"fmt"
	"slices"

	"github.com/agiangrant/trellis/doc"
	"github.com/agiangrant/trellis/font"
	"github.com/agiangrant/trellis/geom"
	"github.com/agiangrant/trellis/theme"
)

// ============================================================================
// Window
// ============================================================================

// Hooks connect a window to its host. Every hook is optional. FileDialog
// returns the chosen path, or false when cancelled.
type Hooks struct {
	SetMouseCursor func(w *Window, c Cursor)
	SetClipboard   func(w *Window, text string)
	Clipboard      func(w *Window) string
	FileDialog     func(w *Window, save bool, filters []FileFilter) (string, bool)
	Resize         func(w *Window, size geom.Vector2)
	Close          func(w *Window)
}

// WindowConfig configures a new window. Zero values fall back to the
// defaults of DefaultWindowConfig.
type WindowConfig struct {
	ID        string
	Title     string
	Width     float32
	Height    float32
	Resizable bool
	Theme     *theme.Theme
	Fonts     font.Provider
	Clock     Clock
	Hooks     Hooks
}

// DefaultWindowConfig returns a 640x480 resizable window.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     640,
		Height:    480,
		Resizable: true,
	}
}

// Window owns a control tree, its popup, the layout queue and input
// routing. It is driven by one goroutine: input handlers, Update and
// DoPaint must not run concurrently.
type Window struct {
	id        string
	title     string
	resizable bool
	theme     *theme.Theme
	fonts     font.Provider
	clock     Clock
	hooks     Hooks

	root     *BoxContainer
	titleBar *TitleBar
	menuBar  *MenuBar
	body     *Container
	popup    Popup

	hovered  Control
	focus    Control
	mousePos geom.Vector2
	keys     map[Key]bool
	cursor   Cursor
	clicks   clickTracker

	layoutRequests []Composite
	repaint        bool
	timers         []*Timer

	onLayout     func(w *Window)
	onPaint      func(w *Window)
	onPopupClose func(w *Window, c Composite)
}

// NewWindow builds the root tree: a vertical box holding the menu bar and
// the body, both laid out on the first Update. ShowTitleBar adds a title
// bar above them.
func NewWindow(cfg WindowConfig) *Window {
	def := DefaultWindowConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Theme == nil {
		cfg.Theme = theme.New()
	}
	if cfg.Fonts == nil {
		cfg.Fonts = font.NewCache()
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}

	w := &Window{
		id:        cfg.ID,
		title:     cfg.Title,
		resizable: cfg.Resizable,
		theme:     cfg.Theme,
		fonts:     cfg.Fonts,
		clock:     cfg.Clock,
		hooks:     cfg.Hooks,
		keys:      make(map[Key]bool),
	}
	w.popup.onInvalidate = w.handleInvalidate
	w.popup.onClose = func(c Composite) {
		if w.onPopupClose != nil {
			fn := w.onPopupClose
			w.onPopupClose = nil
			fn(w, c)
		}
		w.repaint = true
	}

	w.root = NewVerticalBox(w)
	w.root.SetSpacing(geom.Vector2{})
	w.root.SetExpand(ExpandBoth)
	w.root.SetOnInvalidate(w.handleInvalidate)

	w.menuBar = NewMenuBar(w)
	w.root.AddControl(w.menuBar)

	w.body = NewContainer(w)
	w.body.SetExpand(ExpandBoth)
	w.root.AddControl(w.body)

	w.root.SetSize(geom.Vec(cfg.Width, cfg.Height))
	w.theme.OnLoaded(w.themeLoaded)
	w.RequestLayout(w.root)
	w.repaint = true
	return w
}

func (w *Window) ID() string           { return w.id }
func (w *Window) Title() string        { return w.title }
func (w *Window) IsResizable() bool    { return w.resizable }
func (w *Window) SetResizable(on bool) { w.resizable = on }
func (w *Window) Theme() *theme.Theme  { return w.theme }
func (w *Window) Clock() Clock         { return w.clock }

// Root returns the top-level vertical box.
func (w *Window) Root() *BoxContainer { return w.root }

// Body returns the container under the menu bar that holds the content.
func (w *Window) Body() *Container { return w.body }

func (w *Window) MenuBar() *MenuBar { return w.menuBar }

// TitleBar returns the title bar, or nil while it is hidden.
func (w *Window) TitleBar() *TitleBar { return w.titleBar }

// SetTitle renames the window and its title bar.
func (w *Window) SetTitle(title string) {
	w.title = title
	if w.titleBar != nil {
		w.titleBar.SetTitle(title)
	}
}

// ShowTitleBar adds or removes the title bar at the top of the root.
func (w *Window) ShowTitleBar(show bool) {
	switch {
	case show && w.titleBar == nil:
		w.titleBar = NewTitleBar(w)
		w.root.InsertControl(w.titleBar, 0)
		w.titleBar.SetTitle(w.title)
	case !show && w.titleBar != nil:
		if w.hovered != nil && w.titleBar.HasControlRecurse(w.hovered) {
			w.hovered = nil
		}
		if w.focus != nil && w.titleBar.HasControlRecurse(w.focus) {
			w.UpdateFocus(nil)
		}
		w.root.RemoveControl(w.titleBar)
		w.titleBar = nil
	}
}

// IsInTitleBar reports whether pos lies in the title bar's drag area.
func (w *Window) IsInTitleBar(pos geom.Vector2) bool {
	return w.titleBar != nil && w.titleBar.IsDraggable(pos)
}

func (w *Window) Size() geom.Vector2 { return w.root.Size() }

// SetSize resizes the root, which queues a layout of the whole tree.
func (w *Window) SetSize(size geom.Vector2) {
	w.root.SetSize(size)
}

// RequestResize asks the host to resize the native window.
func (w *Window) RequestResize(size geom.Vector2) {
	if w.hooks.Resize != nil {
		w.hooks.Resize(w, size)
	}
}

// Close asks the host to close the window.
func (w *Window) Close() {
	if w.hooks.Close != nil {
		w.hooks.Close(w)
	}
}

// Face resolves a font through the window's provider.
func (w *Window) Face(path string, size float32) font.Face {
	return w.fonts.Face(path, size)
}

func (w *Window) SetOnLayout(fn func(w *Window)) { w.onLayout = fn }
func (w *Window) SetOnPaint(fn func(w *Window))  { w.onPaint = fn }

func (w *Window) themeLoaded() {
	w.root.OnThemeLoaded()
	if c := w.popup.Container(); c != nil {
		c.OnThemeLoaded()
	}
	w.root.Invalidate(InvalidateBoth)
}

// ============================================================================
// Host services
// ============================================================================

// SetMouseCursor forwards a cursor change to the host.
func (w *Window) SetMouseCursor(c Cursor) {
	w.cursor = c
	if w.hooks.SetMouseCursor != nil {
		w.hooks.SetMouseCursor(w, c)
	}
}

// MouseCursor returns the last cursor requested.
func (w *Window) MouseCursor() Cursor { return w.cursor }

func (w *Window) SetClipboard(text string) {
	if w.hooks.SetClipboard != nil {
		w.hooks.SetClipboard(w, text)
	}
}

func (w *Window) Clipboard() string {
	if w.hooks.Clipboard != nil {
		return w.hooks.Clipboard(w)
	}
	return ""
}

// FileDialog asks the host for a path. It reports false when the host has
// no dialog or the user cancelled.
func (w *Window) FileDialog(save bool, filters []FileFilter) (string, bool) {
	if w.hooks.FileDialog == nil {
		return "", false
	}
	return w.hooks.FileDialog(w, save, filters)
}

// ============================================================================
// Invalidation and the frame
// ============================================================================

// handleInvalidate receives every invalidation that reaches the root or
// the popup. Layout requests go to the nearest composite: the focus itself
// when it is one, otherwise its parent.
func (w *Window) handleInvalidate(focus Control, t InvalidateType) {
	if t != InvalidatePaint {
		w.RequestLayout(nearestComposite(focus))
	}
	w.repaint = true
}

func nearestComposite(c Control) Composite {
	if c == nil {
		return nil
	}
	if cc, ok := c.(Composite); ok {
		return cc
	}
	return c.Base().Parent()
}

// RequestLayout queues c for the next Update. Requests are kept in order
// and deduplicated.
func (w *Window) RequestLayout(c Composite) {
	if c == nil || slices.Contains(w.layoutRequests, c) {
		return
	}
	w.layoutRequests = append(w.layoutRequests, c)
}

// PendingLayouts returns the queued layout requests in order.
func (w *Window) PendingLayouts() []Composite {
	return slices.Clone(w.layoutRequests)
}

// NeedsRepaint reports whether DoPaint would draw.
func (w *Window) NeedsRepaint() bool { return w.repaint }

// Update fires due timers, drains the layout queue and advances the popup.
// Requests raised while draining are kept for the next Update.
func (w *Window) Update() {
	w.updateTimers()

	if len(w.layoutRequests) > 0 {
		requests := w.layoutRequests
		w.layoutRequests = nil
		for _, c := range requests {
			debugLog("layout", "window", w.title, "type", c.TypeName(), "id", c.Base().FullID())
			c.ContainerBase().Layout()
		}
		if w.onLayout != nil {
			w.onLayout(w)
		}
	}

	w.popup.Update()
}

// DoPaint paints the tree and popup when something changed since the last
// paint. It reports whether anything was painted.
func (w *Window) DoPaint(p Painter) bool {
	if !w.repaint {
		return false
	}
	w.root.OnPaint(p)
	w.popup.OnPaint(p)
	w.repaint = false
	if w.onPaint != nil {
		w.onPaint(w)
	}
	return true
}

// ============================================================================
// Popup
// ============================================================================

// SetPopup opens c above the tree. onClose runs once when it closes.
func (w *Window) SetPopup(c Composite, onClose func(w *Window, c Composite), modal bool) {
	debugLog("popup open", "window", w.title, "type", c.TypeName(), "modal", modal)
	w.popup.Open(c, modal)
	w.onPopupClose = onClose
	w.RequestLayout(c)
	w.repaint = true
}

// ClosePopup closes the popup, dropping focus first if it lies inside.
func (w *Window) ClosePopup() {
	if w.focus != nil && w.popup.HasControl(w.focus) {
		w.focus.OnUnfocused()
		w.focus = nil
	}
	w.popup.Close()
}

// Popup exposes the popup state.
func (w *Window) Popup() *Popup { return &w.popup }

// ============================================================================
// Load and save
// ============================================================================

// Load applies a window document: Title, Width, Height, Resizable, TitleBar,
// Theme, MenuBar and Body. Missing keys keep the current values.
func (w *Window) Load(v *doc.Value) error {
	if !v.IsObject() {
		return fmt.Errorf("failed to load window: root is %s, want object", v.Kind())
	}
	w.SetTitle(v.Get("Title").Str(w.title))
	w.ShowTitleBar(v.Get("TitleBar").Boolean(w.titleBar != nil))
	size := w.Size()
	w.SetSize(geom.Vec(v.Get("Width").Float(size.X), v.Get("Height").Float(size.Y)))
	w.resizable = v.Get("Resizable").Boolean(w.resizable)

	if t := v.Get("Theme"); !t.IsNull() {
		if err := w.theme.Load(t); err != nil {
			return fmt.Errorf("failed to load window theme: %w", err)
		}
	}

	w.menuBar.OnLoad(v.Get("MenuBar"))
	w.body.OnLoad(v.Get("Body"))
	// Loading may reset the expansion policy.
	w.body.SetExpand(ExpandBoth)
	w.root.Invalidate(InvalidateBoth)
	return nil
}

// LoadFile reads a JSON or TOML window document.
func (w *Window) LoadFile(path string) error {
	v, err := doc.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load window: %w", err)
	}
	return w.Load(v)
}

// LoadInto loads v and fills list with every control that has an ID.
func (w *Window) LoadInto(v *doc.Value, list *ControlList) error {
	if err := w.Load(v); err != nil {
		return err
	}
	w.Populate(list)
	return nil
}

// Save exports the window in the shape Load reads.
func (w *Window) Save() *doc.Value {
	v := doc.NewObject()
	v.Set("Title", doc.String(w.title))
	size := w.Size()
	v.Set("Width", doc.Number(float64(size.X)))
	v.Set("Height", doc.Number(float64(size.Y)))
	v.Set("Resizable", doc.Bool(w.resizable))
	v.Set("TitleBar", doc.Bool(w.titleBar != nil))

	menu := doc.NewObject()
	w.menuBar.OnSave(menu)
	v.Set("MenuBar", menu)

	body := doc.NewObject()
	w.body.OnSave(body)
	v.Set("Body", body)
	return v
}

// Clear empties the menu bar and body and drops all pending state.
func (w *Window) Clear() {
	w.menuBar.ClearMenuItems()
	w.body.ClearControls()
	if w.popup.IsOpen() {
		debugLog("popup force closed", "window", w.title)
		w.popup.forceClose()
	}
	w.hovered = nil
	w.focus = nil
	w.layoutRequests = nil
	w.RequestLayout(w.root)
}

// Populate adds every identified control in the body and menus to list.
func (w *Window) Populate(list *ControlList) {
	var walk func(c Control)
	walk = func(c Control) {
		if c.Base().ID() != "" {
			list.Add(c)
		}
		if cc, ok := c.(Composite); ok {
			for _, ch := range cc.ContainerBase().Controls() {
				walk(ch)
			}
		}
	}
	for _, ch := range w.body.Controls() {
		walk(ch)
	}
	for _, item := range w.menuBar.AllMenuItems() {
		walk(item)
	}
}
