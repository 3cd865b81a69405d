package retained

import (
	"sort"
	"sync"

	"github.com/agiangrant/trellis/geom"
)

// ============================================================================
// Control factory
// ============================================================================

// ControlFunc creates an empty control for w.
type ControlFunc func(w *Window) Control

var (
	registryMu sync.RWMutex
	registry   = map[string]ControlFunc{}
)

func init() {
	builtins := map[string]ControlFunc{
		"Container":             func(w *Window) Control { return NewContainer(w) },
		"HorizontalContainer":   func(w *Window) Control { return NewHorizontalBox(w) },
		"VerticalContainer":     func(w *Window) Control { return NewVerticalBox(w) },
		"MarginContainer":       func(w *Window) Control { return NewMarginContainer(w) },
		"ScrollableContainer":   func(w *Window) Control { return NewScrollableContainer(w) },
		"ScrollableView":        func(w *Window) Control { return NewScrollableView(w) },
		"ScrollableViewControl": func(w *Window) Control { return NewScrollableView(w) },
		"Splitter":              func(w *Window) Control { return NewSplitter(w) },
		"Table":                 func(w *Window) Control { return NewTable(w) },
		"Text":                  func(w *Window) Control { return NewText(w, "") },
		"Button":                func(w *Window) Control { return NewButton(w) },
		"TextButton":            func(w *Window) Control { return NewTextButton(w, "") },
		"Separator":             func(w *Window) Control { return NewSeparator(w, Horizontal) },
		"Panel":                 func(w *Window) Control { return NewPanel(w) },
		"Spacer":                func(w *Window) Control { return NewSpacer(w, geom.Vector2{}) },
	}
	for name, fn := range builtins {
		RegisterControl(name, fn)
	}
}

// RegisterControl makes typeName loadable from documents. A later
// registration replaces an earlier one.
func RegisterControl(typeName string, fn ControlFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[typeName] = fn
}

// CreateControl instantiates typeName, or returns nil for unknown types.
func CreateControl(typeName string, w *Window) Control {
	registryMu.RLock()
	fn, ok := registry[typeName]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	return fn(w)
}

// ControlTypes lists the registered type names sorted.
func ControlTypes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
