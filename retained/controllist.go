package retained

import "sort"

// ControlList indexes controls by full ID so application code can find the
// controls a document declared.
type ControlList struct {
	controls map[string]Control
}

func NewControlList() *ControlList {
	return &ControlList{controls: make(map[string]Control)}
}

// Add registers c under its full ID. Controls without an ID are ignored and
// a repeated ID replaces the earlier control.
func (l *ControlList) Add(c Control) {
	if c == nil {
		return
	}
	id := c.Base().FullID()
	if id == "" {
		return
	}
	if l.controls == nil {
		l.controls = make(map[string]Control)
	}
	if prev, ok := l.controls[id]; ok && prev != c {
		logger.Warn("duplicate control id", "id", id, "type", c.TypeName(), "replaced", prev.TypeName())
	}
	l.controls[id] = c
}

// Get returns the control registered under id, or nil.
func (l *ControlList) Get(id string) Control { return l.controls[id] }

func (l *ControlList) Contains(id string) bool {
	_, ok := l.controls[id]
	return ok
}

func (l *ControlList) Len() int { return len(l.controls) }

// IDs returns the registered IDs sorted.
func (l *ControlList) IDs() []string {
	ids := make([]string, 0, len(l.controls))
	for id := range l.controls {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the control under id as a T. It reports false when the id
// is missing or holds another type.
func Lookup[T Control](l *ControlList, id string) (T, bool) {
	t, ok := l.Get(id).(T)
	return t, ok
}
