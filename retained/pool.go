package retained

import "sync"

// ============================================================================
// Child snapshots
// ============================================================================
//
// A layout pass walks a snapshot of the child list, so Update hooks may add
// or remove children mid-pass. Snapshots are recycled through a pool.
//
//   children := snapshotControls(c.controls)
//   ... use children ...
//   releaseControlSlice(children)

var controlSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]Control, 0, 16)
	},
}

// acquireControlSlice returns a slice with len == n.
// Caller must call releaseControlSlice when done.
func acquireControlSlice(n int) []Control {
	slice := controlSlicePool.Get().([]Control)
	if cap(slice) < n {
		controlSlicePool.Put(slice[:0])
		return make([]Control, n, n*2)
	}
	return slice[:n]
}

// releaseControlSlice returns a slice to the pool.
// The slice should not be used after calling this.
func releaseControlSlice(slice []Control) {
	if slice == nil {
		return
	}

	// Drop references so pooled slices don't pin detached subtrees
	for i := range slice {
		slice[i] = nil
	}

	if cap(slice) <= 256 {
		controlSlicePool.Put(slice[:0])
	}
}

// snapshotControls copies a child list into a pooled slice.
func snapshotControls(src []Control) []Control {
	out := acquireControlSlice(len(src))
	copy(out, src)
	return out
}
