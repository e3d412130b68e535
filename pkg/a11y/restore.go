package a11y

// Restorer remembers a single focus position so it can be restored after a
// dialog or overlay closes. It holds at most one reference; each Save
// overwrites the previous one (last-write-wins), and Restore is repeatable
// until the next Save.
type Restorer struct {
	active func() Element
	saved  Element
}

// NewRestorer creates a Restorer that reads the currently focused element
// through active, typically a Group's Active method. A nil active function
// makes Save a no-op.
func NewRestorer(active func() Element) *Restorer {
	return &Restorer{active: active}
}

// Save records the currently focused element. If nothing holds focus the
// reference is overwritten with nothing, so a later Restore is a no-op.
func (r *Restorer) Save() {
	if r == nil {
		return
	}
	if r.active == nil {
		r.saved = nil
		return
	}
	r.saved = r.active()
}

// Restore refocuses the saved element, if any. Calling it with no saved
// reference is a silent no-op, not a failure.
func (r *Restorer) Restore() {
	if r == nil || r.saved == nil {
		return
	}
	r.saved.Focus()
}

// Saved reports whether a reference is currently held.
func (r *Restorer) Saved() bool {
	return r != nil && r.saved != nil
}
