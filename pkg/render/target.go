package render

import "sync"

// Target serializes renders for one display surface with last-render-wins
// ordering. Rendering may be re-triggered while a prior render is still in
// flight; a stale render's result must never overwrite a later one. Each
// attempt takes a sequence number from Begin and offers its result to
// Commit, which discards anything older than what has already been applied.
type Target struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
	html    string
	err     error
}

// Begin registers a new render attempt and returns its sequence number.
func (t *Target) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.issued++
	return t.issued
}

// Commit offers a finished render. It reports whether the result was
// applied; false means a newer render already landed and this one was
// discarded.
func (t *Target) Commit(seq uint64, html string, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq < t.applied {
		return false
	}
	t.applied = seq
	t.html = html
	t.err = err
	return true
}

// Result returns the most recently applied render.
func (t *Target) Result() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.html, t.err
}
