package period

// SeenTracker enforces at most one record per period key. The first key
// presented wins; keys are never forgotten for the tracker's lifetime.
type SeenTracker struct {
	seen map[Key]struct{}
}

// NewSeenTracker creates an empty tracker.
func NewSeenTracker() *SeenTracker {
	return &SeenTracker{seen: make(map[Key]struct{})}
}

// Accept records k and returns true the first time k is presented, false
// on every later call with the same key.
func (s *SeenTracker) Accept(k Key) bool {
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	return true
}

// Seen reports whether k was accepted before, without recording it.
func (s *SeenTracker) Seen(k Key) bool {
	_, ok := s.seen[k]
	return ok
}

// Len returns the number of distinct keys accepted.
func (s *SeenTracker) Len() int {
	return len(s.seen)
}
