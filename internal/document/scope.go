package document

import "sync"

// Scope collects releases so that everything acquired by a component can be
// given back in one call, in reverse acquisition order.
type Scope struct {
	mu       sync.Mutex
	releases []Release
	closed   bool
}

// Add records r. Adding to a closed scope releases r immediately.
func (s *Scope) Add(r Release) {
	if r == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		r()
		return
	}
	s.releases = append(s.releases, r)
	s.mu.Unlock()
}

// Close runs every recorded release once. Later calls do nothing.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	releases := s.releases
	s.releases = nil
	s.mu.Unlock()

	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
}

// Closed reports whether Close has run.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
