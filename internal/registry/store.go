package registry

import "sync"

// Summary is the derived per-role breakdown of the registration list.
type Summary struct {
	Total    int `json:"total"`
	Students int `json:"studentCount"`
	Teachers int `json:"teacherCount"`
}

// Store holds the process-lifetime registration list, newest first.
// Records are only ever prepended; nothing updates or deletes them.
// The HTTP layer serves concurrent requests, so access is guarded even
// though Submit is the only writer.
type Store struct {
	mu   sync.RWMutex
	list []Registration
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Prepend puts a freshly submitted registration at the head of the
// list so the newest entry renders first.
func (s *Store) Prepend(r Registration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = append([]Registration{r}, s.list...)
}

// List returns a copy of the list in display order, newest first.
func (s *Store) List() []Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Registration, len(s.list))
	copy(out, s.list)
	return out
}

// Len returns the number of registrations held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}

// Summary recomputes the counts on every read so they can never go
// stale relative to the list.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := Summary{Total: len(s.list)}
	for _, r := range s.list {
		switch r.Details.Role() {
		case RoleStudent:
			sum.Students++
		case RoleTeacher:
			sum.Teachers++
		}
	}
	return sum
}
