package registry

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service owns submission: validation, record construction, and the
// single write path into the store.
type Service struct {
	store *Store
	now   func() time.Time
}

// NewService creates a service backed by the given store.
func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submit validates the form values and, when they pass, prepends a new
// registration with a fresh id and the current timestamp. On failure
// the list is untouched and the error is a *ValidationError.
func (s *Service) Submit(v FormValues) (Registration, error) {
	if err := v.Validate(); err != nil {
		return Registration{}, err
	}
	reg := Registration{
		ID:        uuid.NewString(),
		FullName:  strings.TrimSpace(v.FullName),
		Email:     strings.TrimSpace(v.Email),
		Details:   v.details(),
		CreatedAt: s.now(),
	}
	s.store.Prepend(reg)
	return reg, nil
}

// List returns the current registrations, newest first.
func (s *Service) List() []Registration {
	return s.store.List()
}

// Summary returns the derived counts for the current list.
func (s *Service) Summary() Summary {
	return s.store.Summary()
}
