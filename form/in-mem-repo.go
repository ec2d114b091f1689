package form

import (
	"context"
	"sync"
)

// InMemRepo is a SubmissionRepo kept in memory, used by tests and local
// development.
type InMemRepo struct {
	mu    sync.RWMutex
	subms []Submission
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{}
}

// FindByAny implements SubmissionRepo.
func (r *InMemRepo) FindByAny(ctx context.Context, keys []UniqueKey) (*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, subm := range r.subms {
		for _, key := range keys {
			if subm.Fields.Str(key.Field) == key.Value {
				found := subm
				return &found, nil
			}
		}
	}
	return nil, nil
}

// Insert implements SubmissionRepo.
func (r *InMemRepo) Insert(ctx context.Context, subm Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms = append(r.subms, subm)
	return nil
}

// All returns a snapshot of the stored submissions.
func (r *InMemRepo) All() []Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Submission, len(r.subms))
	copy(out, r.subms)
	return out
}
