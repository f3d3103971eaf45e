package fbsrvc

import (
	"context"
	"sync"
)

// InMemRepo is a map-backed Repo with the same uniqueness semantics as the
// Postgres implementation. Used in tests.
type InMemRepo struct {
	mu     sync.RWMutex
	nextID int64
	byUser map[int64]struct{}
	rows   []Submission
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		byUser: make(map[int64]struct{}),
	}
}

// EnsureSchema implements Repo
func (r *InMemRepo) EnsureSchema(ctx context.Context) error {
	return nil
}

// Insert implements Repo
func (r *InMemRepo) Insert(ctx context.Context, username string, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[userID]; ok {
		return ErrDuplicateUserID
	}
	r.nextID++
	r.byUser[userID] = struct{}{}
	r.rows = append(r.rows, Submission{
		ID:       r.nextID,
		UserID:   userID,
		Username: username,
	})
	return nil
}

// Count implements Repo
func (r *InMemRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

// ListRecent implements Repo
func (r *InMemRepo) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subms := make([]Submission, 0, limit)
	for i := len(r.rows) - 1; i >= 0 && len(subms) < limit; i-- {
		subms = append(subms, r.rows[i])
	}
	return subms, nil
}
