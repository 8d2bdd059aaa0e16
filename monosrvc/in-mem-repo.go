package monosrvc

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemRepo backs local development and tests.
type InMemRepo struct {
	mu    sync.RWMutex
	monos map[uuid.UUID]Monograph
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		monos: make(map[uuid.UUID]Monograph),
	}
}

// Store implements Repo
func (r *InMemRepo) Store(ctx context.Context, m Monograph) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.monos[m.ID] = m
	return nil
}

// Get implements Repo
func (r *InMemRepo) Get(ctx context.Context, id uuid.UUID) (*Monograph, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.monos[id]; ok {
		return &m, nil
	}
	return nil, nil
}

// List implements Repo
func (r *InMemRepo) List(ctx context.Context) ([]Monograph, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Monograph, 0, len(r.monos))
	for _, m := range r.monos {
		res = append(res, m)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

// UpdateStatus implements Repo
func (r *InMemRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.monos[id]
	if !ok {
		return nil
	}
	m.Status = status
	m.UpdatedAt = updatedAt
	r.monos[id] = m
	return nil
}

// Delete implements Repo
func (r *InMemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.monos, id)
	return nil
}
