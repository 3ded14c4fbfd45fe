package predictions

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores predictions in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]StoredPrediction
	order []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]StoredPrediction)}
}

// Create stores the prediction.
func (r *MemoryRepo) Create(ctx context.Context, p StoredPrediction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.byID[p.ID] = p
	return nil
}

// GetByID returns a prediction by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (StoredPrediction, error) {
	if err := ctx.Err(); err != nil {
		return StoredPrediction{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return StoredPrediction{}, ErrNotFound
	}
	return p, nil
}

// List returns predictions newest first, optionally for one parse ID.
func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]StoredPrediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filter = filter.normalized()

	r.mu.RLock()
	matched := make([]StoredPrediction, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		p := r.byID[r.order[i]]
		if filter.ParseID == "" || p.ParseID == filter.ParseID {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	// insertion order breaks ties between equal timestamps
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Offset >= len(matched) {
		return []StoredPrediction{}, nil
	}
	end := len(matched)
	if filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}
	return matched[filter.Offset:end], nil
}
