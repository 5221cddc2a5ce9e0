package generations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores generations in memory and is safe for concurrent use.
// It backs dev environments without a DATABASE_URL and handler tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Generation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Generation)}
}

// Create stores the generation.
func (r *MemoryRepo) Create(ctx context.Context, gen Generation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if gen.ID == "" {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[gen.ID] = gen
	return nil
}

// GetByID returns a generation by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Generation, error) {
	if err := ctx.Err(); err != nil {
		return Generation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.byID[id]
	if !ok {
		return Generation{}, ErrNotFound
	}
	return gen, nil
}

// ListRecent returns generations newest first, capped at limit.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Generation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	out := make([]Generation, 0, len(r.byID))
	for _, gen := range r.byID {
		out = append(out, gen)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
