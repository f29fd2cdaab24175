package memory

import (
	"context"
	"strings"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
)

// fanRepository implements repository.FanRepository on the process store.
type fanRepository struct {
	store *Store
}

// NewFanRepository is the constructor for the fan directory adapter.
func NewFanRepository(store *Store) repository.FanRepository {
	return &fanRepository{store: store}
}

// List returns all fans in insertion order.
func (r *fanRepository) List(ctx context.Context) ([]*entity.Fan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	fans := make([]*entity.Fan, 0, len(r.store.fanOrder))
	for _, id := range r.store.fanOrder {
		fans = append(fans, cloneFan(r.store.fans[id]))
	}

	return fans, nil
}

// FindByID retrieves a single fan by its ID.
func (r *fanRepository) FindByID(ctx context.Context, id string) (*entity.Fan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	fan, ok := r.store.fans[id]
	if !ok {
		return nil, repository.ErrFanNotFound
	}

	return cloneFan(fan), nil
}

// FindByHandle resolves a handle through the secondary index,
// case-insensitively.
func (r *fanRepository) FindByHandle(ctx context.Context, handle string) (*entity.Fan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.handleIndex[normalizeHandle(handle)]
	if !ok {
		return nil, repository.ErrFanNotFound
	}
	fan, ok := r.store.fans[id]
	if !ok {
		return nil, repository.ErrFanNotFound
	}

	return cloneFan(fan), nil
}

// Create inserts a new fan, assigning its ID and default values.
func (r *fanRepository) Create(ctx context.Context, fan *entity.Fan) (*entity.Fan, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := cloneFan(fan)
	stored.ID = uuid.NewString()
	if !stored.Status.IsValid() {
		stored.Status = entity.FanStatusActive
	}
	if stored.TotalAmount == "" {
		stored.TotalAmount = "0.00"
	}
	if stored.LastActivity == nil {
		now := time.Now()
		stored.LastActivity = &now
	}

	r.store.fans[stored.ID] = stored
	r.store.fanOrder = append(r.store.fanOrder, stored.ID)

	return cloneFan(stored), nil
}

// Update replaces the stored fan keyed by fan.ID.
func (r *fanRepository) Update(ctx context.Context, fan *entity.Fan) (*entity.Fan, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.fans[fan.ID]; !ok {
		return nil, repository.ErrFanNotFound
	}

	stored := cloneFan(fan)
	r.store.fans[fan.ID] = stored

	return cloneFan(stored), nil
}

// Search matches the query as a case-insensitive substring of the name.
func (r *fanRepository) Search(ctx context.Context, query string) ([]*entity.Fan, error) {
	if query == "" {
		return r.List(ctx)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	needle := strings.ToLower(query)
	var fans []*entity.Fan
	for _, id := range r.store.fanOrder {
		fan := r.store.fans[id]
		if strings.Contains(strings.ToLower(fan.Name), needle) {
			fans = append(fans, cloneFan(fan))
		}
	}

	return fans, nil
}

// RegisterHandle adds a handle alias for an existing fan.
func (r *fanRepository) RegisterHandle(ctx context.Context, handle, fanID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.fans[fanID]; !ok {
		return repository.ErrFanNotFound
	}
	r.store.handleIndex[normalizeHandle(handle)] = fanID

	return nil
}
