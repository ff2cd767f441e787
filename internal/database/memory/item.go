package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ClosetBot_Go/internal/domain"
	"github.com/osse101/ClosetBot_Go/internal/repository"
)

// ItemRepository is an in-process item store used for local runs and tests.
// Natural order is insertion order, like a fresh Mongo collection.
type ItemRepository struct {
	mu    sync.RWMutex
	items []domain.ClothingItem
}

// NewItemRepository creates an empty store.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

var _ repository.Item = (*ItemRepository)(nil)

func (r *ItemRepository) Create(_ context.Context, item *domain.ClothingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *ItemRepository) FindOneByName(_ context.Context, name string) (*domain.ClothingItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexByName(name); i >= 0 {
		item := r.items[i]
		return &item, nil
	}
	return nil, domain.ErrItemNotFound
}

func (r *ItemRepository) FindAll(_ context.Context) ([]domain.ClothingItem, error) {
	r.mu.RLock()
	out := make([]domain.ClothingItem, len(r.items))
	copy(out, r.items)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Location < out[j].Location
	})
	return out, nil
}

func (r *ItemRepository) FindByLocation(_ context.Context, location domain.Location) ([]domain.ClothingItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.ClothingItem{}
	for _, item := range r.items {
		if item.Location == location {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *ItemRepository) UpdateLocation(_ context.Context, item *domain.ClothingItem, location domain.Location, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i].Location = location
			r.items[i].LastMoved = now
			item.Location = location
			item.LastMoved = now
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (r *ItemRepository) DeleteOneByName(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexByName(name)
	if i < 0 {
		return 0, nil
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return 1, nil
}

func (r *ItemRepository) Ping(context.Context) error {
	return nil
}

// indexByName must be called with the lock held.
func (r *ItemRepository) indexByName(name string) int {
	for i := range r.items {
		if r.items[i].Name == name {
			return i
		}
	}
	return -1
}
