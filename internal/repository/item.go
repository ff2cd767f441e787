package repository

import (
	"context"
	"time"

	"github.com/osse101/ClosetBot_Go/internal/domain"
)

// Item defines the interface for clothing item persistence.
//
// Lookups by name act on the first match in the store's natural order; names
// are not unique. Failures other than "not found" are *domain.StoreError.
type Item interface {
	Create(ctx context.Context, item *domain.ClothingItem) error
	FindOneByName(ctx context.Context, name string) (*domain.ClothingItem, error)
	// FindAll returns every item ordered by location.
	FindAll(ctx context.Context) ([]domain.ClothingItem, error)
	FindByLocation(ctx context.Context, location domain.Location) ([]domain.ClothingItem, error)
	UpdateLocation(ctx context.Context, item *domain.ClothingItem, location domain.Location, now time.Time) error
	// DeleteOneByName removes the first match and reports how many records went away.
	DeleteOneByName(ctx context.Context, name string) (int64, error)
	Ping(ctx context.Context) error
}
