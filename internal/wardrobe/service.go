package wardrobe

import (
	"context"
	"strings"
	"time"

	"github.com/osse101/ClosetBot_Go/internal/concurrency"
	"github.com/osse101/ClosetBot_Go/internal/domain"
	"github.com/osse101/ClosetBot_Go/internal/logger"
	"github.com/osse101/ClosetBot_Go/internal/metrics"
	"github.com/osse101/ClosetBot_Go/internal/repository"
)

// Service defines the clothing tracker operations
type Service interface {
	// AddItem starts tracking a new item at the default location
	AddItem(ctx context.Context, name string) (*domain.ClothingItem, error)

	// MoveItem toggles the first item named name to the other household
	MoveItem(ctx context.Context, name string) (*domain.ClothingItem, error)

	// ListItems returns every tracked item ordered by location
	ListItems(ctx context.Context) ([]domain.ClothingItem, error)

	// ListItemsAt returns the items held at location
	ListItemsAt(ctx context.Context, location domain.Location) ([]domain.ClothingItem, error)

	// DeleteItem stops tracking the first item named name
	DeleteItem(ctx context.Context, name string) error
}

// Clock returns the current time
type Clock func() time.Time

type service struct {
	repo  repository.Item
	now   Clock
	locks *concurrency.LockManager
}

// NewService creates a wardrobe service. A nil clock means time.Now.
func NewService(repo repository.Item, now Clock) Service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, now: now, locks: concurrency.NewLockManager()}
}

func (s *service) AddItem(ctx context.Context, name string) (*domain.ClothingItem, error) {
	if isBlank(name) {
		return nil, domain.ErrMissingItemName
	}

	item := domain.NewClothingItem(name, s.now())
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Item added", "item", name, "item_id", item.ID)
	return item, nil
}

func (s *service) MoveItem(ctx context.Context, name string) (*domain.ClothingItem, error) {
	if isBlank(name) {
		return nil, domain.ErrMissingItemName
	}

	// find and update must not interleave with another move of the same name
	var item *domain.ClothingItem
	var from domain.Location
	err := s.locks.WithLock(name, func() error {
		found, err := s.repo.FindOneByName(ctx, name)
		if err != nil {
			return err
		}
		from = found.Location
		if err := s.repo.UpdateLocation(ctx, found, from.Toggle(), s.now()); err != nil {
			return err
		}
		item = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsMoved.WithLabelValues(string(item.Location)).Inc()
	logger.FromContext(ctx).Info("Item moved", "item", name, "from", from, "to", item.Location)
	return item, nil
}

func (s *service) ListItems(ctx context.Context) ([]domain.ClothingItem, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) ListItemsAt(ctx context.Context, location domain.Location) ([]domain.ClothingItem, error) {
	if !location.Valid() {
		return nil, domain.ErrInvalidLocation
	}
	return s.repo.FindByLocation(ctx, location)
}

func (s *service) DeleteItem(ctx context.Context, name string) error {
	if isBlank(name) {
		return domain.ErrMissingItemName
	}

	n, err := s.repo.DeleteOneByName(ctx, name)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}

	logger.FromContext(ctx).Info("Item deleted", "item", name)
	return nil
}

func isBlank(name string) bool {
	return strings.TrimSpace(name) == ""
}
