package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/ClosetBot_Go/internal/domain"
	"github.com/osse101/ClosetBot_Go/internal/repository"
)

// instrumentedStore records latency and failures of every item store call.
type instrumentedStore struct {
	next repository.Item
}

// InstrumentItemStore wraps next with Prometheus instrumentation.
func InstrumentItemStore(next repository.Item) repository.Item {
	return &instrumentedStore{next: next}
}

// observe records one call. Not-found is an answer, not a failure.
func observe(op string, start time.Time, err error) {
	StoreOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil && !errors.Is(err, domain.ErrItemNotFound) {
		StoreErrors.WithLabelValues(op).Inc()
	}
}

func (s *instrumentedStore) Create(ctx context.Context, item *domain.ClothingItem) error {
	start := time.Now()
	err := s.next.Create(ctx, item)
	observe("create", start, err)
	return err
}

func (s *instrumentedStore) FindOneByName(ctx context.Context, name string) (*domain.ClothingItem, error) {
	start := time.Now()
	item, err := s.next.FindOneByName(ctx, name)
	observe("find_one_by_name", start, err)
	return item, err
}

func (s *instrumentedStore) FindAll(ctx context.Context) ([]domain.ClothingItem, error) {
	start := time.Now()
	items, err := s.next.FindAll(ctx)
	observe("find_all", start, err)
	return items, err
}

func (s *instrumentedStore) FindByLocation(ctx context.Context, location domain.Location) ([]domain.ClothingItem, error) {
	start := time.Now()
	items, err := s.next.FindByLocation(ctx, location)
	observe("find_by_location", start, err)
	return items, err
}

func (s *instrumentedStore) UpdateLocation(ctx context.Context, item *domain.ClothingItem, location domain.Location, now time.Time) error {
	start := time.Now()
	err := s.next.UpdateLocation(ctx, item, location, now)
	observe("update_location", start, err)
	return err
}

func (s *instrumentedStore) DeleteOneByName(ctx context.Context, name string) (int64, error) {
	start := time.Now()
	n, err := s.next.DeleteOneByName(ctx, name)
	observe("delete_one_by_name", start, err)
	return n, err
}

func (s *instrumentedStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.next.Ping(ctx)
	observe("ping", start, err)
	return err
}
