package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/ClosetBot_Go/internal/config"
	"github.com/osse101/ClosetBot_Go/internal/database"
	"github.com/osse101/ClosetBot_Go/internal/database/memory"
	"github.com/osse101/ClosetBot_Go/internal/database/mongodb"
	"github.com/osse101/ClosetBot_Go/internal/database/postgres"
	"github.com/osse101/ClosetBot_Go/internal/logger"
	"github.com/osse101/ClosetBot_Go/internal/metrics"
	"github.com/osse101/ClosetBot_Go/internal/repository"
)

// CloseFunc releases a store connection
type CloseFunc func(ctx context.Context) error

func noopClose(context.Context) error { return nil }

// OpenStore connects the item store selected by cfg.Driver and wraps it with
// latency metrics. The returned CloseFunc must be called on shutdown.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (repository.Item, CloseFunc, error) {
	var (
		store   repository.Item
		closeFn CloseFunc
		err     error
	)

	switch cfg.Driver {
	case config.StoreDriverMongo:
		store, closeFn, err = openMongo(ctx, cfg)
	case config.StoreDriverPostgres:
		store, closeFn, err = openPostgres(ctx, cfg)
	case config.StoreDriverMemory:
		store, closeFn = memory.NewItemRepository(), noopClose
	default:
		err = fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	logger.Info(LogMsgStoreOpened, "driver", cfg.Driver)
	return metrics.InstrumentItemStore(store), closeFn, nil
}

func openMongo(ctx context.Context, cfg config.StoreConfig) (repository.Item, CloseFunc, error) {
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}

	repo := mongodb.NewItemRepository(client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection))

	idxCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := repo.EnsureIndexes(idxCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedEnsureIndex, err)
	}

	return repo, client.Disconnect, nil
}

func openPostgres(ctx context.Context, cfg config.StoreConfig) (repository.Item, CloseFunc, error) {
	connCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	pool, err := database.NewPool(connCtx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	return postgres.NewItemRepository(pool), func(context.Context) error {
		pool.Close()
		return nil
	}, nil
}
