package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ClosetBot_Go/internal/domain"
	"github.com/osse101/ClosetBot_Go/internal/repository"
)

const itemColumns = `item_id, name, item_type, location, last_moved`

// ItemRepository implements repository.Item for PostgreSQL.
// Natural order is item_id, i.e. insertion order.
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

var _ repository.Item = (*ItemRepository)(nil)

// Create inserts a new item and stores the generated id on it
func (r *ItemRepository) Create(ctx context.Context, item *domain.ClothingItem) error {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO clothing_items (name, item_type, location, last_moved)
		 VALUES ($1, $2, $3, $4) RETURNING item_id`,
		item.Name, strToText(item.Type), string(item.Location), item.LastMoved,
	).Scan(&id)
	if err != nil {
		if isCheckViolation(err) {
			err = fmt.Errorf("%w: %v", domain.ErrInvalidLocation, err)
		}
		return domain.NewStoreError(opCreate, err)
	}
	item.ID = strconv.FormatInt(id, 10)
	return nil
}

// FindOneByName returns the oldest item with the given name
func (r *ItemRepository) FindOneByName(ctx context.Context, name string) (*domain.ClothingItem, error) {
	var row itemRow
	err := r.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM clothing_items WHERE name = $1 ORDER BY item_id LIMIT 1`,
		name,
	).Scan(&row.ID, &row.Name, &row.Type, &row.Location, &row.LastMoved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, domain.NewStoreError(opFindOneByName, err)
	}

	item, err := row.toDomain()
	if err != nil {
		return nil, domain.NewStoreError(opFindOneByName, err)
	}
	return item, nil
}

// FindAll returns every item ordered by location
func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.ClothingItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemColumns+` FROM clothing_items ORDER BY location COLLATE "C", item_id`)
	if err != nil {
		return nil, domain.NewStoreError(opFindAll, err)
	}
	items, err := collectItems(ctx, rows)
	if err != nil {
		return nil, domain.NewStoreError(opFindAll, err)
	}
	return items, nil
}

// FindByLocation returns the items held at location
func (r *ItemRepository) FindByLocation(ctx context.Context, location domain.Location) ([]domain.ClothingItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemColumns+` FROM clothing_items WHERE location = $1 ORDER BY item_id`,
		string(location))
	if err != nil {
		return nil, domain.NewStoreError(opFindByLocation, err)
	}
	items, err := collectItems(ctx, rows)
	if err != nil {
		return nil, domain.NewStoreError(opFindByLocation, err)
	}
	return items, nil
}

// UpdateLocation moves the item and stamps last_moved
func (r *ItemRepository) UpdateLocation(ctx context.Context, item *domain.ClothingItem, location domain.Location, now time.Time) error {
	id, err := parseItemID(item.ID)
	if err != nil {
		return domain.NewStoreError(opUpdateLocation, err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE clothing_items SET location = $2, last_moved = $3 WHERE item_id = $1`,
		id, string(location), now)
	if err != nil {
		return domain.NewStoreError(opUpdateLocation, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}

	item.Location = location
	item.LastMoved = now
	return nil
}

// DeleteOneByName removes the oldest item with the given name
func (r *ItemRepository) DeleteOneByName(ctx context.Context, name string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM clothing_items
		 WHERE item_id = (SELECT item_id FROM clothing_items WHERE name = $1 ORDER BY item_id LIMIT 1)`,
		name)
	if err != nil {
		return 0, domain.NewStoreError(opDeleteOne, err)
	}
	return tag.RowsAffected(), nil
}

// Ping checks database connectivity
func (r *ItemRepository) Ping(ctx context.Context) error {
	return domain.NewStoreError(opPing, r.pool.Ping(ctx))
}
