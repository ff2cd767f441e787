package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/ClosetBot_Go/internal/domain"
	"github.com/osse101/ClosetBot_Go/internal/logger"
)

// ---- Common Helper Functions ----

// strToText converts a string to pgtype.Text; the empty string is NULL.
func strToText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// parseItemID parses the decimal form of item_id.
func parseItemID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", domain.ErrInvalidRecord, id)
	}
	return n, nil
}

// isCheckViolation reports whether err is a CHECK constraint failure.
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeCheckViolation
}

// itemRow is one scanned clothing_items row.
type itemRow struct {
	ID        int64
	Name      string
	Type      pgtype.Text
	Location  string
	LastMoved pgtype.Timestamptz
}

func (r itemRow) toDomain() (*domain.ClothingItem, error) {
	loc, err := domain.ParseLocation(r.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: item %d has location %q", domain.ErrInvalidRecord, r.ID, r.Location)
	}
	item := &domain.ClothingItem{
		ID:        strconv.FormatInt(r.ID, 10),
		Name:      r.Name,
		Type:      r.Type.String,
		Location:  loc,
		LastMoved: r.LastMoved.Time,
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("item %d: %w", r.ID, err)
	}
	return item, nil
}

// collectItems scans rows into normalized items, skipping records that fail
// normalization.
func collectItems(ctx context.Context, rows pgx.Rows) ([]domain.ClothingItem, error) {
	defer rows.Close()

	items := []domain.ClothingItem{}
	for rows.Next() {
		var r itemRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Type, &r.Location, &r.LastMoved); err != nil {
			return nil, err
		}
		item, err := r.toDomain()
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgSkippedItem, "error", err)
			continue
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
