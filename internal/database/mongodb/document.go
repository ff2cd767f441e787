package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/osse101/ClosetBot_Go/internal/domain"
)

// itemDocument is the stored shape of a clothing item.
type itemDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type,omitempty"`
	Location  string             `bson:"location"`
	LastMoved *time.Time         `bson:"lastMoved,omitempty"`
}

func newItemDocument(item *domain.ClothingItem) itemDocument {
	lastMoved := item.LastMoved
	return itemDocument{
		Name:      item.Name,
		Type:      item.Type,
		Location:  string(item.Location),
		LastMoved: &lastMoved,
	}
}

// toDomain normalizes a stored record. Records written before lastMoved
// existed fall back to the creation time embedded in their ObjectID.
func (d itemDocument) toDomain() (*domain.ClothingItem, error) {
	loc, err := domain.ParseLocation(d.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: item %s has location %q", domain.ErrInvalidRecord, d.ID.Hex(), d.Location)
	}

	item := &domain.ClothingItem{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Type:     d.Type,
		Location: loc,
	}
	switch {
	case d.LastMoved != nil:
		item.LastMoved = *d.LastMoved
	case !d.ID.IsZero():
		item.LastMoved = d.ID.Timestamp()
	}

	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("item %s: %w", d.ID.Hex(), err)
	}
	return item, nil
}
