package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/osse101/ClosetBot_Go/internal/domain"
	"github.com/osse101/ClosetBot_Go/internal/repository"
)

// ItemRepository implements repository.Item over a MongoDB collection.
type ItemRepository struct {
	col *mongo.Collection
}

// NewItemRepository creates an ItemRepository backed by col.
func NewItemRepository(col *mongo.Collection) *ItemRepository {
	return &ItemRepository{col: col}
}

var _ repository.Item = (*ItemRepository)(nil)

// EnsureIndexes creates the lookup indexes. Names are not unique.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldName, Value: 1}}},
		{Keys: bson.D{{Key: fieldLocation, Value: 1}}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, models); err != nil {
		return domain.NewStoreError(opEnsureIndexes, err)
	}
	slog.Default().Debug(LogMsgIndexesReady, "collection", r.col.Name())
	return nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.ClothingItem) error {
	res, err := r.col.InsertOne(ctx, newItemDocument(item))
	if err != nil {
		return domain.NewStoreError(opCreate, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	return nil
}

func (r *ItemRepository) FindOneByName(ctx context.Context, name string) (*domain.ClothingItem, error) {
	var doc itemDocument
	err := r.col.FindOne(ctx, bson.M{fieldName: name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, domain.NewStoreError(opFindOneByName, err)
	}

	item, err := doc.toDomain()
	if err != nil {
		return nil, domain.NewStoreError(opFindOneByName, err)
	}
	return item, nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.ClothingItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: fieldLocation, Value: 1}})
	items, err := r.find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, domain.NewStoreError(opFindAll, err)
	}
	// Legacy spellings sort apart from their normalized value server-side.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Location < items[j].Location
	})
	return items, nil
}

func (r *ItemRepository) FindByLocation(ctx context.Context, location domain.Location) ([]domain.ClothingItem, error) {
	forms := bson.A{}
	for _, f := range location.StoredForms() {
		forms = append(forms, f)
	}
	if location == domain.DefaultLocation {
		// $in with null also matches documents missing the field.
		forms = append(forms, nil)
	}

	items, err := r.find(ctx, bson.M{fieldLocation: bson.M{"$in": forms}})
	if err != nil {
		return nil, domain.NewStoreError(opFindByLocation, err)
	}
	return items, nil
}

func (r *ItemRepository) UpdateLocation(ctx context.Context, item *domain.ClothingItem, location domain.Location, now time.Time) error {
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return domain.NewStoreError(opUpdateLocation, fmt.Errorf("%w: id %q", domain.ErrInvalidRecord, item.ID))
	}

	update := bson.M{"$set": bson.M{
		fieldLocation:  string(location),
		fieldLastMoved: now,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{fieldID: oid}, update)
	if err != nil {
		return domain.NewStoreError(opUpdateLocation, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrItemNotFound
	}

	item.Location = location
	item.LastMoved = now
	return nil
}

func (r *ItemRepository) DeleteOneByName(ctx context.Context, name string) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{fieldName: name})
	if err != nil {
		return 0, domain.NewStoreError(opDeleteOne, err)
	}
	return res.DeletedCount, nil
}

func (r *ItemRepository) Ping(ctx context.Context) error {
	return domain.NewStoreError(opPing, r.col.Database().Client().Ping(ctx, readpref.Primary()))
}

// find decodes every matching document, skipping records that fail
// normalization so one bad record does not hide the rest.
func (r *ItemRepository) find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]domain.ClothingItem, error) {
	cur, err := r.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []domain.ClothingItem{}
	for cur.Next(ctx) {
		var doc itemDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		item, err := doc.toDomain()
		if err != nil {
			slog.Default().WarnContext(ctx, LogMsgSkippedItem, "error", err)
			continue
		}
		items = append(items, *item)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
