package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/osse101/ClosetBot_Go/internal/domain"
)

func TestItemRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var container *tcmongo.MongoDBContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		container, err = tcmongo.Run(ctx, "mongo:7")
	}()
	if err != nil {
		t.Skipf("Skipping integration test, could not start mongo: %v", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := Connect(ctx, uri, 10*time.Second)
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	repo := NewItemRepository(client.Database("closetbot_test").Collection(DefaultCollection))
	require.NoError(t, repo.EnsureIndexes(ctx))
	require.NoError(t, repo.Ping(ctx))

	now := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("full lifecycle", func(t *testing.T) {
		item := domain.NewClothingItem("Blue Shirt", now)
		require.NoError(t, repo.Create(ctx, item))

		found, err := repo.FindOneByName(ctx, "Blue Shirt")
		require.NoError(t, err)
		assert.Equal(t, item.ID, found.ID)
		assert.True(t, found.LastMoved.Equal(now))

		require.NoError(t, repo.UpdateLocation(ctx, found, domain.LocationGirlfriendHouse, now.Add(time.Minute)))

		theirs, err := repo.FindByLocation(ctx, domain.LocationGirlfriendHouse)
		require.NoError(t, err)
		require.Len(t, theirs, 1)
		assert.Equal(t, "Blue Shirt", theirs[0].Name)

		mine, err := repo.FindByLocation(ctx, domain.LocationMyHouse)
		require.NoError(t, err)
		assert.Empty(t, mine)

		n, err := repo.DeleteOneByName(ctx, "Blue Shirt")
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		_, err = repo.FindOneByName(ctx, "Blue Shirt")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}
