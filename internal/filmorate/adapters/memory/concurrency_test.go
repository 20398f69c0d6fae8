package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/adapters/memory"
)

func TestFilmStorageConcurrentLikes(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewFilmStorage()

	created, err := storage.Add(ctx, newFilm("contended"))
	require.NoError(t, err)

	const likers = 100

	var wg sync.WaitGroup
	for i := 0; i < likers; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			assert.NoError(t, storage.AddLike(ctx, created.ID, userID))
		}(int64(i + 1))
	}
	wg.Wait()

	stored, err := storage.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, likers, stored.LikeCount())
}

func TestUserStorageConcurrentFriendships(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewUserStorage()

	hub, err := storage.Add(ctx, newUser("hub"))
	require.NoError(t, err)

	const others = 50
	ids := make([]int64, 0, others)
	for i := 0; i < others; i++ {
		user, err := storage.Add(ctx, newUser("user"+string(rune('a'+i%26))+string(rune('a'+i/26))))
		require.NoError(t, err)
		ids = append(ids, user.ID)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(friendID int64) {
			defer wg.Done()
			assert.NoError(t, storage.AddFriend(ctx, hub.ID, friendID))
		}(id)
	}
	wg.Wait()

	storedHub, err := storage.GetByID(ctx, hub.ID)
	require.NoError(t, err)
	assert.Equal(t, others, storedHub.Friends.Len())

	// Каждая связь видна с обеих сторон.
	for _, id := range ids {
		friend, err := storage.GetByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, friend.Friends.Contains(hub.ID))
	}
}
