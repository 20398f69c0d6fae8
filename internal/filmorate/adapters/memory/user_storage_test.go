package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/adapters/memory"
	"filmorate/internal/filmorate/domain/entities"
)

func newUser(login string) *entities.User {
	return &entities.User{
		Email:    login + "@example.com",
		Login:    login,
		Birthday: entities.NewDate(1990, time.June, 15),
	}
}

func TestUserStorageAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns strictly increasing ids starting from 1", func(t *testing.T) {
		storage := memory.NewUserStorage()

		first, err := storage.Add(ctx, newUser("first"))
		require.NoError(t, err)
		second, err := storage.Add(ctx, newUser("second"))
		require.NoError(t, err)

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
	})

	t.Run("blank name falls back to login", func(t *testing.T) {
		storage := memory.NewUserStorage()

		created, err := storage.Add(ctx, newUser("jdoe"))
		require.NoError(t, err)

		assert.Equal(t, "jdoe", created.Name)
		assert.Equal(t, "jdoe", created.EffectiveName())
	})

	t.Run("rejects invalid user", func(t *testing.T) {
		storage := memory.NewUserStorage()

		user := newUser("bad login")
		user.Email = "broken"

		_, err := storage.Add(ctx, user)

		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Messages, 2)
	})
}

func TestUserStorageUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("without id fails with conditions not met", func(t *testing.T) {
		storage := memory.NewUserStorage()

		_, err := storage.Update(ctx, newUser("noid"))

		var conditionsErr *entities.ConditionsNotMetError
		require.ErrorAs(t, err, &conditionsErr)
	})

	t.Run("with unknown id fails with not found", func(t *testing.T) {
		storage := memory.NewUserStorage()

		user := newUser("ghost")
		user.ID = 42
		_, err := storage.Update(ctx, user)

		var notFoundErr *entities.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, entities.EntityUser, notFoundErr.Entity)
	})

	t.Run("preserves friends and re-applies name fallback", func(t *testing.T) {
		storage := memory.NewUserStorage()

		alice, err := storage.Add(ctx, newUser("alice"))
		require.NoError(t, err)
		bob, err := storage.Add(ctx, newUser("bob"))
		require.NoError(t, err)
		require.NoError(t, storage.AddFriend(ctx, alice.ID, bob.ID))

		replacement := newUser("alice2")
		replacement.ID = alice.ID

		updated, err := storage.Update(ctx, replacement)
		require.NoError(t, err)

		assert.Equal(t, "alice2", updated.Login)
		assert.Equal(t, "alice2", updated.Name, "fallback must follow the new login")
		assert.True(t, updated.Friends.Contains(bob.ID), "update must not clobber friends")
	})
}

func TestUserStorageFriends(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*memory.UserStorage, *entities.User, *entities.User) {
		t.Helper()
		storage := memory.NewUserStorage()
		alice, err := storage.Add(ctx, newUser("alice"))
		require.NoError(t, err)
		bob, err := storage.Add(ctx, newUser("bob"))
		require.NoError(t, err)
		return storage, alice, bob
	}

	t.Run("friendship is bidirectional", func(t *testing.T) {
		storage, alice, bob := setup(t)

		require.NoError(t, storage.AddFriend(ctx, alice.ID, bob.ID))

		storedAlice, err := storage.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		storedBob, err := storage.GetByID(ctx, bob.ID)
		require.NoError(t, err)

		assert.True(t, storedAlice.Friends.Contains(bob.ID))
		assert.True(t, storedBob.Friends.Contains(alice.ID))
	})

	t.Run("re-adding an existing friendship is a no-op", func(t *testing.T) {
		storage, alice, bob := setup(t)

		require.NoError(t, storage.AddFriend(ctx, alice.ID, bob.ID))
		require.NoError(t, storage.AddFriend(ctx, alice.ID, bob.ID))

		storedAlice, err := storage.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, storedAlice.Friends.Len())
	})

	t.Run("remove is the exact inverse of add", func(t *testing.T) {
		storage, alice, bob := setup(t)

		require.NoError(t, storage.AddFriend(ctx, alice.ID, bob.ID))
		require.NoError(t, storage.RemoveFriend(ctx, alice.ID, bob.ID))

		storedAlice, err := storage.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		storedBob, err := storage.GetByID(ctx, bob.ID)
		require.NoError(t, err)

		assert.Equal(t, 0, storedAlice.Friends.Len())
		assert.Equal(t, 0, storedBob.Friends.Len())
	})

	t.Run("removing an absent friendship is a no-op", func(t *testing.T) {
		storage, alice, bob := setup(t)

		require.NoError(t, storage.RemoveFriend(ctx, alice.ID, bob.ID))
	})

	t.Run("each missing side fails independently with not found", func(t *testing.T) {
		storage, alice, _ := setup(t)

		err := storage.AddFriend(ctx, alice.ID, 404)
		var notFoundErr *entities.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, int64(404), notFoundErr.ID)

		err = storage.AddFriend(ctx, 405, alice.ID)
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, int64(405), notFoundErr.ID)
	})

	t.Run("self friendship is permitted", func(t *testing.T) {
		storage, alice, _ := setup(t)

		require.NoError(t, storage.AddFriend(ctx, alice.ID, alice.ID))

		storedAlice, err := storage.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.True(t, storedAlice.Friends.Contains(alice.ID))
	})
}

func TestUserStorageClear(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewUserStorage()

	_, err := storage.Add(ctx, newUser("doomed"))
	require.NoError(t, err)

	storage.Clear(ctx)
	assert.Empty(t, storage.FindAll(ctx))

	recreated, err := storage.Add(ctx, newUser("reborn"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), recreated.ID, "clear must reset id allocation")
}

// Счетчики фильмов и пользователей независимы даже при чередовании вставок.
func TestSequencesAreIndependent(t *testing.T) {
	ctx := context.Background()
	filmStorage := memory.NewFilmStorage()
	userStorage := memory.NewUserStorage()

	film1, err := filmStorage.Add(ctx, newFilm("one"))
	require.NoError(t, err)
	user1, err := userStorage.Add(ctx, newUser("one"))
	require.NoError(t, err)
	film2, err := filmStorage.Add(ctx, newFilm("two"))
	require.NoError(t, err)
	user2, err := userStorage.Add(ctx, newUser("two"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), film1.ID)
	assert.Equal(t, int64(2), film2.ID)
	assert.Equal(t, int64(1), user1.ID)
	assert.Equal(t, int64(2), user2.ID)
}
