package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/adapters/memory"
	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/domain/validation"
)

func newFilm(name string) *entities.Film {
	return &entities.Film{
		Name:        name,
		Description: "description of " + name,
		ReleaseDate: entities.NewDate(1980, time.May, 1),
		Duration:    120,
	}
}

func TestFilmStorageAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns strictly increasing ids starting from 1", func(t *testing.T) {
		storage := memory.NewFilmStorage()

		first, err := storage.Add(ctx, newFilm("first"))
		require.NoError(t, err)
		second, err := storage.Add(ctx, newFilm("second"))
		require.NoError(t, err)

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
	})

	t.Run("rejects invalid film with full violation list", func(t *testing.T) {
		storage := memory.NewFilmStorage()

		_, err := storage.Add(ctx, &entities.Film{})

		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Messages, 4)
		assert.Empty(t, storage.FindAll(ctx))
	})

	t.Run("ignores likes supplied by the caller", func(t *testing.T) {
		storage := memory.NewFilmStorage()

		film := newFilm("liked")
		film.Likes = entities.NewIDSet(42)

		created, err := storage.Add(ctx, film)
		require.NoError(t, err)
		assert.Equal(t, 0, created.LikeCount())
	})
}

func TestFilmStorageUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("without id fails with conditions not met", func(t *testing.T) {
		storage := memory.NewFilmStorage()

		_, err := storage.Update(ctx, newFilm("no id"))

		var conditionsErr *entities.ConditionsNotMetError
		require.ErrorAs(t, err, &conditionsErr)
	})

	t.Run("with unknown id fails with not found", func(t *testing.T) {
		storage := memory.NewFilmStorage()

		film := newFilm("ghost")
		film.ID = 99
		_, err := storage.Update(ctx, film)

		var notFoundErr *entities.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, entities.EntityFilm, notFoundErr.Entity)
		assert.Equal(t, int64(99), notFoundErr.ID)
	})

	t.Run("replaces mutable fields and preserves likes", func(t *testing.T) {
		storage := memory.NewFilmStorage()

		created, err := storage.Add(ctx, newFilm("original"))
		require.NoError(t, err)
		require.NoError(t, storage.AddLike(ctx, created.ID, 7))

		replacement := newFilm("renamed")
		replacement.ID = created.ID
		replacement.Duration = 90

		updated, err := storage.Update(ctx, replacement)
		require.NoError(t, err)

		assert.Equal(t, "renamed", updated.Name)
		assert.Equal(t, 90, updated.Duration)
		assert.True(t, updated.Likes.Contains(7), "update must not clobber likes")
	})

	t.Run("validates before applying", func(t *testing.T) {
		storage := memory.NewFilmStorage()

		created, err := storage.Add(ctx, newFilm("valid"))
		require.NoError(t, err)

		broken := newFilm("broken")
		broken.ID = created.ID
		broken.ReleaseDate = entities.NewDate(1895, time.December, 27)

		_, err = storage.Update(ctx, broken)

		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Messages, validation.MsgFilmReleaseDateEarly)

		stored, err := storage.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "valid", stored.Name)
	})
}

func TestFilmStorageLikes(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewFilmStorage()

	created, err := storage.Add(ctx, newFilm("likable"))
	require.NoError(t, err)

	t.Run("add like is idempotent", func(t *testing.T) {
		require.NoError(t, storage.AddLike(ctx, created.ID, 5))
		require.NoError(t, storage.AddLike(ctx, created.ID, 5))

		stored, err := storage.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.LikeCount())
	})

	t.Run("remove like of a non-member is a no-op", func(t *testing.T) {
		require.NoError(t, storage.RemoveLike(ctx, created.ID, 1000))

		stored, err := storage.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.LikeCount())
	})

	t.Run("like of unknown film fails with not found", func(t *testing.T) {
		err := storage.AddLike(ctx, 404, 5)

		var notFoundErr *entities.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})
}

func TestFilmStorageFindAll(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewFilmStorage()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		_, err := storage.Add(ctx, newFilm(name))
		require.NoError(t, err)
	}

	films := storage.FindAll(ctx)
	require.Len(t, films, 3)
	for i, film := range films {
		assert.Equal(t, names[i], film.Name, "insertion order must be preserved")
	}
}

func TestFilmStorageReturnsCopies(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewFilmStorage()

	created, err := storage.Add(ctx, newFilm("protected"))
	require.NoError(t, err)

	created.Name = "mutated"
	created.AddLike(1)

	stored, err := storage.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "protected", stored.Name)
	assert.Equal(t, 0, stored.LikeCount())
}

func TestFilmStorageClear(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewFilmStorage()

	_, err := storage.Add(ctx, newFilm("doomed"))
	require.NoError(t, err)

	storage.Clear(ctx)
	assert.Empty(t, storage.FindAll(ctx))

	recreated, err := storage.Add(ctx, newFilm("reborn"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), recreated.ID, "clear must reset id allocation")
}
