// Package storagetest contiene la batería de pruebas que todo adapter de
// animals.Repository debe pasar.
package storagetest

import (
	"context"
	"testing"
	"time"

	"zoo-management/internal/domain/animals"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunAnimalRepository corre la batería contra un repo nuevo por subtest.
func RunAnimalRepository(t *testing.T, newRepo func(t *testing.T) animals.Repository) {
	t.Helper()

	base := time.Date(2025, 10, 7, 9, 30, 0, 0, time.UTC)
	mk := func(name string, offset time.Duration) animals.Animal {
		ts := base.Add(offset)
		return animals.Animal{
			ID:           uuid.NewString(),
			Name:         name,
			Breed:        "Dog",
			FeedingHabit: "Omnivorous",
			CreatedAt:    ts,
			UpdatedAt:    ts,
		}
	}

	t.Run("create then get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		in := mk("Oreo", 0)
		require.NoError(t, repo.Create(ctx, in))

		got, err := repo.GetByID(ctx, in.ID)
		require.NoError(t, err)
		assert.Equal(t, in.ID, got.ID)
		assert.Equal(t, in.Name, got.Name)
		assert.Equal(t, in.Breed, got.Breed)
		assert.Equal(t, in.FeedingHabit, got.FeedingHabit)
		assert.True(t, in.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", in.CreatedAt, got.CreatedAt)
		assert.True(t, in.UpdatedAt.Equal(got.UpdatedAt), "updated_at %v != %v", in.UpdatedAt, got.UpdatedAt)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := mk("Oreo", 0)
		require.NoError(t, repo.Create(ctx, a))
		assert.Error(t, repo.Create(ctx, a))
	})

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, animals.ErrNotFound)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := mk("Oreo", 0)
		require.NoError(t, repo.Create(ctx, a))

		a.FeedingHabit = "Carnivorous"
		a.UpdatedAt = a.UpdatedAt.Add(time.Minute)
		require.NoError(t, repo.Update(ctx, a))

		got, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Carnivorous", got.FeedingHabit)
		assert.Equal(t, "Oreo", got.Name)
		assert.True(t, a.UpdatedAt.Equal(got.UpdatedAt))
	})

	t.Run("update missing returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.Update(context.Background(), mk("Ghost", 0))
		assert.ErrorIs(t, err, animals.ErrNotFound)
	})

	t.Run("list is ordered by creation", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		empty, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		third := mk("Tiger", 2*time.Second)
		first := mk("Oreo", 0)
		second := mk("Milo", time.Second)
		for _, a := range []animals.Animal{third, first, second} {
			require.NoError(t, repo.Create(ctx, a))
		}

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{items[0].ID, items[1].ID, items[2].ID})
	})

	t.Run("delete removes and reports missing", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := mk("Oreo", 0)
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Delete(ctx, a.ID))

		_, err := repo.GetByID(ctx, a.ID)
		assert.ErrorIs(t, err, animals.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, a.ID), animals.ErrNotFound)
	})
}
