package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaqzi/park-reviewer/internal/reviewing"
	"github.com/gaqzi/park-reviewer/test/a"
)

// StorageTest is a base suite used to test across the implementations of reviewing.Storage.
// It's implemented this way to ensure that the implementations can be used interchangeably, and to allow for the use
// of lighter implementations during testing.
func StorageTest(t *testing.T, ctx context.Context, storeFactory func(t *testing.T) reviewing.Storage) {
	t.Run("Exists", func(t *testing.T) {
		t.Run("is false before anything has been stored", func(t *testing.T) {
			store := storeFactory(t)

			ok, err := store.Exists(ctx)

			require.NoError(t, err)
			require.False(t, ok, "expected a new store to have nothing backing it")
		})

		t.Run("is true after saving, even when saving nothing", func(t *testing.T) {
			store := storeFactory(t)
			require.NoError(t, store.Save(ctx, reviewing.Reviews{}))

			ok, err := store.Exists(ctx)

			require.NoError(t, err)
			require.True(t, ok)
		})
	})

	t.Run("Load", func(t *testing.T) {
		t.Run("returns no reviews and no error before anything has been stored", func(t *testing.T) {
			store := storeFactory(t)

			actual, err := store.Load(ctx)

			require.NoError(t, err, "expected a missing file to be the same as an empty one")
			require.Empty(t, actual)
		})

		t.Run("returns the reviews in the order they were saved, not by ID", func(t *testing.T) {
			store := storeFactory(t)
			expected := a.ReviewsWithIDs(3, 1, 2)
			require.NoError(t, store.Save(ctx, expected))

			actual, err := store.Load(ctx)

			require.NoError(t, err)
			require.Equal(t, expected, actual)
		})

		t.Run("changing what was loaded doesn't change what's stored", func(t *testing.T) {
			store := storeFactory(t)
			require.NoError(t, store.Save(ctx, a.ReviewsWithIDs(1)))
			loaded, err := store.Load(ctx)
			require.NoError(t, err)

			loaded[0].Rating = 1

			again, err := store.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, 4, again[0].Rating, "expected the stored review to be unchanged")
		})
	})

	t.Run("NextID", func(t *testing.T) {
		t.Run("is 1 before anything has been stored", func(t *testing.T) {
			store := storeFactory(t)

			actual, err := store.NextID(ctx)

			require.NoError(t, err)
			require.Equal(t, int64(1), actual)
		})

		t.Run("is one more than the highest ID, wherever it is", func(t *testing.T) {
			store := storeFactory(t)
			require.NoError(t, store.Save(ctx, a.ReviewsWithIDs(4, 9, 2)))

			actual, err := store.NextID(ctx)

			require.NoError(t, err)
			require.Equal(t, int64(10), actual)
		})
	})

	t.Run("Save", func(t *testing.T) {
		t.Run("replaces everything that was stored before", func(t *testing.T) {
			store := storeFactory(t)
			require.NoError(t, store.Save(ctx, a.ReviewsWithIDs(1, 2, 3)))

			require.NoError(t, store.Save(ctx, a.ReviewsWithIDs(1, 3)))

			actual, err := store.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, a.ReviewsWithIDs(1, 3), actual)
		})

		t.Run("keeps text with commas, quotes and newlines as it was", func(t *testing.T) {
			store := storeFactory(t)
			expected := a.Reviews(
				a.Review().WithID(1).WithText("Great, \"fun\" day!"),
				a.Review().WithID(2).WithText("First line\nsecond, with \"quotes\"\n\nfourth"),
				a.Review().WithID(3).WithText(""),
			)
			require.NoError(t, store.Save(ctx, expected))

			actual, err := store.Load(ctx)

			require.NoError(t, err)
			require.Equal(t, expected, actual)
		})

		t.Run("fails when the context is already cancelled", func(t *testing.T) {
			store := storeFactory(t)
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			require.ErrorIs(t, store.Save(cctx, a.ReviewsWithIDs(1)), context.Canceled)

			ok, err := store.Exists(ctx)
			require.NoError(t, err)
			require.False(t, ok, "expected nothing to have been written")
		})
	})

	t.Run("Append", func(t *testing.T) {
		t.Run("creates the store when there is nothing yet", func(t *testing.T) {
			store := storeFactory(t)
			review := a.Review().WithID(1).Build()

			require.NoError(t, store.Append(ctx, review))

			actual, err := store.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, reviewing.Reviews{review}, actual)
		})

		t.Run("adds after the existing reviews", func(t *testing.T) {
			store := storeFactory(t)
			require.NoError(t, store.Save(ctx, a.ReviewsWithIDs(5, 2)))

			require.NoError(t, store.Append(ctx, a.Review().WithID(6).Build()))

			actual, err := store.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, a.ReviewsWithIDs(5, 2, 6), actual)
		})
	})
}
