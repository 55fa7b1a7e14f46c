package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"ExerciseTracker/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// runUserRepositoryContract exercises the behaviour every store must share.
func runUserRepositoryContract(t *testing.T, newRepo func(t *testing.T) UserRepository) {
	ctx := context.Background()
	now := time.Date(2023, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("CreateAndLookup", func(t *testing.T) {
		repo := newRepo(t)
		u, err := repo.Create(ctx, "alice", now)
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "alice", u.Username)
		assert.Empty(t, u.Log)

		byID, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "alice", byID.Username)

		byName, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, u.ID, byName.ID)

		missing, err := repo.GetByID(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, missing)

		missing, err = repo.GetByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Create(ctx, "bob", now)
		require.NoError(t, err)
		_, err = repo.Create(ctx, "bob", now)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("ConcurrentDuplicateUsername", func(t *testing.T) {
		repo := newRepo(t)
		const n = 8
		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = repo.Create(ctx, "carol", now)
			}(i)
		}
		wg.Wait()

		ok := 0
		for _, err := range errs {
			if err == nil {
				ok++
				continue
			}
			assert.ErrorIs(t, err, ErrUsernameTaken)
		}
		assert.Equal(t, 1, ok)
	})

	t.Run("EmptyUsernameFailsValidation", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Create(ctx, "", now)
		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs), "got %v", err)
		assert.Equal(t, "Username", verrs[0].Field())
	})

	t.Run("ListInCreationOrderWithoutLogs", func(t *testing.T) {
		repo := newRepo(t)
		var ids []string
		for i, name := range []string{"u1", "u2", "u3"} {
			u, err := repo.Create(ctx, name, now.Add(time.Duration(i)*time.Second))
			require.NoError(t, err)
			ids = append(ids, u.ID)
		}
		_, err := repo.AppendExercise(ctx, ids[0], models.Exercise{Description: "run", Duration: 10, Date: day(2023, 1, 1)})
		require.NoError(t, err)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		for i, s := range list {
			assert.Equal(t, fmt.Sprintf("u%d", i+1), s.Username)
			assert.Equal(t, ids[i], s.ID)
		}
	})

	t.Run("AppendKeepsInsertionOrder", func(t *testing.T) {
		repo := newRepo(t)
		u, err := repo.Create(ctx, "dave", now)
		require.NoError(t, err)

		entries := []models.Exercise{
			{Description: "a", Duration: 10, Date: day(2023, 1, 1)},
			{Description: "b", Duration: 20.5, Date: day(2023, 1, 10)},
			{Description: "b", Duration: 20.5, Date: day(2023, 1, 10)},
		}
		for _, e := range entries {
			_, err := repo.AppendExercise(ctx, u.ID, e)
			require.NoError(t, err)
		}

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, got.Log, 3)
		for i, e := range entries {
			assert.Equal(t, e.Description, got.Log[i].Description)
			assert.Equal(t, e.Duration, got.Log[i].Duration)
			assert.True(t, e.Date.Equal(got.Log[i].Date), "entry %d date %v", i, got.Log[i].Date)
		}
	})

	t.Run("AppendUnknownUser", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.AppendExercise(ctx, "nope", models.Exercise{Description: "x", Duration: 1, Date: day(2023, 1, 1)})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("AppendInvalidExercise", func(t *testing.T) {
		repo := newRepo(t)
		u, err := repo.Create(ctx, "erin", now)
		require.NoError(t, err)
		_, err = repo.AppendExercise(ctx, u.ID, models.Exercise{Description: "x", Duration: -1, Date: day(2023, 1, 1)})
		var verrs validator.ValidationErrors
		assert.True(t, errors.As(err, &verrs), "got %v", err)
	})
}
