package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"ExerciseTracker/config/database"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var sqliteSeq atomic.Int64

func newSQLiteRepo(t *testing.T) UserRepository {
	t.Helper()
	name := fmt.Sprintf("file:repo%d?mode=memory&cache=shared", sqliteSeq.Add(1))
	d, err := database.OpenSQLite(name)
	require.NoError(t, err)
	repo := NewSQLiteUserRepository(d)
	t.Cleanup(func() { _ = repo.Close(context.Background()) })
	return repo
}

func TestSQLiteUserRepository(t *testing.T) {
	runUserRepositoryContract(t, newSQLiteRepo)
}

func TestSQLiteUserRepository_NoLeakedGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	d, err := database.OpenSQLite("file:leakcheck?mode=memory&cache=shared")
	require.NoError(t, err)
	repo := NewSQLiteUserRepository(d)
	_, err = repo.Create(context.Background(), "leak", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Close(context.Background()))
}
