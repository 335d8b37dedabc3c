package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/examtrainer/internal/client/localdb"
)

func newTestRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()

	db, err := localdb.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteRepository(db), db
}

func TestGet_AbsentKey(t *testing.T) {
	repo, _ := newTestRepo(t)

	value, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestSetGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))

	value, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)
}

func TestSet_OverwritesExisting(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("old")))
	require.NoError(t, repo.Set(ctx, "token", []byte("new")))

	value, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestDelete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))
	require.NoError(t, repo.Delete(ctx, "token"))

	value, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, value)

	// deleting an absent key is not an error
	require.NoError(t, repo.Delete(ctx, "token"))
}

func TestOpen_Remigration(t *testing.T) {
	db, err := localdb.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	// running migrations on an already migrated database is a no-op
	var n int
	err = db.QueryRow(`SELECT count(*) FROM metadata`).Scan(&n)
	require.NoError(t, err)
	assert.Zero(t, n)
}
