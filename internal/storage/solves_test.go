package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())
	return db
}

func TestCreateAndGetSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create(&Solve{
		Scramble:      "R U R' U'",
		Solution:      "U R U' R'",
		MoveCount:     4,
		Bound:         4,
		NodesExpanded: 1234,
		DurationMs:    56,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "R U R' U'", got.Scramble)
	assert.Equal(t, "U R U' R'", got.Solution)
	assert.Equal(t, 4, got.MoveCount)
	assert.Equal(t, 1234, got.NodesExpanded)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestListSolvesNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(&Solve{Scramble: "R", Solution: "R'", MoveCount: 1, Bound: 1})
		require.NoError(t, err)
	}

	solves, err := repo.List(2)
	require.NoError(t, err)
	assert.Len(t, solves, 2)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.MigrateUp())
}
