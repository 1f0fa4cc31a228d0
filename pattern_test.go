package cubesolver

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDepthCap bounds the breadth-first expansion in tests; a full
// build visits all 88M corner configurations and takes minutes. Tests
// only query states within the cap.
const testDepthCap = 5

var (
	testDBOnce sync.Once
	testDB     *PatternDatabase
)

// patternDB returns a shared database built out to testDepthCap.
func patternDB(t *testing.T) *PatternDatabase {
	t.Helper()
	testDBOnce.Do(func() {
		testDB = NewPatternDatabase()
		testDB.buildToDepth(testDepthCap, nil)
	})
	return testDB
}

func TestLookupSolvedIsZero(t *testing.T) {
	db := patternDB(t)
	c := NewCube()
	assert.Equal(t, 0, db.Lookup(&c))
}

func TestLookupSingleMovesAreOne(t *testing.T) {
	db := patternDB(t)
	for i := 0; i < NumMoves; i++ {
		c := NewCube()
		c.Apply(AllMoves[i])
		assert.Equal(t, 1, db.Lookup(&c), "move %v", AllMoves[i])
	}
}

func TestLookupAdmissible(t *testing.T) {
	// A state reached in k moves can never have a stored corner depth
	// above k
	db := patternDB(t)
	for seed := int64(1); seed <= 8; seed++ {
		scramble := ScrambleSeeded(seed, testDepthCap)
		for k := 1; k <= len(scramble); k++ {
			c := NewCube()
			c.ApplyMoves(scramble[:k])
			assert.LessOrEqual(t, db.Lookup(&c), k, "seed %d, %d moves", seed, k)
		}
	}
}

func TestLookupSymmetricUnderInverse(t *testing.T) {
	// A quarter turn and its inverse lie at the same corner distance
	db := patternDB(t)

	c := NewCube()
	c.Apply(R)
	r := db.Lookup(&c)
	c = NewCube()
	c.Apply(RPrime)
	assert.Equal(t, r, db.Lookup(&c))
}

func TestCornerMoveTablesInvert(t *testing.T) {
	// Corner-level move application must invert exactly, mirroring
	// Apply/Invert on the facelet cube
	c := NewCube()
	c.ApplyMoves(ScrambleSeeded(3, 20))
	perm, ori := c.Corners()

	for i := 0; i < NumMoves; i++ {
		inv := AllMoves[i].Inverse().Index()
		p2, o2 := applyCornerMove(perm, ori, i)
		p3, o3 := applyCornerMove(p2, o2, inv)
		require.Equal(t, perm, p3, "move %v", AllMoves[i])
		require.Equal(t, ori, o3, "move %v", AllMoves[i])
	}
}

func TestCornerMoveTablesMatchFaceletModel(t *testing.T) {
	// Applying a move at the corner level must agree with applying it
	// on the facelet cube and projecting
	c := NewCube()
	c.ApplyMoves(ScrambleSeeded(9, 15))

	for i := 0; i < NumMoves; i++ {
		perm, ori := c.Corners()
		gotPerm, gotOri := applyCornerMove(perm, ori, i)

		fc := c
		fc.Apply(AllMoves[i])
		wantPerm, wantOri := fc.Corners()

		require.Equal(t, wantPerm, gotPerm, "move %v", AllMoves[i])
		require.Equal(t, wantOri, gotOri, "move %v", AllMoves[i])
	}
}

func TestRankCornersRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		c := NewCube()
		c.ApplyMoves(ScrambleSeeded(seed, 18))
		perm, ori := c.Corners()

		idx := rankCorners(perm, ori)
		p2, o2 := unrankCorners(idx)
		require.Equal(t, perm, p2)
		require.Equal(t, ori, o2)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := patternDB(t)
	path := filepath.Join(t.TempDir(), "corners.pdb")

	require.NoError(t, db.Save(path))

	loaded := NewPatternDatabase()
	require.NoError(t, loaded.Load(path))
	require.True(t, loaded.Built())

	for seed := int64(1); seed <= 5; seed++ {
		c := NewCube()
		c.ApplyMoves(ScrambleSeeded(seed, 3))
		assert.Equal(t, db.Lookup(&c), loaded.Lookup(&c))
	}
}

func TestSaveRequiresBuild(t *testing.T) {
	db := NewPatternDatabase()
	err := db.Save(filepath.Join(t.TempDir(), "corners.pdb"))
	assert.ErrorIs(t, err, ErrDatabaseNotBuilt)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corners.pdb")
	require.NoError(t, os.WriteFile(path, []byte("not a pattern database"), 0644))

	db := NewPatternDatabase()
	err := db.Load(path)
	assert.ErrorIs(t, err, ErrDatabaseCorrupt)
	assert.False(t, db.Built())
}

func TestBuildReportsProgress(t *testing.T) {
	db := NewPatternDatabase()
	var depths []int
	db.buildToDepth(3, func(p BuildProgress) {
		depths = append(depths, p.Depth)
		assert.Equal(t, PatternEntries, p.Total)
	})
	assert.Equal(t, []int{1, 2, 3}, depths)
}
