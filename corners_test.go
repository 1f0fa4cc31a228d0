package cubesolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCornersSolvedProjection(t *testing.T) {
	c := NewCube()
	perm, ori := c.Corners()

	for i := 0; i < NumCorners; i++ {
		assert.Equal(t, uint8(i), perm[i], "solved cube: slot %d should hold its own cubie", i)
		assert.Equal(t, uint8(0), ori[i], "solved cube: slot %d should have zero twist", i)
	}
	assert.Equal(t, uint32(0), c.CornerIndex())
}

func TestCornersPermutationStaysValid(t *testing.T) {
	c := NewCube()
	c.ApplyMoves(ScrambleSeeded(42, 30))

	perm, _ := c.Corners()
	var seen [NumCorners]bool
	for _, p := range perm {
		require.Less(t, int(p), NumCorners)
		require.False(t, seen[p], "cubie %d appears twice", p)
		seen[p] = true
	}
}

func TestCornersTwistParity(t *testing.T) {
	// Legal moves always keep total twist at 0 mod 3
	for seed := int64(1); seed <= 5; seed++ {
		c := NewCube()
		c.ApplyMoves(ScrambleSeeded(seed, 25))

		_, ori := c.Corners()
		var sum int
		for _, o := range ori {
			require.Less(t, int(o), 3)
			sum += int(o)
		}
		assert.Equal(t, 0, sum%3, "seed %d", seed)
	}
}

func TestCornerIndexInRange(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		c := NewCube()
		c.ApplyMoves(ScrambleSeeded(seed, 20))
		assert.Less(t, c.CornerIndex(), uint32(PatternEntries))
	}
}

func TestCornerIndexChangesUnderMoves(t *testing.T) {
	// Every single face turn disturbs the corners
	for i := 0; i < NumMoves; i++ {
		c := NewCube()
		c.Apply(AllMoves[i])
		assert.NotEqual(t, uint32(0), c.CornerIndex(), "move %v should move corners", AllMoves[i])
	}
}

func TestCornerIndexDeterministic(t *testing.T) {
	a := NewCube()
	b := NewCube()
	a.ApplyMoves(ScrambleSeeded(7, 15))
	b.ApplyMoves(ScrambleSeeded(7, 15))
	assert.Equal(t, a.CornerIndex(), b.CornerIndex())
}
