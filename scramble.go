package cubesolver

import "math/rand"

// Scramble generates a random scramble of n moves. Consecutive moves
// never repeat a face, so the sequence contains no trivially mergeable
// turns.
func Scramble(n int) []Move {
	return scrambleFrom(rand.New(rand.NewSource(rand.Int63())), n)
}

// ScrambleSeeded generates a deterministic scramble of n moves from the
// given seed.
func ScrambleSeeded(seed int64, n int) []Move {
	return scrambleFrom(rand.New(rand.NewSource(seed)), n)
}

func scrambleFrom(r *rand.Rand, n int) []Move {
	moves := make([]Move, 0, n)
	prevFace := Face("")

	for len(moves) < n {
		m := MoveFromIndex(r.Intn(NumMoves))
		if m.Face == prevFace {
			continue
		}
		moves = append(moves, m)
		prevFace = m.Face
	}

	return moves
}
