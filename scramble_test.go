package cubesolver

import (
	"testing"
)

func TestScrambleLength(t *testing.T) {
	for _, n := range []int{1, 5, 20} {
		if got := len(Scramble(n)); got != n {
			t.Errorf("Scramble(%d) returned %d moves", n, got)
		}
	}
}

func TestScrambleNeverRepeatsFace(t *testing.T) {
	moves := ScrambleSeeded(1234, 200)
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Fatalf("moves %d and %d share face %v", i-1, i, moves[i].Face)
		}
	}
}

func TestScrambleSeededIsDeterministic(t *testing.T) {
	a := ScrambleSeeded(99, 25)
	b := ScrambleSeeded(99, 25)
	if FormatMoves(a) != FormatMoves(b) {
		t.Errorf("same seed produced different scrambles:\n%s\n%s", FormatMoves(a), FormatMoves(b))
	}
}
