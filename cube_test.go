package cubesolver

import (
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewCube()
	c.Apply(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRRRR_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	// R R R R = identity
	for i := 0; i < 4; i++ {
		c.Apply(R)
	}
	if !c.IsSolved() {
		t.Error("R R R R should return to solved")
		t.Log(c.String())
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	c.Apply(R2)
	c.Apply(R2)
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestQuadTurn_ReturnsToSolved_AllFaces(t *testing.T) {
	faces := []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}
	for _, face := range faces {
		c := NewCube()
		for i := 0; i < 4; i++ {
			c.Apply(Move{Face: face, Turn: CW})
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.ApplyMoves(SexyMove)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestApplyInvertRoundTrip_AllMoves(t *testing.T) {
	// Apply then Invert must restore the exact prior state, from any
	// starting configuration
	start := NewCube()
	start.ApplyMoves(TPerm)

	for i := 0; i < NumMoves; i++ {
		m := AllMoves[i]
		c := start
		c.Apply(m)
		c.Invert(m)
		if c != start {
			t.Errorf("Apply(%v) then Invert(%v) did not restore the state", m, m)
		}
	}
}

func TestInverseSequenceRestores(t *testing.T) {
	c := NewCube()
	moves, err := ParseMoves("R U2 F' D L2 B")
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(moves)

	// Apply inverses in reverse order
	for i := len(moves) - 1; i >= 0; i-- {
		c.Apply(moves[i].Inverse())
	}
	if !c.IsSolved() {
		t.Error("Applying the inverse sequence should restore solved")
		t.Log(c.String())
	}
}

func TestCubeEquality(t *testing.T) {
	a := NewCube()
	b := NewCube()
	if a != b {
		t.Error("Two solved cubes should be equal")
	}

	a.Apply(R)
	if a == b {
		t.Error("Scrambled cube should not equal solved cube")
	}

	b.Apply(R)
	if a != b {
		t.Error("Same move sequence should produce equal cubes")
	}
}

func TestCubeAsMapKey(t *testing.T) {
	seen := make(map[Cube]bool)
	c := NewCube()
	seen[c] = true

	c.Apply(U)
	if seen[c] {
		t.Error("Moved cube should be a distinct map key")
	}
	c.Invert(U)
	if !seen[c] {
		t.Error("Restored cube should hash to the original key")
	}
}

func TestApplyNotation(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("Cube should not be solved after R U R' U'")
	}

	if err := c.ApplyNotation("bad!"); err == nil {
		t.Error("Invalid notation should return an error")
	}
}

func TestFaceletStringRoundTrip(t *testing.T) {
	c := NewCube()
	c.ApplyMoves(TPerm)

	parsed, err := ParseFacelets(c.FaceletString())
	if err != nil {
		t.Fatal(err)
	}
	if parsed != c {
		t.Error("ParseFacelets(FaceletString()) should reproduce the cube")
	}
}

func TestParseFaceletsRejectsBadInput(t *testing.T) {
	solved := NewCube()
	fs := solved.FaceletString()

	cases := []struct {
		name string
		in   string
	}{
		{"too short", "WWWWWWWWW"},
		{"bad character", "X" + fs[1:]},
		{"unbalanced colors", "WWWWWWWWW" + "WWWWYYYYY" + fs[18:]},
	}
	for _, tc := range cases {
		if _, err := ParseFacelets(tc.in); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestMoveIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumMoves; i++ {
		if got := MoveFromIndex(i).Index(); got != i {
			t.Errorf("MoveFromIndex(%d).Index() = %d", i, got)
		}
	}
}

func TestParseMoveNotation(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"u'", UPrime},
		{"F2", F2},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseMove("X"); err == nil {
		t.Error("ParseMove should reject unknown faces")
	}
}

func TestFormatMoves(t *testing.T) {
	if got := FormatMoves([]Move{R, UPrime, F2}); got != "R U' F2" {
		t.Errorf("FormatMoves = %q", got)
	}
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q", got)
	}
}
