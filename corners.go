package cubesolver

import "github.com/SeamusWaldron/cubesolver/internal/rank"

// Corner identifies one of the 8 corner cubies by its solved position,
// named by the three faces it touches.
type Corner int

const (
	CornerURF Corner = 0
	CornerUFL Corner = 1
	CornerULB Corner = 2
	CornerUBR Corner = 3
	CornerDFR Corner = 4
	CornerDLF Corner = 5
	CornerDBL Corner = 6
	CornerDRB Corner = 7
)

// NumCorners is the number of corner cubies.
const NumCorners = 8

const (
	// CornerPermutations is 8!, the number of corner arrangements.
	CornerPermutations = 40320
	// CornerOrientations is 3^7: the eighth twist is forced by the
	// other seven (total twist is always 0 mod 3).
	CornerOrientations = 2187
)

// cornerFacelets lists, per corner slot, its three facelet positions in
// clockwise order viewed from outside the corner, starting with the
// facelet on the U or D face. Reading a slot cyclically from its U/D
// sticker therefore yields the occupying cubie's home color triple.
var cornerFacelets = [NumCorners][3]struct {
	face CubeFace
	pos  int
}{
	CornerURF: {{CubeFaceU, 8}, {CubeFaceR, 0}, {CubeFaceF, 2}},
	CornerUFL: {{CubeFaceU, 6}, {CubeFaceF, 0}, {CubeFaceL, 2}},
	CornerULB: {{CubeFaceU, 0}, {CubeFaceL, 0}, {CubeFaceB, 2}},
	CornerUBR: {{CubeFaceU, 2}, {CubeFaceB, 0}, {CubeFaceR, 2}},
	CornerDFR: {{CubeFaceD, 2}, {CubeFaceF, 8}, {CubeFaceR, 6}},
	CornerDLF: {{CubeFaceD, 0}, {CubeFaceL, 8}, {CubeFaceF, 6}},
	CornerDBL: {{CubeFaceD, 6}, {CubeFaceB, 8}, {CubeFaceL, 6}},
	CornerDRB: {{CubeFaceD, 8}, {CubeFaceR, 8}, {CubeFaceB, 6}},
}

// cornerColors gives each cubie's solved color triple in the same
// clockwise order, U/D color first.
var cornerColors = [NumCorners][3]Color{
	CornerURF: {White, Red, Green},
	CornerUFL: {White, Green, Orange},
	CornerULB: {White, Orange, Blue},
	CornerUBR: {White, Blue, Red},
	CornerDFR: {Yellow, Green, Red},
	CornerDLF: {Yellow, Orange, Green},
	CornerDBL: {Yellow, Blue, Orange},
	CornerDRB: {Yellow, Red, Blue},
}

// Corners projects the cube onto its corner subgroup, ignoring edges.
// perm[slot] holds the cubie currently in that slot; ori[slot] holds
// its twist: 0 if the cubie's U/D sticker faces U or D, otherwise the
// clockwise offset (1 or 2) of the facelet it occupies.
//
// Only legal configurations are expected; the projection of an
// unreachable sticker arrangement is unspecified.
func (c *Cube) Corners() (perm [NumCorners]uint8, ori [NumCorners]uint8) {
	for slot := 0; slot < NumCorners; slot++ {
		var colors [3]Color
		for i, fp := range cornerFacelets[slot] {
			colors[i] = c.Facelets[fp.face][fp.pos]
		}

		// The U/D sticker marks the twist
		var twist int
		for twist = 0; twist < 3; twist++ {
			if colors[twist] == White || colors[twist] == Yellow {
				break
			}
		}
		if twist == 3 {
			continue // no U/D sticker: not a legal corner
		}

		// Reading cyclically from the U/D sticker recovers the
		// cubie's home triple
		triple := [3]Color{colors[twist], colors[(twist+1)%3], colors[(twist+2)%3]}
		for cubie := 0; cubie < NumCorners; cubie++ {
			if cornerColors[cubie] == triple {
				perm[slot] = uint8(cubie)
				break
			}
		}
		ori[slot] = uint8(twist)
	}
	return perm, ori
}

// CornerIndex returns the dense index of the cube's corner
// configuration: permutation rank * 3^7 + orientation rank. The solved
// cube indexes to 0; indexes cover [0, 8! * 3^7). This is the pattern
// database key.
func (c *Cube) CornerIndex() uint32 {
	perm, ori := c.Corners()
	return rank.Permutation(perm[:])*CornerOrientations + rank.Orientation(ori[:NumCorners-1])
}
