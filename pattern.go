package cubesolver

import (
	"bytes"
	"fmt"
	"os"

	"github.com/SeamusWaldron/cubesolver/internal/rank"
)

// PatternEntries is the number of corner configurations the database
// covers: 8! permutations times 3^7 orientations.
const PatternEntries = CornerPermutations * CornerOrientations

// unassigned marks a table slot not yet reached during construction.
// Corner-only depths never exceed 11, so every real entry fits a nibble.
const unassigned = 0xF

// patternMagic heads the database file; generator and loader must agree
// on packing, so the magic doubles as a format version.
var patternMagic = []byte("CPD1")

// BuildProgress reports pattern database construction progress after
// each completed breadth-first depth level.
type BuildProgress struct {
	Depth    int // depth level just completed
	Assigned int // corner configurations assigned so far
	Total    int // PatternEntries
}

// PatternDatabase maps every corner configuration to the minimum number
// of face turns needed to solve the corners, ignoring edges. Because it
// ignores edges, a lookup never exceeds the true distance to solve the
// full cube: it is an admissible heuristic.
//
// Entries are packed two per byte (the maximum depth fits 4 bits),
// bounding the table at 8!*3^7/2 bytes, about 44 MB.
type PatternDatabase struct {
	table []byte
	built bool
}

// NewPatternDatabase returns an empty database. Build or Load it before
// handing it to a solver.
func NewPatternDatabase() *PatternDatabase {
	return &PatternDatabase{}
}

// Built reports whether the database holds a usable table.
func (db *PatternDatabase) Built() bool {
	return db.built
}

// get returns the nibble entry at idx.
func (db *PatternDatabase) get(idx uint32) uint8 {
	b := db.table[idx/2]
	if idx%2 == 0 {
		return b & 0x0F
	}
	return b >> 4
}

// set stores a nibble entry at idx.
func (db *PatternDatabase) set(idx uint32, v uint8) {
	if idx%2 == 0 {
		db.table[idx/2] = (db.table[idx/2] & 0xF0) | (v & 0x0F)
	} else {
		db.table[idx/2] = (db.table[idx/2] & 0x0F) | (v << 4)
	}
}

// Build constructs the full table by breadth-first expansion from the
// solved corner configuration over all 18 moves. Every configuration is
// assigned the depth of the frontier that first reaches it, which BFS
// guarantees is minimal; a configuration is never revisited once
// assigned. The corner subgroup is fully reachable, so all entries end
// up assigned.
//
// progress may be nil; when set it is called once per completed depth
// level. Construction is CPU-bound and takes a few minutes.
func (db *PatternDatabase) Build(progress func(BuildProgress)) {
	db.buildToDepth(-1, progress)
}

// buildToDepth runs the same expansion but stops after maxDepth levels
// (maxDepth < 0 means unbounded). Configurations beyond the cap keep
// the unassigned sentinel; only full builds produce an admissible table
// for arbitrary states.
func (db *PatternDatabase) buildToDepth(maxDepth int, progress func(BuildProgress)) {
	db.table = make([]byte, PatternEntries/2)
	for i := range db.table {
		db.table[i] = unassigned<<4 | unassigned
	}

	// Solved corners: identity permutation, zero twists, index 0
	db.set(0, 0)
	assigned := 1
	frontier := []uint32{0}

	depth := 0
	for len(frontier) > 0 && (maxDepth < 0 || depth < maxDepth) {
		depth++
		var next []uint32
		for _, idx := range frontier {
			perm, ori := unrankCorners(idx)
			for m := 0; m < NumMoves; m++ {
				nperm, nori := applyCornerMove(perm, ori, m)
				nidx := rankCorners(nperm, nori)
				if db.get(nidx) == unassigned {
					db.set(nidx, uint8(depth))
					assigned++
					next = append(next, nidx)
				}
			}
		}
		frontier = next
		if progress != nil {
			progress(BuildProgress{Depth: depth, Assigned: assigned, Total: PatternEntries})
		}
	}

	db.built = true
}

// Lookup returns the stored minimum corner-solving depth for the cube's
// corner configuration. The result is a lower bound on the moves needed
// to solve the whole cube.
//
// The database must be built or loaded first; querying an empty table
// is a fatal precondition violation, checked by NewSolver.
func (db *PatternDatabase) Lookup(c *Cube) int {
	return int(db.get(c.CornerIndex()))
}

// Save writes the table to path as a flat packed binary file behind a
// 4-byte magic header.
func (db *PatternDatabase) Save(path string) error {
	if !db.built {
		return ErrDatabaseNotBuilt
	}

	buf := make([]byte, 0, len(patternMagic)+len(db.table))
	buf = append(buf, patternMagic...)
	buf = append(buf, db.table...)

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write pattern database: %w", err)
	}
	return nil
}

// Load reads a table previously written by Save.
func (db *PatternDatabase) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read pattern database: %w", err)
	}

	if len(data) != len(patternMagic)+PatternEntries/2 ||
		!bytes.Equal(data[:len(patternMagic)], patternMagic) {
		return ErrDatabaseCorrupt
	}

	db.table = data[len(patternMagic):]
	db.built = true
	return nil
}

// cornerMove captures a face turn's effect on the corner subgroup:
// slot i receives the cubie from slot perm[i] and gains twist[i] extra
// clockwise twist.
type cornerMove struct {
	perm  [NumCorners]uint8
	twist [NumCorners]uint8
}

// cornerMoves holds the 18 corner-level move tables, derived once from
// the facelet model by applying each move to a solved cube and
// projecting. Deriving them keeps the two representations in lockstep.
var cornerMoves = func() [NumMoves]cornerMove {
	var tables [NumMoves]cornerMove
	for i := 0; i < NumMoves; i++ {
		c := NewCube()
		c.Apply(MoveFromIndex(i))
		tables[i].perm, tables[i].twist = c.Corners()
	}
	return tables
}()

// applyCornerMove applies move table m to a corner configuration.
func applyCornerMove(perm, ori [NumCorners]uint8, m int) (nperm, nori [NumCorners]uint8) {
	t := &cornerMoves[m]
	for i := 0; i < NumCorners; i++ {
		from := t.perm[i]
		nperm[i] = perm[from]
		nori[i] = (ori[from] + t.twist[i]) % 3
	}
	return nperm, nori
}

// rankCorners converts a corner configuration to its dense index.
func rankCorners(perm, ori [NumCorners]uint8) uint32 {
	return rank.Permutation(perm[:])*CornerOrientations + rank.Orientation(ori[:NumCorners-1])
}

// unrankCorners is the inverse of rankCorners. The eighth twist is
// reconstructed from the parity constraint (total twist 0 mod 3).
func unrankCorners(idx uint32) (perm, ori [NumCorners]uint8) {
	copy(perm[:], rank.UnrankPermutation(idx/CornerOrientations, NumCorners))
	copy(ori[:], rank.UnrankOrientation(idx%CornerOrientations, NumCorners-1))

	var sum uint8
	for i := 0; i < NumCorners-1; i++ {
		sum += ori[i]
	}
	ori[NumCorners-1] = (3 - sum%3) % 3
	return perm, ori
}
