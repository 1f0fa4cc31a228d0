package cubesolver

import "container/heap"

// unreachedBound is the sentinel returned by a search round that found
// neither the goal nor any over-bound successor to escalate to. It is
// larger than any reachable solve length.
const unreachedBound = 100

// Solver finds a shortest move sequence from a scrambled cube to the
// solved state using iterative-deepening search guided by a corner
// pattern database.
//
// Each round is a best-first exploration capped at depth+estimate <=
// bound; when the goal is not found the bound rises to the smallest
// cost seen among pruned successors and the round's bookkeeping is
// discarded. Classical IDA* recurses depth-first with O(depth) memory;
// this solver instead drains a priority frontier with a visited set per
// round, trading memory for never re-expanding a state within a round.
//
// A Solver is single-use per scramble and not safe for concurrent use.
type Solver struct {
	start Cube
	db    *PatternDatabase
	cfg   *solverConfig

	visited  map[Cube]bool
	moveDone map[Cube]Move

	nodes      int
	finalBound int
}

// node is a frontier entry: a captured cube state, its depth from the
// start, and its pattern database estimate.
type node struct {
	cube     Cube
	depth    int
	estimate int
}

// frontierItem pairs a node with the move that produced it.
type frontierItem struct {
	node
	via Move
}

// frontier is a min-heap over depth+estimate. Ties prefer the larger
// estimate.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	fi := f[i].depth + f[i].estimate
	fj := f[j].depth + f[j].estimate
	if fi == fj {
		return f[i].estimate > f[j].estimate
	}
	return fi < fj
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// NewSolver creates a solver for the given scrambled cube. The pattern
// database must already be built or loaded; the solver cannot run
// without its heuristic and will not guess.
func NewSolver(start Cube, db *PatternDatabase, opts ...Option) (*Solver, error) {
	if db == nil || !db.Built() {
		return nil, ErrDatabaseNotBuilt
	}

	cfg := defaultSolverConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Solver{
		start:    start,
		db:       db,
		cfg:      cfg,
		visited:  make(map[Cube]bool),
		moveDone: make(map[Cube]Move),
	}, nil
}

// Solve runs bound-escalating search until the solved state is reached
// and returns the shortest move sequence from the scrambled cube to
// solved. An already-solved cube yields an empty sequence. The input
// must be reachable by legal turns from solved; unreachable cubes are
// outside the supported domain.
//
// Returns ErrBoundExceeded if a WithMaxBound limit stops the search
// before a solution is found.
func (s *Solver) Solve() ([]Move, error) {
	bound := 1
	solved, next := s.searchRound(bound)

	// Keep escalating while the round reports a new bound instead of
	// the one just searched. Bounds only ever rise.
	for next != bound {
		if s.cfg.maxBound > 0 && next > s.cfg.maxBound {
			return nil, ErrBoundExceeded
		}
		s.reset()
		bound = next
		if s.cfg.progress != nil {
			s.cfg.progress(bound)
		}
		solved, next = s.searchRound(bound)
	}
	s.finalBound = bound

	// Walk the producing moves backward from the solved state to the
	// scramble, then flip the list forward.
	moves := []Move{}
	curr := solved
	for curr != s.start {
		m := s.moveDone[curr]
		moves = append(moves, m)
		curr.Invert(m)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves, nil
}

// searchRound explores best-first up to the given bound. It returns the
// solved state paired with the searched bound on success, or the start
// state paired with the smallest over-bound cost seen (unreachedBound
// if none) when the frontier drains without reaching the goal.
func (s *Solver) searchRound(bound int) (Cube, int) {
	pq := &frontier{}
	heap.Init(pq)
	heap.Push(pq, frontierItem{node: node{cube: s.start, depth: 0, estimate: 0}})

	next := unreachedBound

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)

		if s.visited[item.cube] {
			continue
		}
		s.visited[item.cube] = true
		s.moveDone[item.cube] = item.via
		s.nodes++

		if item.cube.IsSolved() {
			return item.cube, bound
		}

		depth := item.depth + 1
		// One scratch copy per expansion: apply each move, capture or
		// prune, then invert before the next move.
		scratch := item.cube
		for i := 0; i < NumMoves; i++ {
			m := AllMoves[i]
			scratch.Apply(m)
			if !s.visited[scratch] {
				estimate := s.db.Lookup(&scratch)
				if depth+estimate > bound {
					if depth+estimate < next {
						next = depth + estimate
					}
				} else {
					heap.Push(pq, frontierItem{
						node: node{cube: scratch, depth: depth, estimate: estimate},
						via:  m,
					})
				}
			}
			scratch.Invert(m)
		}
	}

	return s.start, next
}

// reset clears the per-bound bookkeeping before the next escalation.
func (s *Solver) reset() {
	s.visited = make(map[Cube]bool)
	s.moveDone = make(map[Cube]Move)
}

// Nodes returns the number of states expanded across all rounds so far.
func (s *Solver) Nodes() int {
	return s.nodes
}

// Bound returns the bound of the round that found the solution. Zero
// before Solve succeeds.
func (s *Solver) Bound() int {
	return s.finalBound
}
