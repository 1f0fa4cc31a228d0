// Package cubesolver finds optimal solutions for scrambled 3x3 Rubik's
// cubes using heuristic-guided search.
//
// # Features
//
//   - Facelet cube model with move application, inversion, and notation
//   - Corner pattern database: an admissible lower-bound heuristic over
//     all 8! * 3^7 corner configurations, packed two entries per byte
//   - Iterative-deepening best-first search (IDA* variant) returning a
//     shortest move sequence
//   - Random scramble generation and facelet-string input
//
// # Quick Start
//
// Build (or load) the pattern database once, then solve:
//
//	db := cubesolver.NewPatternDatabase()
//	if err := db.Load("corners.pdb"); err != nil {
//	    log.Fatal(err)
//	}
//
//	cube := cubesolver.NewCube()
//	cube.ApplyNotation("R U R' U' F2 D")
//
//	solver, err := cubesolver.NewSolver(cube, db)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	solution, err := solver.Solve()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cubesolver.FormatMoves(solution))
//
// Generating the database is a one-time offline step:
//
//	db := cubesolver.NewPatternDatabase()
//	db.Build(nil)
//	if err := db.Save("corners.pdb"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cubesolver.R      // Right clockwise
//	cubesolver.RPrime // Right counter-clockwise
//	cubesolver.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package cubesolver
