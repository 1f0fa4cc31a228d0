package cubesolver

import "errors"

// Sentinel errors for the cubesolver package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesolver: invalid move notation")
	ErrInvalidFacelets = errors.New("cubesolver: invalid facelet string")

	// Pattern database errors
	ErrDatabaseNotBuilt = errors.New("cubesolver: pattern database not built")
	ErrDatabaseCorrupt  = errors.New("cubesolver: pattern database file corrupt")

	// Solver errors
	ErrBoundExceeded = errors.New("cubesolver: search bound limit exceeded")
)
