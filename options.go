package cubesolver

// Option configures Solver behavior.
type Option func(*solverConfig)

type solverConfig struct {
	maxBound int
	progress func(bound int)
}

func defaultSolverConfig() *solverConfig {
	return &solverConfig{
		maxBound: 0, // unlimited
	}
}

// WithMaxBound caps bound escalation. When the next bound would exceed
// max, Solve returns ErrBoundExceeded instead of searching deeper.
// Zero means unlimited.
func WithMaxBound(max int) Option {
	return func(c *solverConfig) {
		c.maxBound = max
	}
}

// WithProgress registers a callback invoked with each new bound before
// its round is searched. Useful for reporting escalation on long
// solves; control returns between rounds, so the callback is also the
// place to observe elapsed time and abandon a solve externally.
func WithProgress(fn func(bound int)) Option {
	return func(c *solverConfig) {
		c.progress = fn
	}
}
