package repository

// Default construction constants.
const (
	defaultProbabilityTolerance = 1e-3
)

// Option applies a configuration option to Build.
type Option func(*builder)

type builder struct {
	probTolerance float64
}

// WithProbabilityTolerance sets the allowed deviation of a cluster
// probability vector's sum from 1.0.
func WithProbabilityTolerance(tol float64) Option {
	return func(b *builder) {
		if tol > 0 {
			b.probTolerance = tol
		}
	}
}
