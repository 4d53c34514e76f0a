package simulate

import "fmt"

// Default configuration values, matching the conventional benchmarking
// setup: mild imprecision and noise, queries of one to five terms.
const (
	DefaultSeed             = int64(1)
	DefaultMinQuerySize     = 1
	DefaultMaxQuerySize     = 5
	DefaultNoiseFraction    = 0.05
	DefaultMapUpProbability = 0.05
)

// Config is the immutable parameter bundle of a Modifier. It is carried and
// returned by value; validate with Validate before use (NewModifier does so
// and fails fast).
type Config struct {
	// Seed initializes the Modifier's private random stream.
	Seed int64

	// MinQuerySize and MaxQuerySize bound the subsampling target drawn for
	// the final query. MinQuerySize <= MaxQuerySize, both non-negative.
	// The maximum is a target, not a hard cap: a perturbed set that is
	// already larger passes through at full size.
	MinQuerySize int
	MaxQuerySize int

	// NoiseFraction controls how many unrelated terms the noise stage adds:
	// max(1, floor(n·NoiseFraction)) for n input terms. Zero disables the
	// stage entirely. Must lie in [0, 1].
	NoiseFraction float64

	// MapUpProbability is the per-term chance of replacement by an
	// ancestor. Zero disables the stage entirely. Must lie in [0, 1].
	MapUpProbability float64
}

// Option adjusts a Config, functional-options style.
type Option func(*Config)

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Seed:             DefaultSeed,
		MinQuerySize:     DefaultMinQuerySize,
		MaxQuerySize:     DefaultMaxQuerySize,
		NoiseFraction:    DefaultNoiseFraction,
		MapUpProbability: DefaultMapUpProbability,
	}
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithQuerySize sets both subsampling bounds.
func WithQuerySize(minSize, maxSize int) Option {
	return func(c *Config) {
		c.MinQuerySize = minSize
		c.MaxQuerySize = maxSize
	}
}

// WithNoiseFraction sets the noise fraction.
func WithNoiseFraction(f float64) Option {
	return func(c *Config) { c.NoiseFraction = f }
}

// WithMapUpProbability sets the per-term map-up probability.
func WithMapUpProbability(p float64) Option {
	return func(c *Config) { c.MapUpProbability = p }
}

// Validate checks the bundle and returns ErrQuerySizeBounds or
// ErrProbabilityRange on the first violation. Values are never clamped.
func (c Config) Validate() error {
	if c.MinQuerySize < 0 || c.MaxQuerySize < 0 || c.MinQuerySize > c.MaxQuerySize {
		return fmt.Errorf("%w: min=%d max=%d", ErrQuerySizeBounds, c.MinQuerySize, c.MaxQuerySize)
	}
	if c.NoiseFraction < 0.0 || c.NoiseFraction > 1.0 {
		return fmt.Errorf("%w: noise fraction %g", ErrProbabilityRange, c.NoiseFraction)
	}
	if c.MapUpProbability < 0.0 || c.MapUpProbability > 1.0 {
		return fmt.Errorf("%w: map-up probability %g", ErrProbabilityRange, c.MapUpProbability)
	}

	return nil
}
