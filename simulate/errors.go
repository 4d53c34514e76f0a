package simulate

import "errors"

// Sentinel errors for configuration validation and simulation execution.
// Callers branch with errors.Is; use sites attach context with %w.
var (
	// ErrOntologyNil is returned by NewModifier for a nil ontology.
	ErrOntologyNil = errors.New("simulate: ontology is nil")

	// ErrSourceNil is returned by Simulate for a nil annotation source.
	ErrSourceNil = errors.New("simulate: annotation source is nil")

	// ErrQuerySizeBounds is returned when MinQuerySize > MaxQuerySize or
	// either bound is negative. Bounds are never clamped.
	ErrQuerySizeBounds = errors.New("simulate: invalid query size bounds")

	// ErrProbabilityRange is returned when NoiseFraction or
	// MapUpProbability falls outside [0, 1].
	ErrProbabilityRange = errors.New("simulate: probability out of range")

	// ErrNoiseExhausted is returned when the noise stage rejects
	// MaxNoiseAttempts consecutive draws, i.e. the forbidden ancestor set
	// has (all but) saturated the non-obsolete pool.
	ErrNoiseExhausted = errors.New("simulate: noise candidate pool exhausted")
)
