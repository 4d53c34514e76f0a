package simulate

import (
	"fmt"
	"math/rand"

	"github.com/Phenomics/annotation-simulator/ontology"
	"github.com/Phenomics/annotation-simulator/termid"
)

// MaxNoiseAttempts bounds consecutive rejected draws in the noise stage.
// Hitting the bound means the forbidden ancestor set has saturated the
// candidate pool; the stage then fails with ErrNoiseExhausted instead of
// spinning. The bound is part of the contract, not a tuning knob.
const MaxNoiseAttempts = 10000

// AnnotationSource is the narrow view of a disease record the simulation
// consumes: the ordered, upstream-deduplicated positive term IDs.
type AnnotationSource interface {
	PositiveTermIDs() []termid.TermID
}

// Modifier perturbs annotation sets against one ontology with one seeded
// random stream. The stream advances on every Simulate call, so two calls
// with identical input on the same Modifier yield different outputs, and a
// Modifier must not be shared across goroutines without serialization.
type Modifier struct {
	ont  ontology.Ontology
	cfg  Config
	pool []termid.TermID // non-obsolete terms, sorted; snapshot at construction
	rng  *rand.Rand
}

// NewModifier builds a Modifier over ont, applying opts to DefaultConfig.
// The configuration is validated here and never afterwards; the non-obsolete
// term pool is snapshotted here so later ontology edits do not leak in.
func NewModifier(ont ontology.Ontology, opts ...Option) (*Modifier, error) {
	if ont == nil {
		return nil, ErrOntologyNil
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Modifier{
		ont:  ont,
		cfg:  cfg,
		pool: ont.NonObsoleteTermIDs(),
		rng:  rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Config returns the validated configuration in use.
func (m *Modifier) Config() Config {
	return m.cfg
}

// Simulate produces a perturbed query term set for src.
//
// Stages run in fixed order: drop terms that are unknown to the ontology or
// obsolete (order preserved), map up, inject noise, subsample. The result
// carries no imposed ordering; sorting for presentation is the caller's
// concern. Returns ErrSourceNil or ErrNoiseExhausted.
func (m *Modifier) Simulate(src AnnotationSource) ([]termid.TermID, error) {
	if src == nil {
		return nil, ErrSourceNil
	}

	filtered := m.filterKnown(src.PositiveTermIDs())

	noisy, err := m.addNoise(m.mapUp(filtered))
	if err != nil {
		return nil, err
	}

	return m.subSample(noisy), nil
}

// filterKnown keeps the terms present in the ontology and not obsolete,
// preserving input order. Absence and obsolescence are expected, recoverable
// conditions, never errors.
func (m *Modifier) filterKnown(in []termid.TermID) []termid.TermID {
	out := make([]termid.TermID, 0, len(in))
	for _, id := range in {
		if m.ont.Contains(id) && !m.ont.IsObsolete(id) {
			out = append(out, id)
		}
	}

	return out
}

// mapUp applies the imprecision stage.
//
// Randomness contract: one Float64 per input term, in input order; one
// additional Intn only when that draw triggers a replacement AND the
// candidate set is non-empty. The candidate set is the ancestor closure of
// the ENTIRE input (root excluded) minus the term itself, so a term may map
// onto another input term's position in the hierarchy. First-occurrence
// deduplication makes the output duplicate-free and possibly shorter.
func (m *Modifier) mapUp(in []termid.TermID) []termid.TermID {
	if m.cfg.MapUpProbability == 0.0 {
		return in // explicit fast path: no draws, bit-identical output
	}

	closure := m.ont.AncestorsOfSet(in, false)

	seen := make(map[termid.TermID]struct{}, len(in))
	out := make([]termid.TermID, 0, len(in))
	for _, id := range in {
		mapped := id
		if m.rng.Float64() < m.cfg.MapUpProbability {
			candidates := withoutID(closure, id)
			if len(candidates) > 0 {
				mapped = candidates[m.rng.Intn(len(candidates))]
			}
		}
		if _, dup := seen[mapped]; !dup {
			seen[mapped] = struct{}{}
			out = append(out, mapped)
		}
	}

	return out
}

// addNoise appends max(1, floor(n·NoiseFraction)) unrelated terms.
//
// A candidate drawn from the pool is rejected while it lies in the forbidden
// set: the ancestor closure (terms included, root excluded) of everything
// accepted so far. Each accepted term extends the forbidden set with itself
// and its strict ancestors. MaxNoiseAttempts consecutive rejections abort
// with ErrNoiseExhausted. Only the ancestor direction is enforced; a noise
// term may still be a descendant of an existing term.
func (m *Modifier) addNoise(in []termid.TermID) ([]termid.TermID, error) {
	if m.cfg.NoiseFraction == 0.0 {
		return in, nil // explicit fast path: no draws, bit-identical output
	}

	out := append(make([]termid.TermID, 0, len(in)+1), in...)
	termsToAdd := max(1, int(float64(len(out))*m.cfg.NoiseFraction))
	targetSize := len(out) + termsToAdd

	forbidden := make(map[termid.TermID]struct{})
	for _, id := range m.ont.AncestorsOfSet(in, false) {
		forbidden[id] = struct{}{}
	}

	if len(m.pool) == 0 {
		return nil, fmt.Errorf("%w: empty non-obsolete pool", ErrNoiseExhausted)
	}

	rejected := 0
	for len(out) < targetSize {
		candidate := m.pool[m.rng.Intn(len(m.pool))]
		if _, bad := forbidden[candidate]; bad {
			rejected++
			if rejected >= MaxNoiseAttempts {
				return nil, fmt.Errorf("%w: %d consecutive rejected draws", ErrNoiseExhausted, rejected)
			}

			continue
		}
		rejected = 0
		out = append(out, candidate)
		forbidden[candidate] = struct{}{}
		for _, anc := range m.ont.Ancestors(candidate, false) {
			forbidden[anc] = struct{}{}
		}
	}

	return out, nil
}

// subSample selects the final query.
//
// The target size is max(len(in), MinQuerySize + Intn(span+1)), i.e. a
// uniform draw over the inclusive range [MinQuerySize, MaxQuerySize] that
// never shrinks the perturbed set: an input already above MaxQuerySize
// passes through whole (reordered). The uniform draw is consumed
// unconditionally to keep the stream position input-independent. Selection
// moves one uniformly chosen element at a time out of a working copy, so
// this never deduplicates. A target exceeding the available terms (input
// smaller than MinQuerySize) is capped at the input size.
func (m *Modifier) subSample(in []termid.TermID) []termid.TermID {
	span := m.cfg.MaxQuerySize - m.cfg.MinQuerySize
	numTerms := max(len(in), m.cfg.MinQuerySize+m.rng.Intn(span+1))
	if numTerms > len(in) {
		numTerms = len(in) // cannot sample more than available without replacement
	}

	work := append([]termid.TermID(nil), in...)
	out := make([]termid.TermID, 0, numTerms)
	for len(out) < numTerms {
		idx := m.rng.Intn(len(work))
		out = append(out, work[idx])
		work = append(work[:idx], work[idx+1:]...)
	}

	return out
}

// withoutID copies ids minus every occurrence of id, preserving order.
func withoutID(ids []termid.TermID, id termid.TermID) []termid.TermID {
	out := make([]termid.TermID, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}

	return out
}
