// Package simulate perturbs a disease's positive phenotype annotations to
// emulate clinician-introduced imprecision and noise, producing randomized
// query term sets for benchmarking phenotype-matching algorithms.
//
// What:
//
//	A Modifier owns one seeded random stream and applies three stages, in
//	fixed order, to the disease's (obsolete-filtered) positive terms:
//
//	 1. Map-up (imprecision): each term is, with probability
//	    MapUpProbability, replaced by a uniformly chosen member of the
//	    ancestor closure of the whole input (self and root excluded).
//	    First-occurrence deduplication may shrink the set.
//	 2. Noise injection: max(1, ⌊n·NoiseFraction⌋) extra terms are drawn
//	    uniformly from the non-obsolete pool; a candidate is rejected while
//	    it lies in the ancestor closure (root excluded) of anything already
//	    in the result. Rejection is bounded by MaxNoiseAttempts.
//	 3. Subsampling: a target size is drawn uniformly from
//	    [MinQuerySize, MaxQuerySize], never below the current size, and that
//	    many terms are moved out of a working copy one random pick at a time.
//
// Why:
//
//	Such perturbations are the standard benchmark input for phenotype
//	matchers: real clinical queries contain terms that are too coarse
//	(map-up) and findings unrelated to the disease (noise).
//
// Determinism & concurrency:
//
//	Given the same ontology, configuration, and call sequence, a Modifier
//	reproduces its outputs exactly: all choices come from one private
//	*rand.Rand seeded from Config.Seed, consumed in a documented order, and
//	the ontology returns sorted slices. The stream advances on every call,
//	so a single Modifier is NOT safe for concurrent use; run one per
//	goroutine (each independently seeded) or serialize calls externally.
//
// Both zero-probability knobs are explicit fast paths: with
// MapUpProbability == 0 or NoiseFraction == 0 the respective stage returns
// its input untouched and consumes no randomness.
//
// Complexity (n input terms, A ancestor-closure size, P pool size):
//
//   - mapUp:     O(A log A + n·A)
//   - addNoise:  O(k·(1+rejections)) draws, k terms added
//   - subSample: O(numTerms·n) (destructive removal from a slice copy)
//
// Errors:
//
//   - ErrOntologyNil, ErrSourceNil:  nil collaborators
//   - ErrQuerySizeBounds, ErrProbabilityRange: invalid Config (fail fast)
//   - ErrNoiseExhausted: the forbidden set saturated the candidate pool
package simulate
