// Package annosim is the umbrella for a phenotype annotation simulator:
// tools that perturb a disease's ontology-term annotations to emulate the
// noise and imprecision of real clinical phenotyping, for benchmarking
// phenotype-matching algorithms.
//
// What lives where:
//
//	termid/      — TermID value type, parsing, deterministic ordering
//	ontology/    — read-only ontology oracle interface + in-memory DAG
//	obo/         — OBO 1.2 flat-file loader (hp.obo shaped input)
//	disease/     — disease IDs, annotation records, .tab file reader
//	simulate/    — THE CORE: seeded three-stage query perturbation
//	cmd/annosim/ — CLI: load ontology + annotations, simulate, print
//
// The simulation model, in one paragraph: clinicians describe findings one
// level too coarse (each term is, with some probability, replaced by a
// random ancestor), add unrelated findings (random non-obsolete terms that
// are not ancestors of anything already present), and report a bounded
// number of terms (uniform target size within a configured range). All
// randomness flows from one configured seed, so simulations replay exactly.
package annosim
