// Package ontology exposes a phenotype ontology as a narrow, read-only
// oracle over termid.TermID nodes, plus an in-memory DAG implementation.
//
// What:
//
//   - Ontology: the capability set the simulation core needs — root
//     identity, membership, obsolescence, non-obsolete enumeration, and
//     ancestor queries (single term and set closure).
//   - DAG: a single-rooted directed acyclic graph over parent links,
//     assembled term by term and validated as a whole.
//
// Why:
//
//	The simulation core must not depend on a concrete graph type: tests
//	substitute a small synthetic DAG, production code loads one from an OBO
//	file. Keeping the interface narrow also pins down exactly which queries
//	the perturbation algorithm is allowed to make.
//
// Determinism:
//
//	Every enumeration (NonObsoleteTermIDs, Ancestors, AncestorsOfSet)
//	returns a sorted, duplicate-free slice. Seeded random draws over these
//	slices therefore reproduce exactly across runs.
//
// Complexity (DAG, V terms, E parent links):
//
//   - Ancestors:        O(A log A) for A reachable ancestors
//   - AncestorsOfSet:   O(ΣA log ΣA)
//   - Validate:         O(V + E)
//
// Errors:
//
//   - ErrRootHasParents: parent links attached to the designated root
//   - ErrCycleDetected:  parent links form a cycle
//   - ErrNoPathToRoot:   a non-obsolete term cannot reach the root
package ontology
