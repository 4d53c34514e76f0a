package ontology

import "errors"

// Sentinel errors for DAG assembly and validation.
// Callers branch with errors.Is; context is attached with %w at use sites.
var (
	// ErrRootHasParents is returned when a parent link is attached to the
	// designated root term.
	ErrRootHasParents = errors.New("ontology: root must not have parents")

	// ErrCycleDetected is returned by Validate when the parent links do not
	// form a DAG.
	ErrCycleDetected = errors.New("ontology: cycle in parent links")

	// ErrNoPathToRoot is returned by Validate when a term cannot reach the
	// root by following parent links.
	ErrNoPathToRoot = errors.New("ontology: term has no path to root")
)
