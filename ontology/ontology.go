package ontology

import "github.com/Phenomics/annotation-simulator/termid"

// Ontology is the read-only oracle consumed by the simulation core.
//
// Implementations must return sorted, duplicate-free slices from every
// enumeration so that callers drawing seeded random indices into them are
// reproducible. Implementations must be safe for concurrent readers once
// construction has finished.
type Ontology interface {
	// Root returns the designated root term.
	Root() termid.TermID

	// Contains reports whether id is a known term, obsolete or not.
	Contains(id termid.TermID) bool

	// IsObsolete reports whether id is flagged obsolete.
	// Unknown terms report false.
	IsObsolete(id termid.TermID) bool

	// NonObsoleteTermIDs enumerates every known, non-obsolete term
	// (the root included), sorted.
	NonObsoleteTermIDs() []termid.TermID

	// Ancestors returns the strict ancestors of id (id itself excluded),
	// sorted. The root is included only when includeRoot is true.
	// Unknown terms yield an empty slice.
	Ancestors(id termid.TermID, includeRoot bool) []termid.TermID

	// AncestorsOfSet returns the reflexive-transitive ancestor closure of
	// ids: the (known) query terms themselves plus all their strict
	// ancestors, sorted and deduplicated. The root is included only when
	// includeRoot is true.
	AncestorsOfSet(ids []termid.TermID, includeRoot bool) []termid.TermID
}
