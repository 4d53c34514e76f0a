// Package obo reads OBO 1.2 flat files (hp.obo and similarly shaped
// ontologies) into an ontology.DAG.
//
// Only the tags the simulator needs are consumed: "id", "name", "is_a"
// (with the trailing "! label" comment stripped), and "is_obsolete".
// Non-[Term] stanzas (e.g. [Typedef]) and unknown tags are skipped, so the
// reader tolerates full production files.
//
// The root is inferred: it is the unique non-obsolete term carrying no
// "is_a" parent. Zero or several such terms abort with ErrNoRoot /
// ErrMultipleRoots — callers working on a sub-ontology should pre-filter
// their input rather than guess.
//
// The assembled DAG is validated (acyclic, rooted) before being returned.
package obo
