// Package termid defines the TermID value type used to address nodes of a
// phenotype ontology, plus parsing and deterministic ordering helpers.
//
// What:
//
//   - TermID: a compact "PREFIX:LOCAL" identifier (e.g. "HP:0001250"),
//     comparable (usable as a map key), totally ordered via Compare.
//   - Parse: strict "PREFIX:LOCAL" parsing with a sentinel error.
//   - SortIDs / Contains: deterministic slice helpers.
//
// Why:
//
//	Every downstream component (ontology queries, the simulation core) relies
//	on TermID sets being materialized in a single deterministic order so that
//	seeded random draws reproduce exactly across runs and platforms. Go map
//	iteration order is randomized, so ordering is pinned here, once.
//
// Complexity:
//
//   - Compare:  O(len)
//   - SortIDs:  O(n log n)
package termid
