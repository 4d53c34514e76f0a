// Package disease models disease identities and their phenotype-term
// annotations, and reads the tab-separated annotation files that carry them.
//
// What:
//
//   - Database / ID: "OMIM:154700"-style disease identifiers with a
//     closed database enum and a prefix-then-local total order.
//   - Row / Annotated / Builder: one file line, the immutable merged
//     record for a disease, and the merger in between. The builder
//     rejects conflicting disease IDs or names across rows and routes
//     qualifier "NOT" rows to the negative annotation list.
//   - ParseAnnotations: a one-pass reader for phenotype_annotation.tab
//     shaped input, producing one Annotated record per disease.
//
// Annotated.PositiveTermIDs returns the positive term IDs in file order
// with duplicates consolidated at construction, which is exactly the input
// contract of the simulation core.
//
// Errors:
//
//   - ErrUnknownDatabase: database token outside the closed enum
//   - ErrMalformedID:     disease identifier without a colon
//   - ErrConflict:        rows for one disease disagree on ID or name
//   - ErrBadRow:          annotation line with too few columns
package disease
