package disease

import (
	"fmt"
	"sort"

	"github.com/Phenomics/annotation-simulator/termid"
)

// negationQualifier marks an annotation as explicitly absent in the disease.
const negationQualifier = "NOT"

// Row is one line of an annotation file after field parsing.
type Row struct {
	DiseaseID   ID
	DiseaseName string
	// Qualifier is the raw qualifier column; "NOT" negates the assertion.
	Qualifier string
	TermID    termid.TermID
}

// Negated reports whether the row asserts absence of the phenotype.
func (r Row) Negated() bool {
	return r.Qualifier == negationQualifier
}

// Annotation is one phenotype assertion attached to a disease.
type Annotation struct {
	TermID  termid.TermID
	Negated bool
}

// Annotated is the immutable merged annotation record of one disease.
// Construct via Builder.
type Annotated struct {
	id       ID
	name     string
	altNames []string // sorted
	positive []Annotation
	negative []Annotation
	// positiveIDs caches the ordered, duplicate-consolidated positive term
	// IDs handed to the simulation core.
	positiveIDs []termid.TermID
}

// ID returns the disease identifier.
func (a *Annotated) ID() ID { return a.id }

// Name returns the primary disease name.
func (a *Annotated) Name() string { return a.name }

// AlternativeNames returns the sorted alternative names.
func (a *Annotated) AlternativeNames() []string {
	return append([]string(nil), a.altNames...)
}

// PositiveAnnotations returns the positive assertions in file order.
func (a *Annotated) PositiveAnnotations() []Annotation {
	return append([]Annotation(nil), a.positive...)
}

// NegativeAnnotations returns the "NOT"-qualified assertions in file order.
func (a *Annotated) NegativeAnnotations() []Annotation {
	return append([]Annotation(nil), a.negative...)
}

// PositiveTermIDs returns the positively annotated term IDs in first-seen
// file order with duplicates consolidated. This satisfies
// simulate.AnnotationSource.
func (a *Annotated) PositiveTermIDs() []termid.TermID {
	return append([]termid.TermID(nil), a.positiveIDs...)
}

// Builder merges annotation rows belonging to one disease.
// The zero value is ready to use.
type Builder struct {
	id       ID
	name     string
	haveID   bool
	altNames []string
	positive []Annotation
	negative []Annotation
}

// Process folds one row into the builder. All rows must agree on the
// disease identifier and name; disagreements return ErrConflict.
func (b *Builder) Process(row Row) error {
	if !b.haveID {
		b.id = row.DiseaseID
		b.name = row.DiseaseName
		b.haveID = true
	} else {
		if b.id != row.DiseaseID {
			return fmt.Errorf("%w: disease ID %s vs. %s", ErrConflict, row.DiseaseID, b.id)
		}
		if b.name != row.DiseaseName {
			return fmt.Errorf("%w: disease name %q vs. %q", ErrConflict, row.DiseaseName, b.name)
		}
	}

	anno := Annotation{TermID: row.TermID, Negated: row.Negated()}
	if anno.Negated {
		b.negative = append(b.negative, anno)
	} else {
		b.positive = append(b.positive, anno)
	}

	return nil
}

// AddAlternativeName records an additional disease name.
func (b *Builder) AddAlternativeName(name string) {
	b.altNames = append(b.altNames, name)
}

// Build finalizes the record: alternative names sorted, positive term IDs
// consolidated to their first occurrence. The builder may be discarded
// afterwards.
func (b *Builder) Build() *Annotated {
	alt := append([]string(nil), b.altNames...)
	sort.Strings(alt)

	seen := make(map[termid.TermID]struct{}, len(b.positive))
	ids := make([]termid.TermID, 0, len(b.positive))
	for _, anno := range b.positive {
		if _, dup := seen[anno.TermID]; dup {
			continue
		}
		seen[anno.TermID] = struct{}{}
		ids = append(ids, anno.TermID)
	}

	return &Annotated{
		id:          b.id,
		name:        b.name,
		altNames:    alt,
		positive:    append([]Annotation(nil), b.positive...),
		negative:    append([]Annotation(nil), b.negative...),
		positiveIDs: ids,
	}
}
