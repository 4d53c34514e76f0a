package termid

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedID is returned by Parse when the input is not "PREFIX:LOCAL".
var ErrMalformedID = errors.New("termid: malformed term identifier")

// separator between the ontology prefix and the local part of an identifier.
const separator = ":"

// TermID identifies a single node in an ontology.
//
// The zero value is invalid; obtain values via Parse or New. TermID is a
// comparable value type and may be used directly as a map key.
type TermID struct {
	// Prefix names the ontology, e.g. "HP".
	Prefix string
	// Local is the identifier within the ontology, e.g. "0001250".
	Local string
}

// New builds a TermID from its two components without validation.
func New(prefix, local string) TermID {
	return TermID{Prefix: prefix, Local: local}
}

// Parse converts "PREFIX:LOCAL" into a TermID.
// Returns ErrMalformedID when the separator is absent or the prefix is empty.
func Parse(s string) (TermID, error) {
	prefix, local, ok := strings.Cut(s, separator)
	if !ok || prefix == "" {
		return TermID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}

	return TermID{Prefix: prefix, Local: local}, nil
}

// String renders the canonical "PREFIX:LOCAL" form.
func (t TermID) String() string {
	return t.Prefix + separator + t.Local
}

// IsZero reports whether t is the zero TermID.
func (t TermID) IsZero() bool {
	return t.Prefix == "" && t.Local == ""
}

// Compare orders TermIDs lexicographically by prefix, then by local part.
// Returns -1, 0 or +1.
func (t TermID) Compare(other TermID) int {
	if c := strings.Compare(t.Prefix, other.Prefix); c != 0 {
		return c
	}

	return strings.Compare(t.Local, other.Local)
}

// Less reports whether t orders strictly before other.
func (t TermID) Less(other TermID) bool {
	return t.Compare(other) < 0
}

// SortIDs orders ids in-place into the canonical TermID order.
func SortIDs(ids []TermID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}

// Contains reports whether ids holds id. Linear scan; intended for the
// short slices this module passes around.
func Contains(ids []TermID, id TermID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}

// Strings renders every id in order; convenient for logging and output.
func Strings(ids []TermID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}
