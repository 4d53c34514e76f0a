package disease

import (
	"fmt"
	"sort"
	"strings"
)

// Database enumerates the disease databases annotation files may reference.
type Database int

// The closed set of supported databases.
const (
	OMIM Database = iota + 1
	DECIPHER
	ORPHA
	MESH
	DO
	MGI
)

// databaseNames maps enum values to their canonical uppercase tokens.
var databaseNames = map[Database]string{
	OMIM:     "OMIM",
	DECIPHER: "DECIPHER",
	ORPHA:    "ORPHA",
	MESH:     "MESH",
	DO:       "DO",
	MGI:      "MGI",
}

// String returns the canonical token, or "UNKNOWN" for invalid values.
func (d Database) String() string {
	if name, ok := databaseNames[d]; ok {
		return name
	}

	return "UNKNOWN"
}

// ParseDatabase resolves a token case-insensitively.
// Returns ErrUnknownDatabase for anything outside the enum.
func ParseDatabase(s string) (Database, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	for db, name := range databaseNames {
		if name == token {
			return db, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDatabase, s)
}

// ID identifies one disease within one database, e.g. OMIM:154700.
// Comparable value type, usable as a map key.
type ID struct {
	Database Database
	Local    string
}

// ParseID converts "DB:LOCAL" into an ID. The database token is matched
// case-insensitively; the local part is kept verbatim (it may itself
// contain colons). Returns ErrMalformedID or ErrUnknownDatabase.
func ParseID(s string) (ID, error) {
	dbToken, local, ok := strings.Cut(s, ":")
	if !ok {
		return ID{}, fmt.Errorf("%w: %q has no colon", ErrMalformedID, s)
	}
	db, err := ParseDatabase(dbToken)
	if err != nil {
		return ID{}, err
	}

	return ID{Database: db, Local: local}, nil
}

// String renders the canonical "DB:LOCAL" form.
func (id ID) String() string {
	return id.Database.String() + ":" + id.Local
}

// Compare orders IDs by database, then by local part. Returns -1, 0 or +1.
func (id ID) Compare(other ID) int {
	switch {
	case id.Database < other.Database:
		return -1
	case id.Database > other.Database:
		return 1
	}

	return strings.Compare(id.Local, other.Local)
}

// Less reports whether id orders strictly before other.
func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

// SortedIDs returns the keys of m in canonical order; used for
// reproducible iteration and random selection over a disease corpus.
func SortedIDs(m map[ID]*Annotated) []ID {
	ids := make([]ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	return ids
}
