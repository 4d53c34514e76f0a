package disease

import "errors"

// Sentinel errors; callers branch with errors.Is.
var (
	// ErrUnknownDatabase is returned for database tokens outside the
	// closed enum (OMIM, DECIPHER, ORPHA, MESH, DO, MGI).
	ErrUnknownDatabase = errors.New("disease: unknown database")

	// ErrMalformedID is returned for identifiers without a "DB:LOCAL" shape.
	ErrMalformedID = errors.New("disease: malformed disease identifier")

	// ErrConflict is returned when rows merged into one record disagree on
	// the disease identifier or name.
	ErrConflict = errors.New("disease: conflicting annotation rows")

	// ErrBadRow is returned for annotation lines with too few columns.
	ErrBadRow = errors.New("disease: malformed annotation row")
)
