package billing

import "errors"

// All engine errors are deterministic data-integrity errors; nothing here
// is transient, so callers never retry.
var (
	// ErrInvalidPauseRange is raised when an override with a half-open or
	// inverted pause window reaches the resolver. Such records are rejected
	// at write time, so hitting this means the stored data is corrupt.
	ErrInvalidPauseRange = errors.New("invalid pause window")

	// ErrDuplicateOverride is raised when creating an override for a
	// (facility, year, month) key that already has one.
	ErrDuplicateOverride = errors.New("override already exists for this facility and month")

	// ErrNotFound is raised for unresolvable client or facility ids.
	ErrNotFound = errors.New("record not found")
)
