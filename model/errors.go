package model

import "errors"

// Domain error kinds. Repositories translate storage errors into these
// sentinels so callers can branch with errors.Is regardless of the backend.
var (
	// ErrDuplicateSlug is returned when a derived slug collides with an
	// existing row in the same uniqueness scope. The engine never
	// auto-suffixes; the caller has to pick another name.
	ErrDuplicateSlug = errors.New("duplicate slug")

	// ErrAudioProbe is returned when the duration of an uploaded audio file
	// cannot be determined.
	ErrAudioProbe = errors.New("audio probe failed")

	// ErrReferentialIntegrity is returned on deletes of rows that are still
	// referenced by a foreign key.
	ErrReferentialIntegrity = errors.New("row is still referenced")

	// ErrNotFound is returned by lookups with no matching row.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for input that fails a domain rule, e.g. a
	// playlist with zero tracks.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden is returned when the viewer is not allowed to see or
	// mutate the requested row.
	ErrForbidden = errors.New("forbidden")
)
