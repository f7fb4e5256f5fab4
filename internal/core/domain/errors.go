package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSnapshotUnavailable indicates the corpus snapshot could not be read.
	ErrSnapshotUnavailable = errors.New("snapshot unavailable")

	// ErrMalformedSnapshot indicates the snapshot could not be decoded at all.
	// Individual malformed records are reported, not returned as errors.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrInvalidSettings indicates configuration failed validation.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrUnsupportedDriver indicates an unknown snapshot driver.
	ErrUnsupportedDriver = errors.New("unsupported snapshot driver")
)
