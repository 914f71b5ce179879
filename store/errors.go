package store

import "github.com/cockroachdb/errors"

var (
	// ErrNoPath indicates Open was given an empty path.
	ErrNoPath = errors.New("store: sqlite path required")

	// ErrNotFound indicates an unknown run ID.
	ErrNotFound = errors.New("store: run not found")

	// ErrDuplicateRun indicates a run ID that already exists.
	ErrDuplicateRun = errors.New("store: run already exists")
)
