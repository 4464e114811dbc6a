package store

import "errors"

var (
	// ErrForestNotFound indicates no persisted file exists for the name.
	ErrForestNotFound = errors.New("forest not found")
	// ErrSchemaMismatch indicates the file was written with another schema version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
	// ErrInvalidName indicates a forest name that cannot become a file stem.
	ErrInvalidName = errors.New("invalid forest name")
	// ErrLocked indicates another process holds the forest lock.
	ErrLocked = errors.New("forest is locked by another process")
)
