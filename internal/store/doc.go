// Package store persists forests as SQLite databases, one file per forest
// named <name>.db under the configured data directory.
//
// Each save rewrites the whole forest inside a single transaction and each
// load reads it back in full; a load either returns a complete forest or an
// error, never a partial one. The schema is versioned but never migrated: a
// file written with a different schema version is rejected.
//
// Saves and loads take an advisory flock on <name>.db.lock so two shells
// pointed at the same directory do not interleave writes.
package store
