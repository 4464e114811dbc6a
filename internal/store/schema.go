package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion is the current on-disk layout. Files carrying any other
// version are refused rather than migrated.
const schemaVersion = 1

const schemaSQL = `
CREATE TABLE schema_version (
    version INTEGER NOT NULL
);
CREATE TABLE forest (
    name TEXT NOT NULL
);
CREATE TABLE trees (
    position         INTEGER PRIMARY KEY,
    species          TEXT    NOT NULL,
    year_of_planting INTEGER NOT NULL,
    height           REAL    NOT NULL,
    growth_rate      REAL    NOT NULL
);
`

func tableExists(ctx context.Context, q queryer, name string) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name=?", name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check %s table: %w", name, err)
	}
	return count > 0, nil
}

// ensureSchema creates the schema in an empty database and verifies the
// version of an existing one.
func ensureSchema(ctx context.Context, tx *sql.Tx) error {
	exists, err := tableExists(ctx, tx, "schema_version")
	if err != nil {
		return err
	}
	if !exists {
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	}
	return verifySchema(ctx, tx)
}

func verifySchema(ctx context.Context, q queryer) error {
	exists, err := tableExists(ctx, q, "schema_version")
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: no schema_version table", ErrSchemaMismatch)
	}
	var version int
	if err := q.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: file has version %d, expected %d", ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
