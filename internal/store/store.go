package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"forestsim/internal/config"
	"forestsim/internal/forest"
	"forestsim/internal/textutil"
)

const (
	fileExt        = ".db"
	lockExt        = ".lock"
	lockRetryDelay = 50 * time.Millisecond
	lockTimeout    = 5 * time.Second
)

// Store reads and writes forests under a single directory.
type Store struct {
	dir string
}

// Open returns a Store rooted at the configured data directory, creating it
// if needed.
func Open(cfg *config.Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("store requires config")
	}
	return New(cfg.Paths.DataDir)
}

// New returns a Store rooted at dir.
func New(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("store directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory holding persisted forests.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the database path for the named forest.
func (s *Store) Path(name string) (string, error) {
	stem := textutil.SanitizeFileName(name)
	if stem == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, stem+fileExt), nil
}

// FileName returns the base name of the database for the named forest, for
// user-facing messages.
func FileName(name string) string {
	return textutil.SanitizeFileName(name) + fileExt
}

// Exists reports whether a persisted file exists for name.
func (s *Store) Exists(name string) bool {
	path, err := s.Path(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// List returns the names of persisted forests, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read data directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), fileExt); ok && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Save writes the full forest to <name>.db, replacing any previous content.
// A forest holding a species outside the closed set is rejected before the
// file is touched.
func (s *Store) Save(ctx context.Context, f *forest.Forest) error {
	if f == nil {
		return errors.New("forest is nil")
	}
	path, err := s.Path(f.Name)
	if err != nil {
		return err
	}
	for i, tree := range f.Trees {
		if !tree.Species.Valid() {
			return fmt.Errorf("tree %d: %w: %q", i, forest.ErrUnknownSpecies, tree.Species)
		}
	}

	unlock, err := acquire(ctx, path, false)
	if err != nil {
		return err
	}
	defer unlock()

	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := ensureSchema(ctx, tx); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM forest"); err != nil {
		return fmt.Errorf("clear forest: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO forest (name) VALUES (?)", f.Name); err != nil {
		return fmt.Errorf("insert forest: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM trees"); err != nil {
		return fmt.Errorf("clear trees: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO trees (position, species, year_of_planting, height, growth_rate) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare tree insert: %w", err)
	}
	defer stmt.Close()

	for i, tree := range f.Trees {
		if _, err := stmt.ExecContext(ctx, i, string(tree.Species), tree.YearOfPlanting, tree.Height, tree.GrowthRate); err != nil {
			return fmt.Errorf("insert tree %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load reads the named forest. Any failure returns a nil forest.
func (s *Store) Load(ctx context.Context, name string) (*forest.Forest, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrForestNotFound, filepath.Base(path))
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	unlock, err := acquire(ctx, path, true)
	if err != nil {
		return nil, err
	}
	defer unlock()

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin load tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := verifySchema(ctx, tx); err != nil {
		return nil, err
	}

	var storedName string
	if err := tx.QueryRowContext(ctx, "SELECT name FROM forest LIMIT 1").Scan(&storedName); err != nil {
		return nil, fmt.Errorf("read forest name: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT species, year_of_planting, height, growth_rate FROM trees ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query trees: %w", err)
	}
	defer rows.Close()

	f := forest.New(storedName)
	for rows.Next() {
		var (
			speciesText string
			year        int
			height      float64
			rate        float64
		)
		if err := rows.Scan(&speciesText, &year, &height, &rate); err != nil {
			return nil, fmt.Errorf("scan tree: %w", err)
		}
		species, err := forest.ParseSpecies(speciesText)
		if err != nil {
			return nil, fmt.Errorf("decode tree %d: %w", f.Len(), err)
		}
		f.Add(forest.NewTree(species, height, rate, year))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trees: %w", err)
	}
	return f, nil
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	return db, nil
}

// acquire takes the advisory lock guarding path. Readers share the lock.
func acquire(ctx context.Context, path string, shared bool) (func(), error) {
	lock := flock.New(path + lockExt)

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	var (
		ok  bool
		err error
	)
	if shared {
		ok, err = lock.TryRLockContext(lockCtx, lockRetryDelay)
	} else {
		ok, err = lock.TryLockContext(lockCtx, lockRetryDelay)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, filepath.Base(path))
		}
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, filepath.Base(path))
	}
	return func() { _ = lock.Unlock() }, nil
}
