package store_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"forestsim/internal/forest"
	"forestsim/internal/store"
	"forestsim/internal/testsupport"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	original := testsupport.NewForest("Montane", 12.5, 18.25, 3.0, 44.125)
	original.Trees[1].GrowthRate = 0.137
	testsupport.MustSave(t, s, original)

	loaded, err := s.Load(context.Background(), "Montane")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "Montane" {
		t.Fatalf("expected name Montane, got %q", loaded.Name)
	}
	if !reflect.DeepEqual(loaded.Trees, original.Trees) {
		t.Fatalf("trees differ after round trip:\nwant %+v\ngot  %+v", original.Trees, loaded.Trees)
	}
}

func TestSaveEmptyForest(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	testsupport.MustSave(t, s, forest.New("Empty"))

	loaded, err := s.Load(context.Background(), "Empty")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Len() != 0 {
		t.Fatalf("expected empty forest, got %d trees", loaded.Len())
	}
}

func TestSaveOverwritesPreviousContent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	testsupport.MustSave(t, s, testsupport.NewForest("Montane", 1, 2, 3, 4, 5))
	testsupport.MustSave(t, s, testsupport.NewForest("Montane", 9))

	loaded, err := s.Load(context.Background(), "Montane")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Len() != 1 || loaded.Trees[0].Height != 9 {
		t.Fatalf("expected single tree of height 9, got %+v", loaded.Trees)
	}
}

func TestLoadMissingForest(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	loaded, err := s.Load(context.Background(), "Nowhere")
	if !errors.Is(err, store.ErrForestNotFound) {
		t.Fatalf("expected ErrForestNotFound, got %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected nil forest, got %+v", loaded)
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	path, err := s.Path("Broken")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	testsupport.WriteFile(t, path, "this is not a database file, just some text padding it out")

	loaded, err := s.Load(context.Background(), "Broken")
	if err == nil {
		t.Fatal("expected error loading corrupt file")
	}
	if loaded != nil {
		t.Fatalf("expected nil forest, got %+v", loaded)
	}
}

func TestLoadRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	testsupport.MustSave(t, s, testsupport.NewForest("Versioned", 10))
	path, _ := s.Path("Versioned")
	execSQL(t, path, "UPDATE schema_version SET version = 99")

	_, err := s.Load(context.Background(), "Versioned")
	if !errors.Is(err, store.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestLoadRejectsUnknownSpecies(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	testsupport.MustSave(t, s, testsupport.NewForest("Odd", 10, 11))
	path, _ := s.Path("Odd")
	execSQL(t, path, "UPDATE trees SET species = 'OAK' WHERE position = 1")

	loaded, err := s.Load(context.Background(), "Odd")
	if !errors.Is(err, forest.ErrUnknownSpecies) {
		t.Fatalf("expected ErrUnknownSpecies, got %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected nil forest, got %+v", loaded)
	}
}

func TestSaveRejectsUnknownSpeciesAndKeepsFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	testsupport.MustSave(t, s, testsupport.NewForest("Montane", 12.5))

	bad := testsupport.NewForest("Montane", 3.0, 4.0)
	bad.Trees[1].Species = forest.Species("OAK")
	if err := s.Save(context.Background(), bad); !errors.Is(err, forest.ErrUnknownSpecies) {
		t.Fatalf("expected ErrUnknownSpecies, got %v", err)
	}

	loaded, err := s.Load(context.Background(), "Montane")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Len() != 1 || loaded.Trees[0].Height != 12.5 {
		t.Fatalf("expected previous content kept, got %+v", loaded.Trees)
	}
}

func TestPathRejectsEmptyName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	if _, err := s.Path("   "); !errors.Is(err, store.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if err := s.Save(context.Background(), forest.New("")); !errors.Is(err, store.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName from Save, got %v", err)
	}
}

func TestPathUsesDataDir(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	path, err := s.Path("Montane")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	want := filepath.Join(cfg.Paths.DataDir, "Montane.db")
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
	if store.FileName("Montane") != "Montane.db" {
		t.Fatalf("unexpected file name %q", store.FileName("Montane"))
	}
}

func TestListAndExists(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	if s.Exists("Beta") {
		t.Fatal("expected Beta to be absent before save")
	}
	testsupport.MustSave(t, s, testsupport.NewForest("Beta", 1))
	testsupport.MustSave(t, s, testsupport.NewForest("Alpha", 2))
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.DataDir, "notes.txt"), "ignored")
	if err := os.Mkdir(filepath.Join(cfg.Paths.DataDir, "nested.db"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"Alpha", "Beta"}) {
		t.Fatalf("unexpected names %v", names)
	}
	if !s.Exists("Beta") {
		t.Fatal("expected Beta to exist after save")
	}
	if s.Exists("nested") {
		t.Fatal("directory should not count as a saved forest")
	}
}

func execSQL(t *testing.T, path, stmt string) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer db.Close()
	if _, err := db.Exec(stmt); err != nil {
		t.Fatalf("exec %q: %v", stmt, err)
	}
}
