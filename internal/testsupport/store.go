package testsupport

import (
	"context"
	"testing"

	"forestsim/internal/config"
	"forestsim/internal/forest"
	"forestsim/internal/store"
)

// MustOpenStore opens a store.Store rooted at the config's data directory.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	s, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	return s
}

// MustSave persists f and fails the test on error.
func MustSave(t testing.TB, s *store.Store, f *forest.Forest) {
	t.Helper()

	if err := s.Save(context.Background(), f); err != nil {
		t.Fatalf("store.Save(%s): %v", f.Name, err)
	}
}

// NewForest builds a forest from heights, cycling species and using fixed
// year and growth rate so tests can reason about positions.
func NewForest(name string, heights ...float64) *forest.Forest {
	f := forest.New(name)
	species := forest.AllSpecies()
	for i, h := range heights {
		f.Add(forest.NewTree(species[i%len(species)], h, 0.10, 2010+i))
	}
	return f
}
