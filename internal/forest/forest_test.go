package forest_test

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"forestsim/internal/forest"
	"forestsim/internal/testsupport"
)

func fixedClock() time.Time {
	return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func TestAverageHeight(t *testing.T) {
	if got := forest.New("empty").AverageHeight(); got != 0 {
		t.Fatalf("empty forest average = %v, want exactly 0", got)
	}
	f := testsupport.NewForest("north", 10, 20, 30)
	if got := f.AverageHeight(); math.Abs(got-20) > 1e-9 {
		t.Fatalf("average = %v, want 20", got)
	}
}

func TestCutByIndex(t *testing.T) {
	cases := []struct {
		name    string
		index   int
		wantErr bool
		want    []float64
	}{
		{"first", 0, false, []float64{2, 3, 4}},
		{"middle", 2, false, []float64{1, 2, 4}},
		{"last", 3, false, []float64{1, 2, 3}},
		{"negative", -1, true, []float64{1, 2, 3, 4}},
		{"equal to length", 4, true, []float64{1, 2, 3, 4}},
		{"far past end", 40, true, []float64{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := testsupport.NewForest("cut", 1, 2, 3, 4)
			err := f.CutByIndex(tc.index)
			if tc.wantErr {
				if !errors.Is(err, forest.ErrInvalidIndex) {
					t.Fatalf("expected ErrInvalidIndex, got %v", err)
				}
				var idxErr *forest.IndexError
				if !errors.As(err, &idxErr) || idxErr.Index != tc.index || idxErr.Length != 4 {
					t.Fatalf("unexpected index error %#v", err)
				}
			} else if err != nil {
				t.Fatalf("CutByIndex returned error: %v", err)
			}
			assertHeights(t, f, tc.want)
		})
	}
}

func TestCutByIndexOnEmptyForest(t *testing.T) {
	f := forest.New("bare")
	if err := f.CutByIndex(0); !errors.Is(err, forest.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
	if f.Len() != 0 {
		t.Fatalf("expected empty forest, got %d trees", f.Len())
	}
}

func TestSimulateYearlyGrowth(t *testing.T) {
	f := forest.New("grove")
	f.Add(forest.NewTree(forest.SpeciesBirch, 10, 0.10, 2010))
	f.Add(forest.NewTree(forest.SpeciesFir, 20, 0.20, 2011))

	f.SimulateYearlyGrowth()

	assertHeights(t, f, []float64{11, 24})

	empty := forest.New("none")
	empty.SimulateYearlyGrowth()
	if empty.Len() != 0 {
		t.Fatal("growth must not add trees")
	}
}

func TestAddRandomTreeAppends(t *testing.T) {
	src := &testsupport.FixedSource{Ints: []int{5, 1}, Floats: []float64{0.5, 0.25}}
	gen := forest.NewGenerator(forest.DefaultRanges(), forest.WithSource(src), forest.WithClock(fixedClock))

	f := testsupport.NewForest("grove", 3)
	tree := f.AddRandomTree(gen)

	if f.Len() != 2 || f.Trees[1] != tree {
		t.Fatalf("expected new tree appended at the end, got %d trees", f.Len())
	}
	if tree.YearOfPlanting != 2005 || tree.Species != forest.SpeciesMaple {
		t.Fatalf("unexpected tree %+v", tree)
	}
	if math.Abs(tree.Height-15) > 1e-9 || math.Abs(tree.GrowthRate-0.125) > 1e-9 {
		t.Fatalf("unexpected tree %+v", tree)
	}
}

func TestDisplay(t *testing.T) {
	f := forest.New("Montane")
	f.Add(forest.NewTree(forest.SpeciesBirch, 12.5, 0.15, 2015))
	f.Add(forest.NewTree(forest.SpeciesFir, 17.5, 0.1, 2018))

	var buf bytes.Buffer
	if err := f.Display(&buf); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}

	want := "Forest name: Montane\n" +
		"     BIRCH  2015  12.50'  15.0%\n" +
		"     FIR    2018  17.50'  10.0%\n" +
		"There are 2 trees, with an average height of 15.00\n"
	if buf.String() != want {
		t.Fatalf("Display output mismatch\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestDisplayEmptyForest(t *testing.T) {
	var buf bytes.Buffer
	if err := forest.New("Barren").Display(&buf); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	want := "Forest name: Barren\nThere are 0 trees, with an average height of 0.00\n"
	if buf.String() != want {
		t.Fatalf("Display output mismatch\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestSummary(t *testing.T) {
	f := testsupport.NewForest("north", 4, 16, 10)
	s := f.Summary()
	if s.Name != "north" || s.Count != 3 || math.Abs(s.AverageHeight-10) > 1e-9 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Tallest == nil || s.Tallest.Height != 16 {
		t.Fatalf("unexpected tallest %+v", s.Tallest)
	}
	if empty := forest.New("x").Summary(); empty.Tallest != nil || empty.AverageHeight != 0 {
		t.Fatalf("unexpected empty summary %+v", empty)
	}
}

func TestForestCloneIsDeep(t *testing.T) {
	f := testsupport.NewForest("north", 4, 5)
	c := f.Clone()
	c.Trees[0].Height = 100
	_ = c.CutByIndex(1)
	assertHeights(t, f, []float64{4, 5})
}

func assertHeights(t *testing.T, f *forest.Forest, want []float64) {
	t.Helper()
	if f.Len() != len(want) {
		t.Fatalf("tree count = %d, want %d", f.Len(), len(want))
	}
	for i, tree := range f.Trees {
		if math.Abs(tree.Height-want[i]) > 1e-9 {
			t.Fatalf("tree %d height = %v, want %v", i, tree.Height, want[i])
		}
	}
}
