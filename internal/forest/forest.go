package forest

import (
	"fmt"
	"io"
)

// Forest is a named, ordered collection of trees. Index order is display
// order and is the address used by CutByIndex and Reap.
type Forest struct {
	Name  string  `json:"name" yaml:"name"`
	Trees []*Tree `json:"trees" yaml:"trees"`
}

// New returns an empty forest.
func New(name string) *Forest {
	return &Forest{Name: name, Trees: []*Tree{}}
}

// Len returns the number of trees.
func (f *Forest) Len() int {
	return len(f.Trees)
}

// Add appends tree to the end of the forest.
func (f *Forest) Add(tree *Tree) {
	f.Trees = append(f.Trees, tree)
}

// AddRandomTree plants one random tree at the end of the forest.
func (f *Forest) AddRandomTree(gen *Generator) *Tree {
	tree := gen.NewTree()
	f.Add(tree)
	return tree
}

// CutByIndex removes the tree at index; later trees shift down by one.
// An out-of-range index returns an *IndexError and leaves the forest unchanged.
func (f *Forest) CutByIndex(index int) error {
	if index < 0 || index >= len(f.Trees) {
		return &IndexError{Index: index, Length: len(f.Trees)}
	}
	copy(f.Trees[index:], f.Trees[index+1:])
	f.Trees[len(f.Trees)-1] = nil
	f.Trees = f.Trees[:len(f.Trees)-1]
	return nil
}

// SimulateYearlyGrowth grows every tree by one year.
func (f *Forest) SimulateYearlyGrowth() {
	for _, tree := range f.Trees {
		tree.GrowOneYear()
	}
}

// AverageHeight returns the mean tree height, or 0 for an empty forest.
func (f *Forest) AverageHeight() float64 {
	if len(f.Trees) == 0 {
		return 0
	}
	var total float64
	for _, tree := range f.Trees {
		total += tree.Height
	}
	return total / float64(len(f.Trees))
}

// Display writes the forest listing followed by the summary line.
func (f *Forest) Display(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Forest name: %s\n", f.Name); err != nil {
		return err
	}
	for _, tree := range f.Trees {
		if _, err := fmt.Fprintf(w, "     %s\n", tree.DisplayFormat()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "There are %d trees, with an average height of %.2f\n", len(f.Trees), f.AverageHeight())
	return err
}

// Summary aggregates a forest for machine-readable output.
type Summary struct {
	Name          string  `json:"name" yaml:"name"`
	Count         int     `json:"count" yaml:"count"`
	AverageHeight float64 `json:"average_height" yaml:"average_height"`
	Tallest       *Tree   `json:"tallest,omitempty" yaml:"tallest,omitempty"`
}

// Summary returns aggregate figures for the forest.
func (f *Forest) Summary() Summary {
	s := Summary{
		Name:          f.Name,
		Count:         len(f.Trees),
		AverageHeight: f.AverageHeight(),
	}
	for _, tree := range f.Trees {
		if s.Tallest == nil || tree.Height > s.Tallest.Height {
			s.Tallest = tree
		}
	}
	return s
}

// Clone returns a deep copy of the forest.
func (f *Forest) Clone() *Forest {
	c := &Forest{Name: f.Name, Trees: make([]*Tree, len(f.Trees))}
	for i, tree := range f.Trees {
		c.Trees[i] = tree.Clone()
	}
	return c
}
