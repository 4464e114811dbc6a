package forest

import "fmt"

// Tree is one tree in a forest. Fields are mutated in place by growth and
// accepted without validation; a negative height or a future planting year is
// stored as given.
type Tree struct {
	Species        Species `json:"species" yaml:"species"`
	Height         float64 `json:"height" yaml:"height"`
	GrowthRate     float64 `json:"growth_rate" yaml:"growth_rate"`
	YearOfPlanting int     `json:"year_of_planting" yaml:"year_of_planting"`
}

// NewTree constructs a tree. growthRate is a fraction (0.15 is 15% a year).
func NewTree(species Species, height, growthRate float64, yearOfPlanting int) *Tree {
	return &Tree{
		Species:        species,
		Height:         height,
		GrowthRate:     growthRate,
		YearOfPlanting: yearOfPlanting,
	}
}

// GrowOneYear applies one year of multiplicative growth.
func (t *Tree) GrowOneYear() {
	t.Height += t.Height * t.GrowthRate
}

// GrowthPercent returns the growth rate scaled to a percentage.
func (t *Tree) GrowthPercent() float64 {
	return t.GrowthRate * 100
}

// ReapingFormat renders the compact form used when reporting reaped trees,
// e.g. "BIRCH 2015 12.50' 15.0%".
func (t *Tree) ReapingFormat() string {
	return fmt.Sprintf("%s %d %.2f' %.1f%%", t.Species, t.YearOfPlanting, t.Height, t.GrowthPercent())
}

// DisplayFormat renders the column-aligned row used in forest listings.
func (t *Tree) DisplayFormat() string {
	return fmt.Sprintf("%-6s %d  %.2f'  %.1f%%", t.Species, t.YearOfPlanting, t.Height, t.GrowthPercent())
}

func (t *Tree) String() string {
	return fmt.Sprintf("Species: %s, Year of Planting: %d, Height: %.2f', Growth Rate: %.1f%%",
		t.Species, t.YearOfPlanting, t.Height, t.GrowthPercent())
}

// Clone returns an independent copy of t.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
