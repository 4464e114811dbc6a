package forest

import (
	"math/rand/v2"
	"time"
)

// Source supplies random values. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Ranges bounds the values drawn for newly planted trees.
type Ranges struct {
	MinPlantingYear    int
	ReplantWindowYears int
	MinHeight          float64
	MaxHeight          float64
	MinGrowthRate      float64
	MaxGrowthRate      float64
}

// DefaultRanges returns the stock planting ranges.
func DefaultRanges() Ranges {
	return Ranges{
		MinPlantingYear:    2000,
		ReplantWindowYears: 20,
		MinHeight:          10.0,
		MaxHeight:          20.0,
		MinGrowthRate:      0.10,
		MaxGrowthRate:      0.20,
	}
}

// Generator plants random trees.
type Generator struct {
	source Source
	now    func() time.Time
	ranges Ranges
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithSource overrides the random source.
func WithSource(src Source) GeneratorOption {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// WithClock overrides the clock used to determine the current year.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGenerator returns a Generator drawing from the unseeded math/rand/v2
// source unless WithSource is supplied.
func NewGenerator(ranges Ranges, opts ...GeneratorOption) *Generator {
	g := &Generator{
		source: globalSource{},
		now:    time.Now,
		ranges: ranges,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Ranges returns the generator's planting ranges.
func (g *Generator) Ranges() Ranges {
	return g.ranges
}

// NewTree plants a tree with a year drawn from [MinPlantingYear, current year].
// A MinPlantingYear after the current year plants in the current year.
func (g *Generator) NewTree() *Tree {
	year := g.currentYear()
	earliest := min(g.ranges.MinPlantingYear, year)
	return g.plant(earliest + g.intN(year-earliest+1))
}

// NewReplacement plants a tree for reaping, with a year drawn from
// [current year - ReplantWindowYears, current year].
func (g *Generator) NewReplacement() *Tree {
	return g.plant(g.currentYear() - g.intN(g.ranges.ReplantWindowYears+1))
}

func (g *Generator) plant(year int) *Tree {
	species := allSpecies[g.intN(len(allSpecies))]
	height := g.uniform(g.ranges.MinHeight, g.ranges.MaxHeight)
	rate := g.uniform(g.ranges.MinGrowthRate, g.ranges.MaxGrowthRate)
	return NewTree(species, height, rate, year)
}

func (g *Generator) currentYear() int {
	return g.now().Year()
}

// intN guards against non-positive spans, which rand.IntN rejects.
func (g *Generator) intN(n int) int {
	if n <= 1 {
		return 0
	}
	return g.source.IntN(n)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.source.Float64()*(hi-lo)
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

func (globalSource) Float64() float64 { return rand.Float64() }
