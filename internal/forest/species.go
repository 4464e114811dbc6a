package forest

import (
	"fmt"
	"strings"
)

// Species identifies the kind of a tree.
type Species string

const (
	SpeciesBirch Species = "BIRCH"
	SpeciesMaple Species = "MAPLE"
	SpeciesFir   Species = "FIR"
)

var allSpecies = []Species{
	SpeciesBirch,
	SpeciesMaple,
	SpeciesFir,
}

// AllSpecies returns every species in declaration order.
func AllSpecies() []Species {
	out := make([]Species, len(allSpecies))
	copy(out, allSpecies)
	return out
}

// ParseSpecies matches value case-insensitively after trimming whitespace.
func ParseSpecies(value string) (Species, error) {
	switch s := Species(strings.ToUpper(strings.TrimSpace(value))); s {
	case SpeciesBirch, SpeciesMaple, SpeciesFir:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSpecies, value)
	}
}

// Valid reports whether s is a member of the species set.
func (s Species) Valid() bool {
	switch s {
	case SpeciesBirch, SpeciesMaple, SpeciesFir:
		return true
	default:
		return false
	}
}

func (s Species) String() string {
	return string(s)
}
