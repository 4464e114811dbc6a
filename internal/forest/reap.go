package forest

// Reaping records one tree replaced during Reap.
type Reaping struct {
	Index       int
	Reaped      *Tree
	Replacement *Tree
}

// Reap replaces every tree strictly taller than threshold with a freshly
// planted one at the same index.
//
// Candidates are collected in a full pass over the current trees before any
// replacement is written back, so a replacement taller than threshold is
// never reaped in the same call.
func (f *Forest) Reap(threshold float64, gen *Generator) []Reaping {
	var reaped []Reaping
	for i, tree := range f.Trees {
		if tree.Height > threshold {
			reaped = append(reaped, Reaping{
				Index:       i,
				Reaped:      tree,
				Replacement: gen.NewReplacement(),
			})
		}
	}

	for _, r := range reaped {
		f.Trees[r.Index] = r.Replacement
	}
	return reaped
}
