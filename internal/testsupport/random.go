package testsupport

// FixedSource replays scripted random values. Ints and Floats are consumed in
// order and wrap around when exhausted; an empty list yields zero.
type FixedSource struct {
	Ints   []int
	Floats []float64

	intPos   int
	floatPos int
}

// IntN returns the next scripted int reduced modulo n.
func (s *FixedSource) IntN(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.intPos%len(s.Ints)]
	s.intPos++
	return v % n
}

// Float64 returns the next scripted float.
func (s *FixedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.floatPos%len(s.Floats)]
	s.floatPos++
	return v
}
