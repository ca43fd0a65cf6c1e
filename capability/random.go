package capability

import "math/rand/v2"

// Random yields floats in [0, 1).
type Random interface {
	Float64() float64
}

type defaultRandom struct{}

func (defaultRandom) Float64() float64 { return rand.Float64() }

// DefaultRandom draws from the runtime's global source.
var DefaultRandom Random = defaultRandom{}

// NewSeeded returns a deterministic source, for tests and reproducible runs.
func NewSeeded(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed))
}

// SequenceRandom replays the given values in a loop. Empty yields 0.
type SequenceRandom struct {
	values []float64
	next   int
}

func NewSequenceRandom(values ...float64) *SequenceRandom {
	return &SequenceRandom{values: values}
}

func (s *SequenceRandom) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
