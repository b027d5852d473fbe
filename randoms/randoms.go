// Package randoms provides the single random stream shared by population
// sampling, pairing, mutation and assay victims.
package randoms

import (
	"encoding"
	"math/rand/v2"
	"time"
)

type Rand = *rand.Rand

// Stream is a source whose position can be saved and restored.
type Stream interface {
	rand.Source
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

var _ Stream = new(rand.PCG)

// NewStream returns a PCG source. A zero seed is replaced by a time-derived one.
func NewStream(seed uint64) Stream {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// New returns a PCG-backed stream. A zero seed is replaced by a time-derived one.
func New(seed uint64) Rand {
	return rand.New(NewStream(seed))
}

// Sequence is a rand.Source that replays fixed values, wrapping around at the end.
type Sequence struct {
	Values []uint64
	next   int
}

var _ rand.Source = new(Sequence)

func (s *Sequence) Uint64() uint64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next]
	s.next = (s.next + 1) % len(s.Values)
	return v
}

func FromSequence(values ...uint64) Rand {
	return rand.New(&Sequence{
		Values: values,
	})
}

// Counting wraps a source and counts draws.
type Counting struct {
	Source rand.Source
	Draws  int
}

var _ rand.Source = new(Counting)

func (c *Counting) Uint64() uint64 {
	c.Draws++
	return c.Source.Uint64()
}
