package census

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/reusee/soup/genomes"
)

// Novelty remembers genomes seen at earlier censuses. Membership is
// approximate, so counts of new genomes may be slightly low.
type Novelty struct {
	filter *bloom.BloomFilter
	total  int
}

func NewNovelty(expected uint, falsePositiveRate float64) *Novelty {
	return &Novelty{
		filter: bloom.NewWithEstimates(expected, falsePositiveRate),
	}
}

// Observe records every genome of pop and returns how many were not seen before.
func (n *Novelty) Observe(pop genomes.Population) int {
	added := 0
	for _, g := range pop {
		if !n.filter.TestAndAdd(g) {
			added++
		}
	}
	n.total += added
	return added
}

// Total is the number of distinct genomes observed so far.
func (n *Novelty) Total() int {
	return n.total
}

func (n *Novelty) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(binary.AppendUvarint(nil, uint64(n.total)))
	if _, err := n.filter.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Novelty) UnmarshalBinary(data []byte) error {
	total, size := binary.Uvarint(data)
	if size <= 0 {
		return fmt.Errorf("bad novelty total")
	}
	filter := new(bloom.BloomFilter)
	if _, err := filter.ReadFrom(bytes.NewReader(data[size:])); err != nil {
		return fmt.Errorf("read novelty filter: %w", err)
	}
	n.filter = filter
	n.total = int(total)
	return nil
}
