package soups

import (
	"errors"
	"fmt"

	"github.com/reusee/soup/genomes"
)

// Checkpoint is what a run needs to continue exactly where it stopped.
type Checkpoint struct {
	Next       int
	Population genomes.Population
	// random stream position, nil if the soup's stream cannot be saved
	Stream []byte
	// genomes seen at earlier censuses
	Novelty []byte
}

func (s *Soup) Checkpoint() (ret Checkpoint, err error) {
	ret.Next = s.next
	ret.Population = s.population.Clone()
	if s.stream != nil {
		ret.Stream, err = s.stream.MarshalBinary()
		if err != nil {
			return ret, fmt.Errorf("save stream: %w", err)
		}
	}
	ret.Novelty, err = s.novelty.MarshalBinary()
	if err != nil {
		return ret, fmt.Errorf("save novelty: %w", err)
	}
	return ret, nil
}

// Resume restores a checkpoint. Parts missing from the checkpoint keep their
// current state. On error the soup is left partially restored.
func (s *Soup) Resume(checkpoint Checkpoint) error {
	if checkpoint.Stream != nil && s.stream == nil {
		return errors.New("checkpoint has a stream position but the soup stream cannot be restored")
	}
	if err := s.Restore(checkpoint.Population, checkpoint.Next); err != nil {
		return err
	}
	if checkpoint.Stream != nil {
		if err := s.stream.UnmarshalBinary(checkpoint.Stream); err != nil {
			return fmt.Errorf("restore stream: %w", err)
		}
	}
	if checkpoint.Novelty != nil {
		if err := s.novelty.UnmarshalBinary(checkpoint.Novelty); err != nil {
			return fmt.Errorf("restore novelty: %w", err)
		}
	}
	return nil
}
