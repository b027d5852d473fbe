package reports

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/soup/genomes"
)

func ArtifactName(epoch int) string {
	return fmt.Sprintf("replicator_epoch_%d.hex", epoch)
}

// WriteArtifact saves the full hex of a replicator genome under dir.
func WriteArtifact(dir string, epoch int, genome genomes.Genome) (string, error) {
	path := filepath.Join(dir, ArtifactName(epoch))
	f, err := os.Create(path)
	if err != nil {
		return "", wrap(err)
	}
	if _, err := fmt.Fprintf(f, "epoch %d\n%s\n", epoch, genome.Hex()); err != nil {
		f.Close()
		return "", wrap(err)
	}
	if err := f.Close(); err != nil {
		return "", wrap(err)
	}
	return path, nil
}
