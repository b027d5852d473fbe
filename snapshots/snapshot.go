package snapshots

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/reusee/e5"
	"github.com/reusee/soup/soups"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

const version = 2

// Snapshot is the resumable state of a soup.
type Snapshot struct {
	Version int
	soups.Checkpoint
}

func Encode(w io.Writer, snapshot Snapshot) error {
	snapshot.Version = version
	bw := brotli.NewWriterLevel(w, brotli.DefaultCompression)
	if err := gob.NewEncoder(bw).Encode(snapshot); err != nil {
		bw.Close()
		return wrap(err)
	}
	if err := bw.Close(); err != nil {
		return wrap(err)
	}
	return nil
}

func Decode(r io.Reader) (snapshot Snapshot, err error) {
	if err := gob.NewDecoder(brotli.NewReader(r)).Decode(&snapshot); err != nil {
		return snapshot, wrap(err)
	}
	if snapshot.Version != version {
		return snapshot, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}
	return snapshot, nil
}

// Save writes to a temporary file and renames it over path.
func Save(path string, snapshot Snapshot) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return wrap(err)
	}
	if err := Encode(f, snapshot); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return wrap(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return wrap(err)
	}
	return nil
}

func Load(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, wrap(err)
	}
	defer f.Close()
	return Decode(f)
}
