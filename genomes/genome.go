package genomes

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/reusee/soup/randoms"
)

// Genome is a fixed-length byte sequence that is both program and data.
type Genome []byte

func Random(r randoms.Rand, length int) Genome {
	g := make(Genome, length)
	for i := range g {
		g[i] = byte(r.Uint32())
	}
	return g
}

func (g Genome) Equal(other Genome) bool {
	return bytes.Equal(g, other)
}

func (g Genome) Clone() Genome {
	return bytes.Clone(g)
}

func (g Genome) Hex() string {
	return hex.EncodeToString(g)
}

func (g Genome) HexPrefix(n int) string {
	return hex.EncodeToString(g[:min(n, len(g))])
}

func (g Genome) String() string {
	return g.Hex()
}

func ParseHex(str string) (Genome, error) {
	str = strings.TrimSpace(str)
	bs, err := hex.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("parse genome: %w", err)
	}
	return Genome(bs), nil
}
