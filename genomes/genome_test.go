package genomes

import (
	"strings"
	"testing"

	"github.com/reusee/soup/randoms"
)

func TestHex(t *testing.T) {
	g := Genome{0x00, 0x0f, 0xab, 0xff}
	if s := g.Hex(); s != "000fabff" {
		t.Fatalf("got %s", s)
	}
	if s := g.HexPrefix(2); s != "000f" {
		t.Fatalf("got %s", s)
	}
	if s := g.HexPrefix(32); s != "000fabff" {
		t.Fatalf("got %s", s)
	}

	parsed, err := ParseHex(" 000fabff\n")
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(g) {
		t.Fatalf("got %v", parsed)
	}

	_, err = ParseHex("xyz")
	if err == nil || !strings.Contains(err.Error(), "parse genome") {
		t.Fatalf("got %v", err)
	}
}

func TestClone(t *testing.T) {
	g := Genome{1, 2, 3}
	c := g.Clone()
	c[0] = 9
	if g[0] != 1 {
		t.Fatal("clone should not alias")
	}
}

func TestNewPopulation(t *testing.T) {
	pop := NewPopulation(randoms.New(1), 16, 8)
	if len(pop) != 16 {
		t.Fatalf("got %d", len(pop))
	}
	if err := pop.Validate(8); err != nil {
		t.Fatal(err)
	}
	if err := pop.Validate(9); err == nil {
		t.Fatal("should error")
	}

	again := NewPopulation(randoms.New(1), 16, 8)
	if !pop.Equal(again) {
		t.Fatal("same seed should give same population")
	}

	clone := pop.Clone()
	clone[0][0]++
	if pop.Equal(clone) {
		t.Fatal("clone should not alias")
	}

	// independent slots
	distinct := make(map[string]bool)
	for _, g := range pop {
		distinct[string(g)] = true
	}
	if len(distinct) < 15 {
		t.Fatalf("got %d distinct genomes", len(distinct))
	}
}
