package seeds

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/soup/bff"
)

func TestRun(t *testing.T) {
	planted, err := Run("test.star", `
copier = asm("[.>}]")
plant(copier, count = 3)
plant("+-")
for i in range(2):
    plant(hex("00" * genome_length))
`, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(planted) != 6 {
		t.Fatalf("got %d", len(planted))
	}
	for i := range 3 {
		if !planted[i].Equal(bff.Assemble("[.>}]", 8)) {
			t.Fatalf("got %s", bff.Disassemble(planted[i]))
		}
	}
	if bff.Disassemble(planted[3]) != "+-______" {
		t.Fatalf("got %s", bff.Disassemble(planted[3]))
	}
	planted[0][0] = 0
	if planted[1][0] != '[' {
		t.Fatal("planted genomes should not alias")
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.star")
	if err := os.WriteFile(path, []byte(`plant(asm("<>"))`), 0644); err != nil {
		t.Fatal(err)
	}
	planted, err := Run(path, nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(planted) != 1 || bff.Disassemble(planted[0]) != "<>__" {
		t.Fatalf("got %v", planted)
	}
}

func TestRunErrors(t *testing.T) {
	for src, expected := range map[string]string{
		`plant(hex("00"))`:     "genome length 1, expecting 4",
		`plant(1)`:             "expecting bytes or string",
		`plant("+", count=-1)`: "negative count",
		`hex("zz")`:            "parse genome",
		`undefined()`:          "undefined",
	} {
		_, err := Run("bad.star", src, 4)
		if err == nil || !strings.Contains(err.Error(), expected) {
			t.Fatalf("%s: got %v", src, err)
		}
	}
}
