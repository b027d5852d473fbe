package bff

import (
	"strings"

	"github.com/reusee/soup/genomes"
)

// Assemble turns program text into a genome of the given length. Characters
// that are not opcodes (including '_' and whitespace) become zero bytes, and the
// result is zero padded or truncated to length.
func Assemble(program string, length int) genomes.Genome {
	g := make(genomes.Genome, length)
	i := 0
	for _, r := range program {
		if i >= length {
			break
		}
		if r == ' ' || r == '\n' || r == '\t' {
			continue
		}
		if r < 0x80 && OpCode(r).Valid() {
			g[i] = byte(r)
		}
		i++
	}
	return g
}

func Disassemble(g genomes.Genome) string {
	var b strings.Builder
	b.Grow(len(g))
	for _, c := range g {
		b.WriteString(OpCode(c).String())
	}
	return b.String()
}
