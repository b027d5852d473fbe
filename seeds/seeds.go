// Package seeds runs starlark scripts that choose genomes to plant into the
// initial population.
//
// A script sees genome_length and three builtins:
//
//	asm(program)            assemble program text into genome bytes
//	hex(str)                decode a hex genome
//	plant(genome, count=1)  plant count copies of genome (bytes, or program text)
package seeds

import (
	"fmt"

	"github.com/reusee/soup/bff"
	"github.com/reusee/soup/genomes"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Run executes the script in src (a string, []byte or io.Reader, or nil to
// read filename) and returns the planted genomes in order.
func Run(filename string, src any, length int) ([]genomes.Genome, error) {
	var planted []genomes.Genome

	asm := starlark.NewBuiltin("asm", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var program string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "program", &program); err != nil {
			return nil, err
		}
		return starlark.Bytes(bff.Assemble(program, length)), nil
	})

	hex := starlark.NewBuiltin("hex", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var str string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "str", &str); err != nil {
			return nil, err
		}
		g, err := genomes.ParseHex(str)
		if err != nil {
			return nil, err
		}
		return starlark.Bytes(g), nil
	})

	plant := starlark.NewBuiltin("plant", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var value starlark.Value
		count := 1
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "genome", &value, "count?", &count); err != nil {
			return nil, err
		}
		var g genomes.Genome
		switch value := value.(type) {
		case starlark.Bytes:
			g = genomes.Genome(value)
		case starlark.String:
			g = bff.Assemble(string(value), length)
		default:
			return nil, fmt.Errorf("%s: expecting bytes or string, got %s", b.Name(), value.Type())
		}
		if len(g) != length {
			return nil, fmt.Errorf("%s: genome length %d, expecting %d", b.Name(), len(g), length)
		}
		if count < 0 {
			return nil, fmt.Errorf("%s: negative count %d", b.Name(), count)
		}
		for range count {
			planted = append(planted, g.Clone())
		}
		return starlark.None, nil
	})

	thread := &starlark.Thread{
		Name: "seeds",
	}
	_, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			While:           true,
			TopLevelControl: true,
		},
		thread,
		filename,
		src,
		starlark.StringDict{
			"genome_length": starlark.MakeInt(length),
			"asm":           asm,
			"hex":           hex,
			"plant":         plant,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("seeds %s: %w", filename, err)
	}
	return planted, nil
}
