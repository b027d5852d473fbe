package cmds

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
)

func (p *Executor) PrintUsage() {
	names := make(map[*Command][]string)
	for name, command := range p.commands {
		names[command] = append(names[command], name)
	}

	commands := lo.Keys(names)
	for _, command := range commands {
		slices.Sort(names[command])
	}
	slices.SortFunc(commands, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	w := tabwriter.NewWriter(p.Output, 0, 4, 2, ' ', 0)
	for _, command := range commands {
		fmt.Fprintf(w, "  %s\t%s\n", strings.Join(names[command], ", "), command.Description)
	}
	w.Flush()
}
