package commands

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/leapddl/internal/cli/output"
	"github.com/leapstack-labs/leapddl/pkg/sqlgen"
	"github.com/spf13/cobra"
)

// NewGeneratorsCommand creates the generators command.
func NewGeneratorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List registered generators per statement type",
		Long: `List the generator registry in dispatch order. For each statement the
applicable generator with the highest level wins; ties go to the one
registered first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutEngine(cmd)
			return listGenerators(cmdCtx.Renderer, cmdCtx.Registry)
		},
	}
}

func generatorInfos(reg *sqlgen.Registry) []output.GeneratorInfo {
	var infos []output.GeneratorInfo
	for _, typ := range reg.Types() {
		for _, e := range reg.Entries(typ) {
			infos = append(infos, output.GeneratorInfo{
				Type:  string(e.Type),
				Name:  e.Name(),
				Level: e.Level,
				Order: e.Seq,
			})
		}
	}
	return infos
}

func listGenerators(r *output.Renderer, reg *sqlgen.Registry) error {
	infos := generatorInfos(reg)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Statement", "Generator", "Level", "Order"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.Type, info.Name, strconv.Itoa(info.Level), strconv.Itoa(info.Order)})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Generators"))
		r.Println("")
		t.RenderMarkdown()
		return nil
	}

	r.Header("Generators")
	t.Render()
	return nil
}
