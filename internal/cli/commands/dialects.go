package commands

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/leapddl/internal/cli/output"
	"github.com/leapstack-labs/leapddl/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects and their DDL capabilities",
		Long: `List every registered dialect with the capabilities that drive DDL
generation: tablespace clause style, index name qualification, table-scoped
index names, clustered index support and the identifier length limit.`,
		Example: `  # Show all dialects
  leapddl dialects

  # Machine-readable capabilities
  leapddl dialects --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutEngine(cmd)
			return listDialects(cmdCtx.Renderer, dialect.All())
		},
	}
}

func dialectInfo(d *dialect.Dialect) output.DialectInfo {
	cfg := d.Config()
	info := output.DialectInfo{
		Name:                cfg.Name,
		Aliases:             cfg.Aliases,
		Tablespaces:         cfg.SupportsTablespaces,
		IndexQualification:  cfg.IndexQualification.String(),
		TableScopedIndexes:  cfg.TableScopedIndexes,
		ClusteredIndexes:    cfg.SupportsClusteredIndexes,
		MaxIdentifierLength: cfg.MaxIdentifierLength,
		DefaultSchema:       cfg.DefaultSchema,
		Normalization:       cfg.Identifiers.Normalization.String(),
		Quoting:             cfg.Quoting.String(),
		ReservedWords:       len(cfg.ReservedWords),
	}
	if cfg.SupportsTablespaces {
		info.TablespaceStyle = cfg.TablespaceStyle.Prefix()
	}
	return info
}

func listDialects(r *output.Renderer, dialects []*dialect.Dialect) error {
	infos := make([]output.DialectInfo, 0, len(dialects))
	for _, d := range dialects {
		infos = append(infos, dialectInfo(d))
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Dialect", "Aliases", "Tablespace", "Qualifies", "Drop scope", "Clustered", "Max name"})
	for _, info := range infos {
		t.AppendRow(table.Row{
			info.Name,
			strings.Join(info.Aliases, ", "),
			orDash(info.TablespaceStyle),
			info.IndexQualification,
			dropScope(info.TableScopedIndexes),
			yesNo(info.ClusteredIndexes),
			maxName(info.MaxIdentifierLength),
		})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Dialects"))
		r.Println("")
		t.RenderMarkdown()
		return nil
	}

	r.Header("Dialects")
	t.Render()
	r.Println(r.Muted("Default: " + dialect.DefaultName))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dropScope(tableScoped bool) string {
	if tableScoped {
		return "table"
	}
	return "schema"
}

func maxName(n int) string {
	if n <= 0 {
		return "-"
	}
	return strconv.Itoa(n)
}
