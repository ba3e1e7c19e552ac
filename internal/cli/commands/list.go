package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/dotenv-linter/internal/cli/output"
	"github.com/leapstack-labs/dotenv-linter/pkg/lint/checks"
)

// CheckInfo describes one check for listing.
type CheckInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ChecksJSONOutput is the JSON output structure for the checks listing.
type ChecksJSONOutput struct {
	Checks []CheckInfo `json:"checks"`
	Count  int         `json:"count"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"checks"},
		Short:   "List available checks",
		Long: `List every check with a short description.

The names are the ones accepted by --skip, the skip config key and
control comments.`,
		Example: `  # List all checks
  dotenv-linter list

  # Output as JSON
  dotenv-linter list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listChecks(NewCommandContext(cmd).Renderer)
		},
	}
}

func checkInfos() []CheckInfo {
	kinds := checks.AvailableNames()
	infos := make([]CheckInfo, 0, len(kinds))
	for _, kind := range kinds {
		infos = append(infos, CheckInfo{Name: kind.String(), Description: checks.Describe(kind)})
	}
	return infos
}

func listChecks(r *output.Renderer) error {
	infos := checkInfos()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(ChecksJSONOutput{Checks: infos, Count: len(infos)})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Checks"))
		r.Println("")
		for _, info := range infos {
			r.Printf("- **%s** - %s\n", info.Name, info.Description)
		}
		return nil
	default:
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Check", "Description"})
		for _, info := range infos {
			t.AppendRow(table.Row{r.Styles().Check.Render(info.Name), info.Description})
		}
		t.Render()
		return nil
	}
}
