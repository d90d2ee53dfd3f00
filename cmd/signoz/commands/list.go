package commands

import (
	"encoding/json"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

// NewListCommand creates the list command.
func NewListCommand(tree *catalog.CommandTree) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources and operations",
		Long:  "List every resource and operation in the command catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				type entry struct {
					Resource string   `json:"resource"`
					Ops      []string `json:"ops"`
				}

				out := make([]entry, 0, len(tree.Resources))

				for _, res := range tree.Resources {
					ops := make([]string, 0, len(res.Ops))
					for _, op := range res.Ops {
						ops = append(ops, op.Name)
					}

					out = append(out, entry{Resource: res.Name, Ops: ops})
				}

				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")

				return encoder.Encode(out)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Resource", "Operation", "Method", "Path")

			for _, res := range tree.Resources {
				for _, op := range res.Ops {
					_ = table.Append(res.Name, op.Name, op.Method, op.Path)
				}
			}

			return table.Render()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON")

	return cmd
}
