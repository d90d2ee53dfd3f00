package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

// NewTreeCommand creates the tree command.
func NewTreeCommand(tree *catalog.CommandTree) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the full command tree",
		Long:  "Dump the entire command catalogue in machine-readable form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if output == "yaml" {
				encoder := yaml.NewEncoder(out)
				defer func() {
					_ = encoder.Close()
				}()

				return encoder.Encode(tree)
			}

			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")

			return encoder.Encode(tree)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format (json, yaml)")

	return cmd
}
