package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signoz-community/signoz-cli/internal/constants"
	"github.com/signoz-community/signoz-cli/internal/generate"
)

// NewGenerateCommand creates the generate command, which rebuilds the
// command tree from an OpenAPI document.
func NewGenerateCommand() *cobra.Command {
	var (
		openapiPath string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the command tree from an OpenAPI document",
		Long: `Regenerate the command catalogue from a SigNoz OpenAPI document.

The generated file can be inspected with the tree command and embedded in
a subsequent build. The configured base URL is recorded in the tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := os.ReadFile(openapiPath)
			if err != nil {
				return fmt.Errorf("reading OpenAPI document: %w", err)
			}

			tree, err := generate.FromOpenAPI(spec, viper.GetString("base-url"))
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(tree, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding command tree: %w", err)
			}

			if err := os.WriteFile(outPath, append(data, '\n'), constants.OutputFilePerm); err != nil {
				return fmt.Errorf("writing command tree: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), outPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&openapiPath, "openapi", "openapi.yml", "OpenAPI document to read")
	cmd.Flags().StringVar(&outPath, "out", "command_tree.json", "output file")

	return cmd
}
