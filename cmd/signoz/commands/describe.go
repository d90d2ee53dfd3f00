package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(tree *catalog.CommandTree) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "describe RESOURCE OPERATION",
		Short: "Describe a specific operation",
		Long:  "Show the method, path, parameters, and body declaration of one operation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := tree.FindOperation(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch output {
			case "json":
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")

				return encoder.Encode(op)
			case "yaml":
				encoder := yaml.NewEncoder(out)
				defer func() {
					_ = encoder.Close()
				}()

				return encoder.Encode(op)
			default:
				fmt.Fprintf(out, "%s %s\n", args[0], op.Name)
				fmt.Fprintf(out, "  method: %s\n", op.Method)
				fmt.Fprintf(out, "  path: %s\n", op.Path)

				if op.Summary != "" {
					fmt.Fprintf(out, "  summary: %s\n", op.Summary)
				}

				if op.Description != "" {
					fmt.Fprintf(out, "  description: %s\n", strings.TrimSpace(op.Description))
				}

				if op.Deprecated {
					fmt.Fprintln(out, "  deprecated: true")
				}

				if len(op.Params) > 0 {
					fmt.Fprintln(out, "  params:")
					for _, param := range op.Params {
						fmt.Fprintf(out, "    --%s  %s (%s)\n", param.Flag, param.SchemaType, param.Location)
					}
				}

				if op.RequestBody != nil {
					fmt.Fprintf(out, "  body: %s (%s)\n", op.RequestBody.SchemaType, op.RequestBody.ContentType)
				}

				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json, yaml)")

	return cmd
}
