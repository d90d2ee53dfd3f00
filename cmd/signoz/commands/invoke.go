package commands

import (
	"github.com/spf13/cobra"

	"github.com/signoz-community/signoz-cli/internal/binder"
	"github.com/signoz-community/signoz-cli/internal/httpclient"
	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

// addResourceCommands generates one command per catalogue resource and one
// subcommand per operation.
func addResourceCommands(root *cobra.Command, tree *catalog.CommandTree) {
	for i := range tree.Resources {
		res := &tree.Resources[i]

		resCmd := &cobra.Command{
			Use:   res.Name,
			Short: "Operations on " + res.Name,
		}

		for j := range res.Ops {
			resCmd.AddCommand(newOperationCommand(&res.Ops[j]))
		}

		root.AddCommand(resCmd)
	}
}

func newOperationCommand(op *catalog.Operation) *cobra.Command {
	short := op.Summary
	if short == "" {
		short = op.Method + " " + op.Path
	}

	cmd := &cobra.Command{
		Use:   op.Name,
		Short: short,
		Long:  op.Description,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, op)
		},
	}

	if op.Deprecated {
		cmd.Deprecated = "this endpoint is marked deprecated upstream"
	}

	for _, param := range op.Params {
		help := param.Location + " parameter (" + param.SchemaType + ")"
		if param.Required || param.Location == "path" {
			help += ", required"
		}

		if param.IsArray {
			cmd.Flags().StringArray(param.Flag, nil, help)
		} else {
			cmd.Flags().String(param.Flag, "", help)
		}
	}

	if op.RequestBody != nil {
		cmd.Flags().String("body", "", "request body (JSON literal, @file, or @- for stdin)")
	}

	return cmd
}

// runOperation binds the supplied flags against the operation declaration
// and hands the resolved request to the shared execution pipeline. Missing
// required values fail here, before any network call.
func runOperation(cmd *cobra.Command, op *catalog.Operation) error {
	values := map[string][]string{}

	for _, param := range op.Params {
		if !cmd.Flags().Changed(param.Flag) {
			continue
		}

		if param.IsArray {
			supplied, _ := cmd.Flags().GetStringArray(param.Flag)
			values[param.Name] = supplied
		} else {
			supplied, _ := cmd.Flags().GetString(param.Flag)
			values[param.Name] = []string{supplied}
		}
	}

	path, query, headerParams, err := binder.BindParams(op, values)
	if err != nil {
		return err
	}

	var (
		body        *binder.Body
		contentType string
	)

	if op.RequestBody != nil {
		raw, _ := cmd.Flags().GetString("body")

		body, contentType, err = binder.ResolveBody(op.RequestBody, raw, cmd.Flags().Changed("body"), cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	req := &httpclient.Request{
		Method:      op.Method,
		Path:        path,
		Query:       query,
		Headers:     append(globalHeaders(cmd), headerParams...),
		Body:        body,
		ContentType: contentType,
	}

	return executeAndRender(cmd, req)
}
