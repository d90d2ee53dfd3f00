package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/signoz-community/signoz-cli/internal/binder"
	"github.com/signoz-community/signoz-cli/internal/httpclient"
	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

// NewRequestCommand creates the raw request command for endpoints the
// catalogue does not cover.
func NewRequestCommand() *cobra.Command {
	var (
		queryFlags  []string
		bodyArg     string
		contentType string
	)

	cmd := &cobra.Command{
		Use:   "request METHOD PATH",
		Short: "Issue an arbitrary request against the API",
		Long: `Issue a single request without going through the catalogue.

PATH is resolved against the configured base URL unless it is an absolute
URL. Credential resolution and the HTML sanity check apply exactly as they
do for catalogue operations.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query []binder.Pair

			for _, raw := range queryFlags {
				name, value, ok := strings.Cut(raw, "=")
				if !ok {
					return fmt.Errorf("%w: %q", ErrInvalidQueryArg, raw)
				}

				query = append(query, binder.Pair{Name: name, Value: value})
			}

			var (
				body *binder.Body
				ct   string
				err  error
			)

			if cmd.Flags().Changed("body") {
				def := &catalog.RequestBodyDef{ContentType: contentType}

				body, ct, err = binder.ResolveBody(def, bodyArg, true, cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			req := &httpclient.Request{
				Method:      strings.ToUpper(args[0]),
				Path:        args[1],
				Query:       query,
				Headers:     globalHeaders(cmd),
				Body:        body,
				ContentType: ct,
			}

			return executeAndRender(cmd, req)
		},
	}

	cmd.Flags().StringArrayVar(&queryFlags, "query", nil, "query parameter as name=value (repeatable)")
	cmd.Flags().StringVar(&bodyArg, "body", "", "request body (JSON literal, @file, or @- for stdin)")
	cmd.Flags().StringVar(&contentType, "content-type", "application/json", "request body content type")

	return cmd
}
