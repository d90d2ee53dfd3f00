package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/signoz-community/signoz-cli/internal/binder"
	"github.com/signoz-community/signoz-cli/internal/httpclient"
)

type responseEnvelope struct {
	Status  int           `json:"status"`
	Headers []binder.Pair `json:"headers"`
	Body    any           `json:"body"`
}

// renderResponse prints the decoded body, or the full envelope in raw
// mode, as compact or indented JSON.
func renderResponse(w io.Writer, resp *httpclient.Response, pretty, raw bool) error {
	var output any = resp.Body

	if raw {
		output = responseEnvelope{
			Status:  resp.StatusCode,
			Headers: resp.Headers,
			Body:    resp.Body,
		}
	}

	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}

	return nil
}

// shouldPretty honors an explicit --pretty flag and otherwise defaults to
// pretty output when stdout is a terminal.
func shouldPretty(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("pretty") {
		return boolFlag(cmd, "pretty")
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
