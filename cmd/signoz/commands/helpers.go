package commands

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signoz-community/signoz-cli/internal/binder"
	"github.com/signoz-community/signoz-cli/internal/executor"
	"github.com/signoz-community/signoz-cli/internal/httpclient"
)

// Common static errors used throughout the commands package.
var (
	ErrHTTPStatus      = errors.New("http request failed")
	ErrInvalidQueryArg = errors.New("invalid --query value (expected name=value)")
)

// executeAndRender is the shared tail of every request-issuing command:
// resolve credentials, run the request through the auth resolver wrapped in
// the version fallback, print the response, then surface the sanity-check
// or status error. The body is always printed before any error.
func executeAndRender(cmd *cobra.Command, req *httpclient.Request) error {
	creds := executor.Credentials{
		APIKey: viper.GetString("api-key"),
		Token:  viper.GetString("token"),
	}

	mode, err := executor.ResolveAuthMode(viper.GetString("auth"), creds)
	if err != nil {
		return err
	}

	transport := httpclient.New(viper.GetString("base-url"), viper.GetDuration("timeout"))
	exec := executor.New(transport, creds, mode)
	run := executor.WithVersionFallback(exec.Execute, executor.IsHTML, executor.AlternateVersionPath)

	resp, err := run(cmd.Context(), req)
	if err != nil {
		return err
	}

	if err := renderResponse(cmd.OutOrStdout(), resp, shouldPretty(cmd), boolFlag(cmd, "raw")); err != nil {
		return err
	}

	if err := executor.CheckAPIResponse(req.Path, resp); err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %d", ErrHTTPStatus, resp.StatusCode)
	}

	return nil
}

// globalHeaders parses the repeatable --header flag. Values that are
// neither name:value nor name=value are skipped.
func globalHeaders(cmd *cobra.Command) []binder.Pair {
	values, _ := cmd.Flags().GetStringArray("header")

	var out []binder.Pair

	for _, raw := range values {
		if name, value, ok := splitHeader(raw); ok {
			out = append(out, binder.Pair{Name: name, Value: value})
		}
	}

	return out
}

func splitHeader(value string) (string, string, bool) {
	if name, val, ok := strings.Cut(value, ":"); ok {
		return strings.TrimSpace(name), strings.TrimSpace(val), true
	}

	if name, val, ok := strings.Cut(value, "="); ok {
		return strings.TrimSpace(name), strings.TrimSpace(val), true
	}

	return "", "", false
}

func boolFlag(cmd *cobra.Command, name string) bool {
	value, _ := cmd.Flags().GetBool(name)

	return value
}
