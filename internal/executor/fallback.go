package executor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/signoz-community/signoz-cli/internal/httpclient"
)

// ErrHTMLResponse signals that an API path answered with an HTML page.
// This is a configuration problem, never a valid API response.
var ErrHTMLResponse = errors.New(
	"received an HTML page instead of an API response; check the base URL and that the API key or token is valid")

// IsHTML classifies a response as served by a UI route rather than the
// API: either the content type says text/html, or the decoded body is a
// string starting with an HTML document prefix.
func IsHTML(resp *httpclient.Response) bool {
	if strings.Contains(resp.ContentType, "text/html") {
		return true
	}

	body, ok := resp.Body.(string)
	if !ok {
		return false
	}

	prefix := strings.ToLower(strings.TrimSpace(body))

	return strings.HasPrefix(prefix, "<!doctype html") || strings.HasPrefix(prefix, "<html")
}

// AlternateVersionPath maps a /api/v2/ path to its /api/v1/ counterpart,
// replacing only the first occurrence. The second result is false for
// paths that have no alternate.
func AlternateVersionPath(path string) (string, bool) {
	target := path

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		parsed, err := url.Parse(path)
		if err != nil {
			return "", false
		}

		target = parsed.Path
	}

	if !strings.HasPrefix(target, "/api/v2/") {
		return "", false
	}

	return strings.Replace(path, "/api/v2/", "/api/v1/", 1), true
}

// WithVersionFallback wraps next so that a response classified by classify
// is retried once against the alternate path, holding method, query, body,
// and headers fixed. The retry response replaces the original only when it
// is not itself classified; otherwise the original response stands, so the
// final sanity check reports on the v2 attempt.
func WithVersionFallback(next ExecuteFunc, classify func(*httpclient.Response) bool, alternate func(string) (string, bool)) ExecuteFunc {
	return func(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
		resp, err := next(ctx, req)
		if err != nil {
			return nil, err
		}

		alt, ok := alternate(req.Path)
		if !ok || !classify(resp) {
			return resp, nil
		}

		retry := *req
		retry.Path = alt

		fallback, err := next(ctx, &retry)
		if err != nil {
			// The alternate attempt is opportunistic; its transport
			// failures never mask the response already in hand.
			return resp, nil
		}

		if !classify(fallback) {
			return fallback, nil
		}

		return resp, nil
	}
}

// CheckAPIResponse is the final sanity check: once all fallbacks are
// settled, an API path that still answered HTML fails regardless of
// status code. Non-API paths are never subject to this check.
func CheckAPIResponse(path string, resp *httpclient.Response) error {
	if !isAPIPath(path) {
		return nil
	}

	if IsHTML(resp) {
		return fmt.Errorf("%w (%s %d)", ErrHTMLResponse, path, resp.StatusCode)
	}

	return nil
}

func isAPIPath(path string) bool {
	if strings.HasPrefix(path, "/api/") {
		return true
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return strings.Contains(path, "/api/")
	}

	return false
}
