// Package executor decides which credential headers accompany each
// physical call and runs the version-mismatch recovery around the
// transport. It is the only place that issues requests; a single logical
// invocation performs at most four physical calls (credential fallback
// and version fallback, each at most once).
package executor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/signoz-community/signoz-cli/internal/binder"
	"github.com/signoz-community/signoz-cli/internal/httpclient"
)

// APIKeyHeader carries the API key on api-key attempts.
const APIKeyHeader = "SIGNOZ-API-KEY"

// Static errors for credential resolution.
var (
	ErrUnknownAuthMode = errors.New("unknown auth mode (expected auto, api-key, or token)")
)

// Transport executes one physical HTTP call.
type Transport interface {
	Do(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error)
}

// ExecuteFunc executes one logical request, possibly issuing more than one
// physical call underneath.
type ExecuteFunc func(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error)

// AuthMode selects which credential headers govern a call.
type AuthMode string

const (
	// AuthModeAuto tries the API key first and falls back to the bearer
	// token on 401/403 when both are configured.
	AuthModeAuto AuthMode = "auto"
	// AuthModeAPIKey uses only the API-key header.
	AuthModeAPIKey AuthMode = "api-key"
	// AuthModeToken uses only the bearer-token header.
	AuthModeToken AuthMode = "token"
)

// Credentials are the process-wide credential values, immutable after
// startup. Token is the raw value; a Bearer prefix is added when absent.
type Credentials struct {
	APIKey string
	Token  string
}

// ParseAuthMode parses an explicit --auth flag value.
func ParseAuthMode(value string) (AuthMode, error) {
	switch AuthMode(value) {
	case AuthModeAuto, AuthModeAPIKey, AuthModeToken:
		return AuthMode(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAuthMode, value)
	}
}

// ResolveAuthMode picks the mode for this invocation. An explicit flag
// wins; otherwise a token without an API key selects Token, and every
// other combination selects Auto.
func ResolveAuthMode(explicit string, creds Credentials) (AuthMode, error) {
	if explicit != "" {
		return ParseAuthMode(explicit)
	}

	if creds.APIKey == "" && creds.Token != "" {
		return AuthModeToken, nil
	}

	return AuthModeAuto, nil
}

// Executor runs requests under one resolved credential mode.
type Executor struct {
	transport Transport
	creds     Credentials
	mode      AuthMode
}

// New creates an executor for one invocation.
func New(transport Transport, creds Credentials, mode AuthMode) *Executor {
	return &Executor{
		transport: transport,
		creds:     creds,
		mode:      mode,
	}
}

type credentialKind int

const (
	credentialAPIKey credentialKind = iota
	credentialToken
)

// Execute runs one logical request under the selected mode. Auto mode with
// an API key retries once with the bearer token on 401/403; the second
// response replaces the first. Every other mode issues exactly one call.
func (e *Executor) Execute(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	switch e.mode {
	case AuthModeAPIKey:
		return e.attempt(ctx, req, credentialAPIKey)
	case AuthModeToken:
		return e.attempt(ctx, req, credentialToken)
	default:
		if e.creds.APIKey == "" {
			return e.attempt(ctx, req, credentialToken)
		}

		resp, err := e.attempt(ctx, req, credentialAPIKey)
		if err != nil {
			return nil, err
		}

		unauthorized := resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden
		if unauthorized && e.creds.Token != "" {
			return e.attempt(ctx, req, credentialToken)
		}

		return resp, nil
	}
}

// attempt issues one physical call with the chosen credential header in
// front of the request's own headers, so explicit flag and parameter
// headers stay on top for every attempt.
func (e *Executor) attempt(ctx context.Context, req *httpclient.Request, kind credentialKind) (*httpclient.Response, error) {
	attempt := *req
	attempt.Headers = append(e.credentialHeaders(kind), req.Headers...)

	return e.transport.Do(ctx, &attempt)
}

func (e *Executor) credentialHeaders(kind credentialKind) []binder.Pair {
	switch kind {
	case credentialAPIKey:
		if e.creds.APIKey != "" {
			return []binder.Pair{{Name: APIKeyHeader, Value: e.creds.APIKey}}
		}
	case credentialToken:
		if e.creds.Token != "" {
			return []binder.Pair{{Name: "Authorization", Value: bearerValue(e.creds.Token)}}
		}
	}

	return nil
}

func bearerValue(token string) string {
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return token
	}

	return "Bearer " + token
}
