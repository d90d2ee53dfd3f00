package constants

import "time"

// File permissions.
const (
	// OutputFilePerm is the permission for generated catalogue files.
	OutputFilePerm = 0644
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests,
	// applied uniformly to every physical call including fallback retries.
	DefaultHTTPTimeout = 30 * time.Second
)

// Environment variables recognized as fallbacks for global flags.
// The environment is only consulted when the corresponding flag is absent.
const (
	EnvBaseURL = "SIGNOZ_API_URL"
	EnvAPIKey  = "SIGNOZ_API_KEY"
	EnvToken   = "SIGNOZ_TOKEN"
)

// UserAgent identifies the CLI on every outgoing request.
const UserAgent = "signoz-cli"
