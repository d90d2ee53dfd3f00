// Package httpclient is the blocking transport for resolved requests. It
// knows nothing about credentials; the executor supplies every credential
// header as part of the request.
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/signoz-community/signoz-cli/internal/binder"
	"github.com/signoz-community/signoz-cli/internal/constants"
)

// Static errors for transport failures.
var (
	ErrInvalidURL = errors.New("invalid request URL")
)

// Request is one fully-specified physical HTTP call. Path is either
// relative to the client's base URL or an absolute URL. Query pairs keep
// their order and may repeat names.
type Request struct {
	Method      string
	Path        string
	Query       []binder.Pair
	Headers     []binder.Pair
	Body        *binder.Body
	ContentType string
}

// Response is the decoded result of one physical call. Body is structured
// JSON when the response content type indicates JSON, otherwise the raw
// text as a string.
type Response struct {
	StatusCode  int
	Headers     []binder.Pair
	Body        any
	ContentType string
}

// Client issues blocking HTTP requests against one base URL.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

// New creates a transport client. Status-driven retries are disabled; the
// only retry behavior in this CLI is the credential and version fallback
// logic in the executor. A zero timeout falls back to the default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 0
	httpClient.Logger = nil
	httpClient.HTTPClient.Timeout = timeout

	// The default policy treats 5xx as retryable and swallows the response
	// once attempts run out; every received response must pass through so
	// its body can be decoded and printed.
	httpClient.CheckRetry = func(_ context.Context, _ *http.Response, _ error) (bool, error) {
		return false, nil
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// Do executes one request and decodes the response body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var payload []byte

	if req.Body != nil {
		if req.Body.IsJSON {
			payload, err = json.Marshal(req.Body.JSON)
			if err != nil {
				return nil, fmt.Errorf("encoding request body: %w", err)
			}
		} else {
			payload = []byte(req.Body.Text)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, payload)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("User-Agent", constants.UserAgent)
	httpReq.Header.Set("Accept", "application/json")

	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	// Later pairs win, so flag and parameter headers override whatever the
	// executor put in front of them.
	for _, header := range req.Headers {
		httpReq.Header.Set(header.Name, header.Value)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	headers := make([]binder.Pair, 0, len(resp.Header))
	for name, values := range resp.Header {
		for _, value := range values {
			headers = append(headers, binder.Pair{Name: name, Value: value})
		}
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))

	return &Response{
		StatusCode:  resp.StatusCode,
		Headers:     headers,
		Body:        decodeBody(text, contentType),
		ContentType: contentType,
	}, nil
}

// decodeBody parses JSON bodies and carries everything else, including
// JSON that fails to parse, as a plain string.
func decodeBody(text []byte, contentType string) any {
	if strings.Contains(contentType, "json") {
		var decoded any
		if err := json.Unmarshal(text, &decoded); err == nil {
			return decoded
		}
	}

	return string(text)
}

// buildURL joins the base URL and path, then appends the query pairs in
// order. Absolute URLs pass through untouched apart from the query.
func (c *Client) buildURL(path string, query []binder.Pair) (string, error) {
	full := path

	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		full = c.baseURL + path
	}

	parsed, err := url.Parse(full)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if len(query) > 0 {
		var encoded strings.Builder

		if parsed.RawQuery != "" {
			encoded.WriteString(parsed.RawQuery)
		}

		for _, pair := range query {
			if encoded.Len() > 0 {
				encoded.WriteByte('&')
			}

			encoded.WriteString(url.QueryEscape(pair.Name))
			encoded.WriteByte('=')
			encoded.WriteString(url.QueryEscape(pair.Value))
		}

		parsed.RawQuery = encoded.String()
	}

	return parsed.String(), nil
}
