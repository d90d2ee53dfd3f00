package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

// Static errors for body resolution failures.
var (
	ErrMissingRequiredBody = errors.New("missing required --body")
	ErrInvalidJSONBody     = errors.New("invalid JSON body")
)

// Body is a resolved request payload: structured JSON when the declared
// content type is a JSON type, opaque text otherwise.
type Body struct {
	JSON   any
	Text   string
	IsJSON bool
}

// ResolveBody resolves the request body for one invocation. supplied is
// whether the user passed a body argument at all; an optional body with no
// argument produces no payload but still surfaces the declared content type
// so request headers are set correctly.
func ResolveBody(def *catalog.RequestBodyDef, raw string, supplied bool, stdin io.Reader) (*Body, string, error) {
	if def == nil {
		return nil, "", nil
	}

	if !supplied {
		if def.Required {
			return nil, "", ErrMissingRequiredBody
		}

		return nil, def.ContentType, nil
	}

	text, err := ReadInput(raw, stdin)
	if err != nil {
		return nil, "", err
	}

	if strings.Contains(def.ContentType, "json") {
		var parsed any
		if err := json.Unmarshal([]byte(text), &parsed); err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
		}

		return &Body{JSON: parsed, IsJSON: true}, def.ContentType, nil
	}

	return &Body{Text: text}, def.ContentType, nil
}

// ReadInput resolves a body argument to its text: "@-" or "-" reads
// standard input, "@file" reads the named file, anything else is the
// literal value.
func ReadInput(value string, stdin io.Reader) (string, error) {
	if value == "@-" || value == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading body from stdin: %w", err)
		}

		return string(data), nil
	}

	if name, ok := strings.CutPrefix(value, "@"); ok {
		data, err := os.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("reading body file: %w", err)
		}

		return string(data), nil
	}

	return value, nil
}
