// Package binder turns user-supplied argument values for one catalogue
// operation into a concrete request shape: resolved path, ordered query
// pairs, ordered header pairs, and an optional typed body.
package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

// Static errors for binding failures. All of them abort before any
// network activity.
var (
	ErrMissingRequiredFlag = errors.New("missing required flag")
	ErrMissingValue        = errors.New("missing value for flag")
	ErrInvalidArrayLiteral = errors.New("invalid JSON array literal")
)

// Pair is one ordered name/value pair. Duplicate names are permitted;
// multi-value parameters expand to repeated pairs.
type Pair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BindParams resolves the declared parameters of op against the supplied
// values, keyed by the parameter's logical name. It returns the final path
// with every placeholder substituted, plus query and header pairs in
// declaration order.
func BindParams(op *catalog.Operation, values map[string][]string) (string, []Pair, []Pair, error) {
	path := op.Path

	var query, headers []Pair

	for i := range op.Params {
		param := &op.Params[i]

		supplied := values[param.Name]
		if len(supplied) == 0 {
			// A path placeholder without a value can never form a valid URL,
			// so path parameters are mandatory whatever the declaration says.
			if param.Required || param.Location == "path" {
				return "", nil, nil, fmt.Errorf("%w: --%s", ErrMissingRequiredFlag, param.Flag)
			}

			continue
		}

		resolved, err := resolveValues(param, supplied)
		if err != nil {
			return "", nil, nil, err
		}

		switch param.Location {
		case "path":
			// An empty JSON array literal expands to zero values.
			if len(resolved) == 0 {
				return "", nil, nil, fmt.Errorf("%w: --%s", ErrMissingValue, param.Flag)
			}

			encoded := url.PathEscape(resolved[0])
			path = strings.ReplaceAll(path, "{"+param.WireName+"}", encoded)
		case "query":
			for _, value := range resolved {
				query = append(query, Pair{Name: param.WireName, Value: value})
			}
		case "header":
			for _, value := range resolved {
				headers = append(headers, Pair{Name: param.WireName, Value: value})
			}
		default:
			// Unknown locations are inert so newer catalogues stay loadable.
		}
	}

	return path, query, headers, nil
}

// resolveValues expands a single JSON-array literal for array parameters;
// anything else is used verbatim, one entry per flag occurrence.
func resolveValues(param *catalog.ParamDef, supplied []string) ([]string, error) {
	if !param.IsArray || len(supplied) != 1 {
		return supplied, nil
	}

	if !strings.HasPrefix(strings.TrimSpace(supplied[0]), "[") {
		return supplied, nil
	}

	expanded, err := expandJSONArray(supplied[0])
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", param.Flag, err)
	}

	return expanded, nil
}

// expandJSONArray flattens a JSON array literal to strings: strings stay
// as-is, numbers and booleans are stringified, anything else is
// re-serialized.
func expandJSONArray(raw string) ([]string, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var parsed any
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArrayLiteral, err)
	}

	elements, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrInvalidArrayLiteral)
	}

	out := make([]string, 0, len(elements))

	for _, element := range elements {
		switch value := element.(type) {
		case string:
			out = append(out, value)
		case json.Number:
			out = append(out, value.String())
		case bool:
			out = append(out, strconv.FormatBool(value))
		default:
			serialized, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidArrayLiteral, err)
			}

			out = append(out, string(serialized))
		}
	}

	return out, nil
}
