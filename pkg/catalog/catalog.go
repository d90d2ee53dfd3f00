// Package catalog holds the declarative command tree describing the SigNoz
// API surface: resources, their operations, parameters, and request bodies.
// The tree is generated ahead of time (see the generate command) and loaded
// once at process start; it is read-only for the lifetime of the process.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed schemas/command_tree.json
var embeddedTree []byte

// Static errors for catalogue loading and lookup.
var (
	ErrResourceNotFound  = errors.New("unknown resource")
	ErrOperationNotFound = errors.New("unknown operation")
	ErrInvalidTree       = errors.New("invalid command tree")
)

// CommandTree is the root of the catalogue.
type CommandTree struct {
	Version   int        `json:"version"`
	BaseURL   string     `json:"base_url"`
	Resources []Resource `json:"resources"`
}

// Resource groups the operations exposed under one subcommand.
type Resource struct {
	Name string      `json:"name"`
	Ops  []Operation `json:"ops"`
}

// Operation describes one callable endpoint.
type Operation struct {
	Name        string          `json:"name"`
	Method      string          `json:"method"`
	Path        string          `json:"path"`
	Summary     string          `json:"summary,omitempty"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags"`
	Deprecated  bool            `json:"deprecated"`
	Params      []ParamDef      `json:"params"`
	RequestBody *RequestBodyDef `json:"request_body,omitempty"`
}

// ParamDef declares one operation parameter. WireName is the name used in the
// path template, query string, or header; Flag is the user-facing CLI flag.
type ParamDef struct {
	WireName   string `json:"param_name"`
	Name       string `json:"name"`
	Flag       string `json:"flag"`
	Location   string `json:"location"`
	Required   bool   `json:"required"`
	SchemaType string `json:"schema_type"`
	IsArray    bool   `json:"is_array"`
}

// RequestBodyDef declares an operation's request body. ContentType decides
// how body input is parsed: JSON content types are parsed fail-closed,
// anything else is carried as opaque text.
type RequestBodyDef struct {
	Required    bool   `json:"required"`
	ContentType string `json:"content_type"`
	SchemaType  string `json:"schema_type"`
}

// Load parses the command tree embedded at build time.
func Load() (*CommandTree, error) {
	return parse(embeddedTree)
}

// LoadFile parses a command tree from an externally generated file.
func LoadFile(path string) (*CommandTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading command tree: %w", err)
	}

	return parse(data)
}

func parse(data []byte) (*CommandTree, error) {
	var tree CommandTree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parsing command tree: %w", err)
	}

	if err := tree.validate(); err != nil {
		return nil, err
	}

	return &tree, nil
}

// validate checks the structural invariants the binder relies on, most
// importantly that every path parameter names a placeholder that actually
// occurs in its operation's path template.
func (t *CommandTree) validate() error {
	for _, res := range t.Resources {
		if res.Name == "" {
			return fmt.Errorf("%w: resource with empty name", ErrInvalidTree)
		}

		for _, op := range res.Ops {
			if op.Name == "" || op.Method == "" || op.Path == "" {
				return fmt.Errorf("%w: incomplete operation under %q", ErrInvalidTree, res.Name)
			}

			for _, param := range op.Params {
				if param.Location != "path" {
					continue
				}

				placeholder := "{" + param.WireName + "}"
				if !strings.Contains(op.Path, placeholder) {
					return fmt.Errorf("%w: %s %s declares path parameter %q with no %s placeholder",
						ErrInvalidTree, res.Name, op.Name, param.WireName, placeholder)
				}
			}
		}
	}

	return nil
}

// Resource returns the named resource, if present.
func (t *CommandTree) Resource(name string) (*Resource, error) {
	for i := range t.Resources {
		if t.Resources[i].Name == name {
			return &t.Resources[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
}

// FindOperation looks up one resource/operation pair.
func (t *CommandTree) FindOperation(resource, operation string) (*Operation, error) {
	res, err := t.Resource(resource)
	if err != nil {
		return nil, err
	}

	for i := range res.Ops {
		if res.Ops[i].Name == operation {
			return &res.Ops[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s %s", ErrOperationNotFound, resource, operation)
}
