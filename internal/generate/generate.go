// Package generate builds a command tree from an OpenAPI document. The
// output is the catalogue the CLI embeds: resources named after the first
// tag (or path segment), kebab-case operation names, and deduplicated
// user-facing flags.
package generate

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

// ErrNoPaths means the document parsed but declares no operations.
var ErrNoPaths = errors.New("OpenAPI document declares no paths")

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// FromOpenAPI parses an OpenAPI v3 document (JSON or YAML) and produces a
// command tree with the given base URL. The output is deterministic:
// resources and operations are sorted by name, duplicate operation names
// get a numeric suffix.
func FromOpenAPI(spec []byte, baseURL string) (*catalog.CommandTree, error) {
	document, err := libopenapi.NewDocument(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	model, err := document.BuildV3Model()
	if err != nil {
		return nil, fmt.Errorf("building OpenAPI model: %w", err)
	}

	if model.Model.Paths == nil || model.Model.Paths.PathItems == nil || model.Model.Paths.PathItems.Len() == 0 {
		return nil, ErrNoPaths
	}

	resources := map[string][]catalog.Operation{}

	for pair := model.Model.Paths.PathItems.First(); pair != nil; pair = pair.Next() {
		path := pair.Key()
		item := pair.Value()

		if item == nil {
			continue
		}

		for _, entry := range operationsByMethod(item) {
			if entry.op == nil {
				continue
			}

			resource := resourceFromPath(path, entry.op.Tags)

			tags := make([]string, 0, len(entry.op.Tags))
			for _, tag := range entry.op.Tags {
				tags = append(tags, kebab(tag))
			}

			resources[resource] = append(resources[resource], catalog.Operation{
				Name:        opName(entry.op.OperationId, entry.method, path),
				Method:      entry.method,
				Path:        path,
				Summary:     entry.op.Summary,
				Description: entry.op.Description,
				Tags:        tags,
				Deprecated:  deref(entry.op.Deprecated),
				Params:      buildParams(item.Parameters, entry.op.Parameters),
				RequestBody: requestBodyInfo(entry.op.RequestBody),
			})
		}
	}

	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}

	sort.Strings(names)

	out := make([]catalog.Resource, 0, len(names))

	for _, name := range names {
		ops := resources[name]
		dedupeNames(ops)
		sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
		out = append(out, catalog.Resource{Name: name, Ops: ops})
	}

	return &catalog.CommandTree{
		Version:   1,
		BaseURL:   baseURL,
		Resources: out,
	}, nil
}

type methodOperation struct {
	method string
	op     *v3.Operation
}

func operationsByMethod(item *v3.PathItem) []methodOperation {
	return []methodOperation{
		{"GET", item.Get},
		{"POST", item.Post},
		{"PUT", item.Put},
		{"PATCH", item.Patch},
		{"DELETE", item.Delete},
		{"HEAD", item.Head},
		{"OPTIONS", item.Options},
	}
}

// buildParams merges path-level and operation-level parameters, the
// operation winning on (name, location) collisions, and assigns each a
// unique user-facing flag.
func buildParams(pathParams, opParams []*v3.Parameter) []catalog.ParamDef {
	type key struct{ name, location string }

	var order []key

	merged := map[key]*v3.Parameter{}

	for _, param := range append(append([]*v3.Parameter{}, pathParams...), opParams...) {
		if param == nil {
			continue
		}

		location := param.In
		if location == "" {
			location = "query"
		}

		k := key{name: param.Name, location: location}
		if _, seen := merged[k]; !seen {
			order = append(order, k)
		}

		merged[k] = param
	}

	usedFlags := map[string]bool{}
	out := make([]catalog.ParamDef, 0, len(order))

	for _, k := range order {
		param := merged[k]
		baseFlag := kebab(param.Name)

		flag := baseFlag
		if k.location == "header" {
			flag = "header-" + baseFlag
		}

		if usedFlags[flag] {
			flag = k.location + "-" + baseFlag
		}

		usedFlags[flag] = true

		schemaType, isArray := schemaInfo(param.Schema)

		out = append(out, catalog.ParamDef{
			WireName:   param.Name,
			Name:       k.location + "__" + baseFlag,
			Flag:       flag,
			Location:   k.location,
			Required:   deref(param.Required),
			SchemaType: schemaType,
			IsArray:    isArray,
		})
	}

	return out
}

// requestBodyInfo picks application/json when declared, otherwise the
// first declared content type.
func requestBodyInfo(body *v3.RequestBody) *catalog.RequestBodyDef {
	if body == nil || body.Content == nil || body.Content.Len() == 0 {
		return nil
	}

	var (
		contentType string
		media       *v3.MediaType
	)

	for pair := body.Content.First(); pair != nil; pair = pair.Next() {
		if contentType == "" {
			contentType = pair.Key()
			media = pair.Value()
		}

		if pair.Key() == "application/json" {
			contentType = pair.Key()
			media = pair.Value()

			break
		}
	}

	schemaType := "string"
	if media != nil {
		schemaType, _ = schemaInfo(media.Schema)
	}

	return &catalog.RequestBodyDef{
		Required:    deref(body.Required),
		ContentType: contentType,
		SchemaType:  schemaType,
	}
}

// schemaInfo reduces a schema to a display type and an is-array marker.
// References resolve through the proxy; a reference that cannot resolve
// falls back to its terminal name.
func schemaInfo(proxy *base.SchemaProxy) (string, bool) {
	if proxy == nil {
		return "string", false
	}

	schema := proxy.Schema()
	if schema == nil {
		if ref := proxy.GetReference(); ref != "" {
			parts := strings.Split(ref, "/")

			return parts[len(parts)-1], false
		}

		return "string", false
	}

	switch {
	case len(schema.OneOf) > 0:
		return "oneOf", false
	case len(schema.AnyOf) > 0:
		return "anyOf", false
	case len(schema.AllOf) > 0:
		return "allOf", false
	}

	if len(schema.Type) > 0 {
		if schema.Type[0] == "array" {
			itemType := "string"
			if schema.Items != nil && schema.Items.IsA() {
				itemType, _ = schemaInfo(schema.Items.A)
			}

			return "array<" + itemType + ">", true
		}

		return schema.Type[0], false
	}

	if schema.Properties != nil && schema.Properties.Len() > 0 {
		return "object", false
	}

	return "string", false
}

// resourceFromPath groups an operation under its first tag, falling back
// to the first path segment after a versioned /api/ prefix.
func resourceFromPath(path string, tags []string) string {
	if len(tags) > 0 {
		return kebab(tags[0])
	}

	var parts []string

	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) >= 3 && parts[0] == "api" && strings.HasPrefix(parts[1], "v") {
		return kebab(parts[2])
	}

	if len(parts) > 0 {
		return kebab(parts[0])
	}

	return "misc"
}

func opName(operationID, method, path string) string {
	if operationID != "" {
		return kebab(operationID)
	}

	cleaned := strings.NewReplacer("{", "", "}", "").Replace(path)
	cleaned = strings.Trim(strings.ReplaceAll(cleaned, "/", "-"), "-")

	return kebab(method + "-" + cleaned)
}

// dedupeNames suffixes repeated operation names within one resource so
// every subcommand name is unique; the first occurrence keeps its name.
func dedupeNames(ops []catalog.Operation) {
	seen := map[string]int{}

	for i := range ops {
		name := ops[i].Name

		seen[name]++
		if seen[name] > 1 {
			ops[i].Name = fmt.Sprintf("%s-%d", name, seen[name])
		}
	}
}

func kebab(value string) string {
	value = camelBoundary.ReplaceAllString(value, "$1-$2")
	value = strings.ReplaceAll(value, "_", "-")

	return strings.Trim(strings.ToLower(value), "-")
}

func deref(value *bool) bool {
	return value != nil && *value
}
