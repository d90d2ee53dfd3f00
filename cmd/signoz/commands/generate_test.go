package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

const generateSpec = `openapi: 3.0.3
info:
  title: SigNoz API
  version: "1.0"
paths:
  /api/v1/channels:
    get:
      operationId: listChannels
      tags: [channels]
`

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "openapi.yml")
	outPath := filepath.Join(dir, "command_tree.json")

	require.NoError(t, os.WriteFile(specPath, []byte(generateSpec), 0o600))

	out, err := runRoot(t, testTree(), nil,
		"generate",
		"--openapi", specPath,
		"--out", outPath,
		"--base-url", "http://signoz.example:3301",
	)
	require.NoError(t, err)
	assert.Equal(t, outPath, strings.TrimSpace(out))

	// The generated file must load back through the catalogue parser.
	tree, err := catalog.LoadFile(outPath)
	require.NoError(t, err)

	assert.Equal(t, "http://signoz.example:3301", tree.BaseURL)
	require.Len(t, tree.Resources, 1)
	assert.Equal(t, "channels", tree.Resources[0].Name)

	op, err := tree.FindOperation("channels", "list-channels")
	require.NoError(t, err)
	assert.Equal(t, "GET", op.Method)
	assert.Equal(t, "/api/v1/channels", op.Path)
}

func TestGenerateCommandMissingSpec(t *testing.T) {
	_, err := runRoot(t, testTree(), nil,
		"generate",
		"--openapi", filepath.Join(t.TempDir(), "absent.yml"),
		"--out", filepath.Join(t.TempDir(), "tree.json"),
	)
	assert.Error(t, err)
}
