package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

func TestLoadEmbeddedTree(t *testing.T) {
	t.Parallel()

	tree, err := catalog.Load()
	require.NoError(t, err)

	assert.Equal(t, 1, tree.Version)
	assert.NotEmpty(t, tree.BaseURL)
	assert.NotEmpty(t, tree.Resources)
}

func TestFindOperation(t *testing.T) {
	t.Parallel()

	tree, err := catalog.Load()
	require.NoError(t, err)

	t.Run("known operation", func(t *testing.T) {
		t.Parallel()

		op, err := tree.FindOperation("channels", "get-channel")
		require.NoError(t, err)
		assert.Equal(t, "GET", op.Method)
		assert.Equal(t, "/api/v1/channels/{id}", op.Path)
		require.Len(t, op.Params, 1)
		assert.Equal(t, "path", op.Params[0].Location)
	})

	t.Run("unknown operation", func(t *testing.T) {
		t.Parallel()

		_, err := tree.FindOperation("channels", "does-not-exist")
		assert.ErrorIs(t, err, catalog.ErrOperationNotFound)
	})

	t.Run("unknown resource", func(t *testing.T) {
		t.Parallel()

		_, err := tree.FindOperation("does-not-exist", "get-channel")
		assert.ErrorIs(t, err, catalog.ErrResourceNotFound)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	writeTree := func(t *testing.T, content string) string {
		t.Helper()

		path := filepath.Join(t.TempDir(), "command_tree.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		return path
	}

	t.Run("valid tree", func(t *testing.T) {
		t.Parallel()

		path := writeTree(t, `{
			"version": 1,
			"base_url": "http://localhost:3301",
			"resources": [{
				"name": "rules",
				"ops": [{
					"name": "get-rule",
					"method": "GET",
					"path": "/api/v1/rules/{id}",
					"params": [{
						"param_name": "id", "name": "path__id", "flag": "id",
						"location": "path", "required": true,
						"schema_type": "string", "is_array": false
					}]
				}]
			}]
		}`)

		tree, err := catalog.LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, tree.Resources, 1)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.LoadFile(writeTree(t, "{not json"))
		assert.Error(t, err)
	})

	t.Run("path parameter without placeholder", func(t *testing.T) {
		t.Parallel()

		path := writeTree(t, `{
			"version": 1,
			"base_url": "http://localhost:3301",
			"resources": [{
				"name": "rules",
				"ops": [{
					"name": "get-rule",
					"method": "GET",
					"path": "/api/v1/rules",
					"params": [{
						"param_name": "id", "name": "path__id", "flag": "id",
						"location": "path", "required": true,
						"schema_type": "string", "is_array": false
					}]
				}]
			}]
		}`)

		_, err := catalog.LoadFile(path)
		assert.ErrorIs(t, err, catalog.ErrInvalidTree)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}
