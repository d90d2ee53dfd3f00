package binder_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signoz-community/signoz-cli/internal/binder"
	"github.com/signoz-community/signoz-cli/pkg/catalog"
)

func TestResolveBodyNoDeclaration(t *testing.T) {
	t.Parallel()

	body, contentType, err := binder.ResolveBody(nil, "", false, strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, body)
	assert.Empty(t, contentType)
}

func TestResolveBodyUnsupplied(t *testing.T) {
	t.Parallel()

	t.Run("required fails", func(t *testing.T) {
		t.Parallel()

		def := &catalog.RequestBodyDef{Required: true, ContentType: "application/json"}

		_, _, err := binder.ResolveBody(def, "", false, strings.NewReader(""))
		assert.ErrorIs(t, err, binder.ErrMissingRequiredBody)
	})

	t.Run("optional still surfaces the content type", func(t *testing.T) {
		t.Parallel()

		def := &catalog.RequestBodyDef{Required: false, ContentType: "application/json"}

		body, contentType, err := binder.ResolveBody(def, "", false, strings.NewReader(""))
		require.NoError(t, err)
		assert.Nil(t, body)
		assert.Equal(t, "application/json", contentType)
	})
}

func TestResolveBodyJSON(t *testing.T) {
	t.Parallel()

	def := &catalog.RequestBodyDef{Required: true, ContentType: "application/json"}

	t.Run("literal", func(t *testing.T) {
		t.Parallel()

		body, contentType, err := binder.ResolveBody(def, `{"a":1}`, true, strings.NewReader(""))
		require.NoError(t, err)
		require.NotNil(t, body)
		assert.True(t, body.IsJSON)
		assert.Equal(t, map[string]any{"a": float64(1)}, body.JSON)
		assert.Equal(t, "application/json", contentType)
	})

	t.Run("malformed fails closed", func(t *testing.T) {
		t.Parallel()

		_, _, err := binder.ResolveBody(def, `{"a":`, true, strings.NewReader(""))
		assert.ErrorIs(t, err, binder.ErrInvalidJSONBody)
	})
}

func TestResolveBodyOpaqueText(t *testing.T) {
	t.Parallel()

	def := &catalog.RequestBodyDef{Required: true, ContentType: "text/plain"}

	body, contentType, err := binder.ResolveBody(def, "not json at all {", true, strings.NewReader(""))
	require.NoError(t, err)
	require.NotNil(t, body)
	assert.False(t, body.IsJSON)
	assert.Equal(t, "not json at all {", body.Text)
	assert.Equal(t, "text/plain", contentType)
}

func TestResolveBodyInputForms(t *testing.T) {
	t.Parallel()

	def := &catalog.RequestBodyDef{Required: true, ContentType: "text/plain"}

	t.Run("stdin via @-", func(t *testing.T) {
		t.Parallel()

		body, _, err := binder.ResolveBody(def, "@-", true, strings.NewReader("hello"))
		require.NoError(t, err)
		assert.Equal(t, "hello", body.Text)
	})

	t.Run("stdin via bare dash", func(t *testing.T) {
		t.Parallel()

		body, _, err := binder.ResolveBody(def, "-", true, strings.NewReader("hello"))
		require.NoError(t, err)
		assert.Equal(t, "hello", body.Text)
	})

	t.Run("file via @", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "payload.txt")
		require.NoError(t, os.WriteFile(path, []byte("from file"), 0600))

		body, _, err := binder.ResolveBody(def, "@"+path, true, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, "from file", body.Text)
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()

		_, _, err := binder.ResolveBody(def, "@"+filepath.Join(t.TempDir(), "missing"), true, strings.NewReader(""))
		assert.Error(t, err)
	})
}
