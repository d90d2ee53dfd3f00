package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand(testTree(), "1.0.0", "abc", "today")

	assert.Equal(t, "signoz", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	names := map[string]bool{}
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"version", "list", "describe", "tree", "request", "generate", "items"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}

	for _, flag := range []string{"config", "base-url", "api-key", "token", "auth", "header", "timeout", "pretty", "raw"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}

	baseURL := root.PersistentFlags().Lookup("base-url")
	require.NotNil(t, baseURL)
	assert.Equal(t, "http://localhost:3301", baseURL.DefValue)
}

func TestResourceCommandStructure(t *testing.T) {
	root := NewRootCommand(testTree(), "1.0.0", "abc", "today")

	items, _, err := root.Find([]string{"items"})
	require.NoError(t, err)
	assert.Equal(t, "Operations on items", items.Short)
	assert.Len(t, items.Commands(), 5)

	get, _, err := root.Find([]string{"items", "get"})
	require.NoError(t, err)
	assert.Equal(t, "Get one item", get.Short)
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, testTree(), nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "signoz test (commit none, built unknown)\n", out)
}
