package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pagesim/pagesim/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalConfigurationFromFile(t *testing.T) {
	type configuration struct {
		Capacities []int  `json:"capacities"`
		Name       string `json:"name"`
	}

	t.Run("Success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.jsonnet")
		require.NoError(t, os.WriteFile(path, []byte(`{
			capacities: [10, 10 * 10],
			name: "simulation" + "-1",
		}`), 0o666))

		var c configuration
		require.NoError(t, util.UnmarshalConfigurationFromFile(path, &c))
		require.Equal(t, []int{10, 100}, c.Capacities)
		require.Equal(t, "simulation-1", c.Name)
	})

	t.Run("EnvironmentVariable", func(t *testing.T) {
		t.Setenv("PAGESIM_NAME", "from-environment")
		path := filepath.Join(t.TempDir(), "config.jsonnet")
		require.NoError(t, os.WriteFile(path, []byte(`{
			name: std.extVar("PAGESIM_NAME"),
		}`), 0o666))

		var c configuration
		require.NoError(t, util.UnmarshalConfigurationFromFile(path, &c))
		require.Equal(t, "from-environment", c.Name)
	})

	t.Run("MissingFile", func(t *testing.T) {
		var c configuration
		err := util.UnmarshalConfigurationFromFile(filepath.Join(t.TempDir(), "nonexistent.jsonnet"), &c)
		require.ErrorContains(t, err, "Failed to read file contents")
	})

	t.Run("InvalidSyntax", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.jsonnet")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o666))

		var c configuration
		err := util.UnmarshalConfigurationFromFile(path, &c)
		require.ErrorContains(t, err, "Failed to evaluate configuration")
	})
}
