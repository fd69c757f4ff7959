package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeToml(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "university.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tcs := []struct {
		name    string
		content string
		assert  func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "all sections",
			content: `
[log]
    debug = true
[tree]
    strict = true
[heap]
    capacity = 16
[apriori]
    min-confidence = 75.5
[decision-tree]
    max-depth = 3
    min-samples-split = 4
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.True(t, cfg.Log.Debug)
				assert.True(t, cfg.Tree.Strict)
				assert.Equal(t, 16, cfg.Heap.Capacity)
				require.NotNil(t, cfg.Apriori.MinConfidence)
				assert.Equal(t, 75.5, *cfg.Apriori.MinConfidence)
				assert.Equal(t, 3, cfg.DecisionTree.MaxDepth)
				assert.Equal(t, 4, cfg.DecisionTree.MinSamplesSplit)
			},
		},
		{
			name:    "partial section",
			content: "[decision-tree]\nmax-depth = 2\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, cfg.DecisionTree.MaxDepth)
				assert.Equal(t, 2, cfg.DecisionTree.MinSamplesSplit)
				assert.Nil(t, cfg.Apriori.MinConfidence)
			},
		},
		{
			name:    "invalid values",
			content: "[heap]\ncapacity = 0\n[apriori]\nmin-confidence = 101\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "heap.capacity")
				assert.ErrorContains(t, err, "apriori.min-confidence")
			},
		},
		{
			name:    "unknown key",
			content: "[heap]\nsize = 3\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.ErrorContains(t, err, "heap.size")
			},
		},
		{
			name:    "malformed",
			content: "[heap\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.ErrorContains(t, err, "error parsing toml config")
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeToml(t, tc.content))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoad_Path(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "no such file")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.NoError(t, ValidatePercent(0))
	assert.NoError(t, ValidatePercent(100))
	assert.Error(t, ValidatePercent(-1))
	assert.Error(t, ValidatePositive(0))
}
