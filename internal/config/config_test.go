package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: https://example.com/v2/api-docs
output: ./src/services
groupBy: tag
optionalArguments: true
concurrency: 2
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/v2/api-docs", cfg.Input)
	assert.Equal(t, "./src/services", cfg.Output)
	assert.Equal(t, GroupByTag, cfg.GroupBy)
	assert.True(t, cfg.OptionalArguments)
	assert.Equal(t, 2, cfg.Concurrency)
	// untouched keys keep their defaults
	assert.Equal(t, ".ts", cfg.Extension)
	assert.Equal(t, "@private/repository", cfg.RepositoryModule)
	assert.Equal(t, uint(3), cfg.FetchAttempts)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("concurrency: [1"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse yaml")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"group by", func(c *Config) { c.GroupBy = "controller" }},
		{"output", func(c *Config) { c.Output = "" }},
		{"extension", func(c *Config) { c.Extension = "" }},
		{"concurrency", func(c *Config) { c.Concurrency = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
