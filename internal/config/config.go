// Package config loads the generator settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is looked up in the working directory when no path is given.
const FileName = "service-ts-gen.yaml"

const (
	GroupByPath = "path"
	GroupByTag  = "tag"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Input             string `yaml:"input"`
	Output            string `yaml:"output"`
	Extension         string `yaml:"extension"`
	RepositoryModule  string `yaml:"repositoryModule"`
	FileType          string `yaml:"fileType"`
	DynamicType       string `yaml:"dynamicType"`
	VoidType          string `yaml:"voidType"`
	GroupBy           string `yaml:"groupBy"`
	OptionalArguments bool   `yaml:"optionalArguments"`
	Concurrency       int    `yaml:"concurrency"`
	FetchAttempts     uint   `yaml:"fetchAttempts"`
}

func Default() *Config {
	return &Config{
		Input:            "-",
		Output:           "./src",
		Extension:        ".ts",
		RepositoryModule: "@private/repository",
		FileType:         "FormData",
		DynamicType:      "any",
		VoidType:         "void",
		GroupBy:          GroupByPath,
		Concurrency:      4,
		FetchAttempts:    3,
	}
}

// Load reads the file at path on top of Default. An empty path looks for
// FileName in the working directory and returns the defaults when there is
// none.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working dir: %w", err)
		}
		candidate := filepath.Join(wd, FileName)
		if _, err := os.Stat(candidate); err != nil {
			return cfg, nil
		}
		path = candidate
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.GroupBy != GroupByPath && c.GroupBy != GroupByTag:
		return fmt.Errorf("%w: groupBy must be %q or %q, got %q", ErrInvalid, GroupByPath, GroupByTag, c.GroupBy)
	case c.Output == "":
		return fmt.Errorf("%w: output directory is empty", ErrInvalid)
	case c.Extension == "":
		return fmt.Errorf("%w: extension is empty", ErrInvalid)
	case c.Concurrency <= 0:
		return fmt.Errorf("%w: concurrency must be positive, got %d", ErrInvalid, c.Concurrency)
	}
	return nil
}
