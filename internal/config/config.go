package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings shared by the command line tools. Every section
// is optional in the file; missing keys keep their Default value.
type Config struct {
	Log          LogConfig          `toml:"log"`
	Tree         TreeConfig         `toml:"tree"`
	Heap         HeapConfig         `toml:"heap"`
	Apriori      AprioriConfig      `toml:"apriori"`
	DecisionTree DecisionTreeConfig `toml:"decision-tree"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

type TreeConfig struct {
	// Strict rejects a build array that is not strictly ascending.
	Strict bool `toml:"strict"`
}

type HeapConfig struct {
	Capacity int `toml:"capacity"`
}

type AprioriConfig struct {
	// MinConfidence in percent. Nil means use the minimum support.
	MinConfidence *float64 `toml:"min-confidence"`
}

type DecisionTreeConfig struct {
	MaxDepth        int `toml:"max-depth"`
	MinSamplesSplit int `toml:"min-samples-split"`
}

func Default() *Config {
	return &Config{
		Heap:         HeapConfig{Capacity: 1000},
		DecisionTree: DecisionTreeConfig{MaxDepth: 5, MinSamplesSplit: 2},
	}
}

// Load decodes the TOML file at path over Default. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing toml config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate reports every out of range value.
func (c *Config) Validate() error {
	var errs []error
	if err := validatePositive(c.Heap.Capacity); err != nil {
		errs = append(errs, fmt.Errorf("heap.capacity: %w", err))
	}
	if c.Apriori.MinConfidence != nil {
		if err := validatePercent(*c.Apriori.MinConfidence); err != nil {
			errs = append(errs, fmt.Errorf("apriori.min-confidence: %w", err))
		}
	}
	if err := validatePositive(c.DecisionTree.MaxDepth); err != nil {
		errs = append(errs, fmt.Errorf("decision-tree.max-depth: %w", err))
	}
	if err := validatePositive(c.DecisionTree.MinSamplesSplit); err != nil {
		errs = append(errs, fmt.Errorf("decision-tree.min-samples-split: %w", err))
	}
	return errors.Join(errs...)
}
