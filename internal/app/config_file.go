package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the on-disk configuration schema. Field names mirror the
// CLI flags so a value can move between a flag and a file without renaming.
type FileConfig struct {
	Specs  string `yaml:"specs" json:"specs"`
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`

	Max struct {
		Sections int `yaml:"sections" json:"sections"`
	} `yaml:"max" json:"max"`

	Workers int `yaml:"workers" json:"workers"`

	Cache struct {
		Dir         string        `yaml:"dir" json:"dir"`
		MaxAge      time.Duration `yaml:"maxAge" json:"maxAge"`
		Clear       bool          `yaml:"clear" json:"clear"`
		StrictPerms bool          `yaml:"strictPerms" json:"strictPerms"`
	} `yaml:"cache" json:"cache"`

	EnablePDF bool `yaml:"enablePDF" json:"enablePDF"`
	Verbose   bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads a YAML or JSON configuration file. The format is
// chosen by extension; unknown extensions try YAML first, then JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return fc, fmt.Errorf("parse json config: %w", err)
		}
	default:
		yerr := yaml.Unmarshal(data, &fc)
		if yerr == nil {
			return fc, nil
		}
		if jerr := json.Unmarshal(data, &fc); jerr != nil {
			return fc, fmt.Errorf("parse config file: %v; %v", yerr, jerr)
		}
	}
	return fc, nil
}

// Flag defaults, repeated here so ApplyFileConfig can tell "left at the
// default" apart from "explicitly set to the default value on the command
// line". The two cases are treated the same; file values win either way.
const (
	defaultSpecsDir  = "input_specs"
	defaultInputDir  = "input"
	defaultOutputDir = "output"
	defaultCacheDir  = ".docsift-cache"
)

// ApplyFileConfig overlays file values into cfg for fields still at their
// zero value or flag default. Parse flags first; explicit non-default flags
// keep precedence over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.SpecsDir == "" || cfg.SpecsDir == defaultSpecsDir) && fc.Specs != "" {
		cfg.SpecsDir = fc.Specs
	}
	if (cfg.InputDir == "" || cfg.InputDir == defaultInputDir) && fc.Input != "" {
		cfg.InputDir = fc.Input
	}
	if (cfg.OutputDir == "" || cfg.OutputDir == defaultOutputDir) && fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if cfg.MaxSections == 0 && fc.Max.Sections > 0 {
		cfg.MaxSections = fc.Max.Sections
	}
	if cfg.Workers == 0 && fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if (cfg.CacheDir == "" || cfg.CacheDir == defaultCacheDir) && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if !cfg.CacheStrictPerms && fc.Cache.StrictPerms {
		cfg.CacheStrictPerms = true
	}
	if !cfg.EnablePDF && fc.EnablePDF {
		cfg.EnablePDF = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal validation of the merged configuration.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.SpecsDir) == "" && len(cfg.SpecPaths) == 0 {
		return errors.New("config: a specs directory or explicit spec paths are required")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return errors.New("config: output directory is required")
	}
	if cfg.MaxSections < 0 {
		return errors.New("config: max sections must not be negative")
	}
	if cfg.Workers < 0 {
		return errors.New("config: workers must not be negative")
	}
	return nil
}
