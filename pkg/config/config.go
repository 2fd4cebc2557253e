// Package config loads the pipeline configuration from a YAML file. Every
// field has a default matching the upstream distribution names, so running
// without a config file works when the sources sit in the working directory.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when no --config flag is given.
const DefaultPath = "hanforge.yaml"

// Config holds the hanforge pipeline configuration.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourcesConfig holds the locally resolved input paths. Unihan, CEDICT, and
// the IDS directory are required sources; the two frequency tables are
// optional and may point at absent files.
type SourcesConfig struct {
	Unihan   string `yaml:"unihan"`
	CEDICT   string `yaml:"cedict"`
	IDSDir   string `yaml:"ids_dir"`
	WordFreq string `yaml:"word_freq"`
	CharFreq string `yaml:"char_freq"`
}

// OutputConfig holds the artifact destinations.
type OutputConfig struct {
	JSON string `yaml:"json"`
	DB   string `yaml:"db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads the configuration at path. A missing file at the default path
// is not an error; explicit paths must exist. ${VAR} and ${VAR:-default}
// references are expanded from the environment before parsing.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(expandEnvVars(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields with the upstream distribution names.
func (c *Config) ApplyDefaults() {
	if c.Sources.Unihan == "" {
		c.Sources.Unihan = "unihan.zip"
	}
	if c.Sources.CEDICT == "" {
		c.Sources.CEDICT = "cedict.txt"
	}
	if c.Sources.IDSDir == "" {
		c.Sources.IDSDir = "chise-ids-master"
	}
	if c.Sources.WordFreq == "" {
		c.Sources.WordFreq = "SUBTLEX-CH-WF.xlsx"
	}
	if c.Sources.CharFreq == "" {
		c.Sources.CharFreq = "SUBTLEX-CH-CHR.xlsx"
	}
	if c.Output.JSON == "" {
		c.Output.JSON = "data/radicals.json"
	}
	if c.Output.DB == "" {
		c.Output.DB = "hanforge.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
