package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/poki/criteria-to-mysql/query"
)

const (
	maxWalkDepth = 25
)

// Config represents the converter configuration from criteriasql.yaml.
type Config struct {
	Select []string       `mapstructure:"select" json:"select"`
	Table  string         `mapstructure:"table" json:"table"`
	Joins  []string       `mapstructure:"joins" json:"joins,omitempty"`
	Fields []FieldMapping `mapstructure:"fields" json:"fields,omitempty"`
}

// FieldMapping maps a criteria field to a column expression. Mappings are a
// list rather than a map because viper lower cases map keys, while field
// names are case sensitive.
type FieldMapping struct {
	Field  string `mapstructure:"field" json:"field"`
	Column string `mapstructure:"column" json:"column"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// env > config file > defaults. Flags are applied by the commands.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	v.SetDefault("select", []string{"*"})
	v.SetDefault("table", "")
	v.SetDefault("joins", []string{})

	v.SetEnvPrefix("CRITERIASQL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, configPath, nil
}

// FieldMap returns the field mappings as a map.
func (c *Config) FieldMap() map[string]string {
	m := make(map[string]string, len(c.Fields))
	for _, f := range c.Fields {
		m[f.Field] = f.Column
	}
	return m
}

// Converter creates a query.Converter from the configuration.
func (c *Config) Converter() (*query.Converter, error) {
	return query.NewConverter(
		c.Select,
		c.Table,
		query.WithJoins(c.Joins...),
		query.WithFieldMapping(c.FieldMap()),
	)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for criteriasql.yaml or criteriasql.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range []string{"criteriasql.yaml", "criteriasql.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}
