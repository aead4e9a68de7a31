package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/viper"
)

// Config represents the Tether project configuration
type Config struct {
	ProjectName string              `mapstructure:"project_name"`
	EntrySymbol string              `mapstructure:"entry_symbol"`
	Source      SourceConfig        `mapstructure:"source"`
	Output      OutputConfig        `mapstructure:"output"`
	Levels      map[string][]string `mapstructure:"levels"`
	Builtins    []string            `mapstructure:"builtins"`
}

// SourceConfig locates the class declaration sources
type SourceConfig struct {
	Dir string `mapstructure:"dir"`
}

// OutputConfig controls where generated bindings are written
type OutputConfig struct {
	Dir     string `mapstructure:"dir"`
	Package string `mapstructure:"package"`
}

var symbolPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Default returns the configuration used when no tether.yml is present
func Default() *Config {
	return &Config{
		EntrySymbol: "extension_init",
		Source:      SourceConfig{Dir: "src"},
		Output:      OutputConfig{Dir: "bindings", Package: "bindings"},
	}
}

// Load loads the configuration from tether.yml or tether.yaml
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads the configuration from the given directory
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("entry_symbol", "extension_init")
	v.SetDefault("source.dir", "src")
	v.SetDefault("output.dir", "bindings")
	v.SetDefault("output.package", "bindings")

	// Set config name and paths
	v.SetConfigName("tether")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// InProject checks if the current directory is a Tether project
func InProject() bool {
	if _, err := os.Stat("tether.yml"); err == nil {
		return true
	}
	if _, err := os.Stat("tether.yaml"); err == nil {
		return true
	}
	return false
}

// GetProjectRoot tries to find the project root by looking for tether.yml
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "tether.yml")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "tether.yaml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Tether project (no tether.yml found)")
		}
		dir = parent
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if !symbolPattern.MatchString(cfg.EntrySymbol) {
		return fmt.Errorf("entry_symbol must be a lower_snake_case identifier, got: %s", cfg.EntrySymbol)
	}
	if cfg.Source.Dir == "" {
		return fmt.Errorf("source.dir must not be empty")
	}
	if cfg.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if cfg.Output.Package == "" {
		return fmt.Errorf("output.package must not be empty")
	}
	return nil
}
