package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding the config,
// e.g. PTRIE_NAMES_COUNT for names.count.
const EnvPrefix = "PTRIE"

// Config holds all configuration of the ptrie command
type Config struct {
	Names NamesConfig `mapstructure:"names"`
	Bench BenchConfig `mapstructure:"bench"`
	Log   LogConfig   `mapstructure:"log"`
}

// NamesConfig holds sample name generation settings
type NamesConfig struct {
	Count int    `mapstructure:"count"`
	File  string `mapstructure:"file"`
	// Seed of the name generator, 0 picks a random one
	Seed int64 `mapstructure:"seed"`
}

// BenchConfig holds benchmark settings
type BenchConfig struct {
	Iterations int      `mapstructure:"iterations"`
	Queries    []string `mapstructure:"queries"`
	Readers    int      `mapstructure:"readers"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from an optional file and environment variables
// on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("names.count", 100)
	v.SetDefault("names.file", "names.txt")
	v.SetDefault("names.seed", 0)

	v.SetDefault("bench.iterations", 50_000)
	v.SetDefault("bench.queries", []string{"jody", "george"})
	v.SetDefault("bench.readers", 1)

	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Names.Count <= 0 {
		return fmt.Errorf("invalid names count: %d", c.Names.Count)
	}
	if c.Names.File == "" {
		return errors.New("names file cannot be empty")
	}
	if c.Bench.Iterations <= 0 {
		return fmt.Errorf("invalid bench iterations: %d", c.Bench.Iterations)
	}
	if c.Bench.Readers <= 0 {
		return fmt.Errorf("invalid bench readers: %d", c.Bench.Readers)
	}

	return nil
}
