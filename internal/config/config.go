package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendCLI = "cli"
	BackendAPI = "api"
)

// ComposeConfig holds settings for the compose orchestrator invocation.
type ComposeConfig struct {
	Command string `mapstructure:"command"`
	File    string `mapstructure:"file"`
}

// EngineConfig holds settings for the container engine inspect step.
type EngineConfig struct {
	Command string `mapstructure:"command"`
	Backend string `mapstructure:"backend"`
}

// LoggingConfig holds the logging-related configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Config is the top-level configuration struct.
type Config struct {
	Compose ComposeConfig `mapstructure:"compose"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Logging LoggingConfig `mapstructure:"log"`
}

// InitConfig sets defaults, reads an optional config file and enables environment overrides.
// An empty path searches the current directory for compose-hosts.yaml.
func InitConfig(path string) error {
	viper.SetDefault("compose.command", "docker-compose")
	viper.SetDefault("compose.file", "")
	viper.SetDefault("engine.command", "docker")
	viper.SetDefault("engine.backend", BackendCLI)
	viper.SetDefault("log.level", "WARN")

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("compose-hosts")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file: defaults and env vars only.
	}

	viper.SetEnvPrefix("compose_hosts")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	return nil
}

// Load unmarshals the configuration into the Config struct and validates it.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Compose.Command) == "" {
		return NewValidationError("compose.command", "must not be empty")
	}
	switch c.Engine.Backend {
	case BackendCLI:
		if strings.TrimSpace(c.Engine.Command) == "" {
			return NewValidationError("engine.command", "must not be empty")
		}
	case BackendAPI:
	default:
		return NewValidationError("engine.backend", fmt.Sprintf("unsupported backend %q (want %q or %q)", c.Engine.Backend, BackendCLI, BackendAPI))
	}
	return nil
}
