package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Auth   AuthConfig   `mapstructure:"auth"`
}

type ServerConfig struct {
	Host        string        `mapstructure:"host"`
	InsecureTLS bool          `mapstructure:"insecure_tls"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type AuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Config search paths
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.cupi")
	viper.AddConfigPath("/etc/cupi/")

	// Environment variable overrides
	viper.SetEnvPrefix("CUPI")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicitly bind environment variables for nested config
	// With SetEnvPrefix("CUPI"), these become: CUPI_SERVER_HOST,
	// CUPI_AUTH_USERNAME, etc.
	viper.BindEnv("server.host")
	viper.BindEnv("server.insecure_tls")
	viper.BindEnv("server.timeout")
	viper.BindEnv("auth.username")
	viper.BindEnv("auth.password")

	// Set defaults
	viper.SetDefault("server.timeout", 30*time.Second)
	viper.SetDefault("server.insecure_tls", false)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func (c *Config) Save() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".cupi")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.yaml")
	viper.SetConfigFile(configFile)

	// Update viper with current config values
	viper.Set("server.host", c.Server.Host)
	viper.Set("server.insecure_tls", c.Server.InsecureTLS)
	viper.Set("server.timeout", c.Server.Timeout)
	viper.Set("auth.username", c.Auth.Username)
	viper.Set("auth.password", c.Auth.Password)

	return viper.WriteConfig()
}
