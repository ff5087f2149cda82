package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestConfig_Load(t *testing.T) {
	// Reset viper for test
	viper.Reset()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config == nil {
		t.Fatal("Config should not be nil")
	}

	// Check defaults
	if config.Server.Timeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %s", config.Server.Timeout)
	}

	if config.Server.InsecureTLS {
		t.Error("Expected insecure_tls to default to false")
	}
}

func TestConfig_LoadWithFile(t *testing.T) {
	viper.Reset()

	tempDir, err := os.MkdirTemp("", "cupi-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	configFile := filepath.Join(tempDir, "config.yaml")
	configContent := `
server:
  host: "cuc.example.com"
  insecure_tls: true
  timeout: 10s
auth:
  username: "admin"
  password: "asdfpoiu"
`

	err = os.WriteFile(configFile, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	// Point the search path at the temp dir
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Server.Host != "cuc.example.com" {
		t.Errorf("Expected host 'cuc.example.com', got '%s'", config.Server.Host)
	}
	if !config.Server.InsecureTLS {
		t.Error("Expected insecure_tls to be true")
	}
	if config.Server.Timeout != 10*time.Second {
		t.Errorf("Expected timeout 10s, got %s", config.Server.Timeout)
	}
	if config.Auth.Username != "admin" {
		t.Errorf("Expected username 'admin', got '%s'", config.Auth.Username)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	viper.Reset()

	t.Setenv("CUPI_SERVER_HOST", "cuc-env.example.com")
	t.Setenv("CUPI_AUTH_USERNAME", "envadmin")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Server.Host != "cuc-env.example.com" {
		t.Errorf("Expected env host override, got '%s'", config.Server.Host)
	}
	if config.Auth.Username != "envadmin" {
		t.Errorf("Expected env username override, got '%s'", config.Auth.Username)
	}
}
