package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ngforge-dev/ngforge/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known config keys.
const (
	KeyRegistryURL    = "registry.url"
	KeyGitHubToken    = "github.token"
	KeyDefaultStyle   = "defaults.style"
	KeyPackageManager = "defaults.package-manager"
	KeyUpdateCheck    = "update.check"
)

// Dir returns the path to the ngForge config directory (~/.ngforge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.ngforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetDefault returns the config value for key, or fallback if unset.
func GetDefault(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// RegistryURL returns the configured npm registry, falling back to the default.
func RegistryURL() string {
	return GetDefault(KeyRegistryURL, branding.RegistryURL())
}

// GitHubToken returns the GitHub token from config or the GITHUB_TOKEN env var.
func GitHubToken() string {
	if t := Get(KeyGitHubToken); t != "" {
		return t
	}
	return os.Getenv("GITHUB_TOKEN")
}
