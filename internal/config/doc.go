// Package config wraps Viper access to the ngForge config file at
// ~/.ngforge/config.yaml and NGFORGE_* environment overrides.
package config
