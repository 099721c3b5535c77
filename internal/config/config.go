// Package config builds the immutable process configuration. Everything
// environment-provided is read exactly once, here; publishers receive
// their sections by value.
package config

import (
	"os"
	"strconv"
	"strings"

	"vidpub/internal/publish/instagram"
	"vidpub/internal/publish/pinterest"
	"vidpub/internal/publish/twitter"
)

const (
	EnvPort = "PORT"

	defaultPort = 8080
)

// Config holds every environment-provided setting.
type Config struct {
	Port      int
	Instagram instagram.Config
	Pinterest pinterest.Config
	Twitter   twitter.Config
}

// Load reads the configuration from the environment. Missing platform
// credentials are not an error here; each publisher reports its own
// missing settings during validation.
func Load() Config {
	cfg := Config{
		Port:      defaultPort,
		Instagram: instagram.ConfigFromEnv(),
		Pinterest: pinterest.ConfigFromEnv(),
		Twitter:   twitter.ConfigFromEnv(),
	}

	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Port = n
		}
	}

	return cfg
}
