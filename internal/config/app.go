package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig configures the server-rendered offer pages.
type AppConfig struct {
	BasePath string `toml:"base_path"`
	SiteName string `toml:"site_name"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.SiteName != "" {
		c.SiteName = overlay.SiteName
	}
}

func (c *AppConfig) loadDefaults() {
	if c.SiteName == "" {
		c.SiteName = "Offres d'emploi"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppSiteName); v != "" {
		c.SiteName = v
	}
}

func (c *AppConfig) validate() error {
	if c.BasePath == "" {
		return nil
	}
	if !strings.HasPrefix(c.BasePath, "/") || strings.HasSuffix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with / and not end with /: %q", c.BasePath)
	}
	return nil
}
