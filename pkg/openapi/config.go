package openapi

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

const (
	defaultTitle       = "DDBB Bakery POS API"
	defaultDescription = "Catalog, cart, and checkout endpoints for the bakery kiosk."
)

// Config carries the document metadata published in the generated document.
//
// PublicURL is the origin the kiosk is reached at, e.g. behind a reverse
// proxy. When empty, the server entry is the bare API base path.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	PublicURL   string `toml:"public_url"`
}

// ConfigEnv names the environment variables that override Config fields.
type ConfigEnv struct {
	Title       string
	Description string
	PublicURL   string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Description == "" {
		c.Description = defaultDescription
	}
	if env != nil {
		override(&c.Title, env.Title)
		override(&c.Description, env.Description)
		override(&c.PublicURL, env.PublicURL)
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.PublicURL != "" {
		c.PublicURL = overlay.PublicURL
	}
}

// ServerURL joins PublicURL and basePath into the document's server entry.
func (c *Config) ServerURL(basePath string) string {
	if c.PublicURL == "" {
		return basePath
	}
	return strings.TrimSuffix(c.PublicURL, "/") + basePath
}

func (c *Config) validate() error {
	if c.PublicURL == "" {
		return nil
	}
	u, err := url.Parse(c.PublicURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("openapi public_url must be an absolute URL: %q", c.PublicURL)
	}
	return nil
}

func override(field *string, key string) {
	if key == "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		*field = v
	}
}
