package pagination

import (
	"fmt"
	"os"
	"strconv"
)

// Env names the environment variables that override pagination settings.
type Env struct {
	DefaultPageSize string
	MaxPageSize     string
}

// Config bounds page sizes.
type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// Finalize applies defaults, environment overrides, then validates.
func (c *Config) Finalize(env *Env) error {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 20
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = 100
	}

	if env != nil {
		if n, err := strconv.Atoi(os.Getenv(env.DefaultPageSize)); err == nil {
			c.DefaultPageSize = n
		}
		if n, err := strconv.Atoi(os.Getenv(env.MaxPageSize)); err == nil {
			c.MaxPageSize = n
		}
	}

	if c.DefaultPageSize < 1 || c.MaxPageSize < 1 {
		return fmt.Errorf("page sizes must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default_page_size cannot exceed max_page_size")
	}
	return nil
}

// Merge applies non-zero overlay values.
func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
}
