package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docker/go-units"
)

const (
	EnvCartThreshold   = "CART_DETECTION_THRESHOLD"
	EnvCartMaxBodySize = "CART_MAX_BODY_SIZE"
)

// CartConfig controls how detector output is counted.
type CartConfig struct {
	// DetectionThreshold is the minimum confidence counted as an item.
	// Default: 0.70
	DetectionThreshold float64 `toml:"detection_threshold"`
	// MaxBodySize limits cart request bodies, in human units ("1MB").
	MaxBodySize    string `toml:"max_body_size"`
	maxBodySizeVal int64
}

func (c *CartConfig) MaxBodySizeBytes() int64 {
	return c.maxBodySizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the cart configuration.
func (c *CartConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *CartConfig) Merge(overlay *CartConfig) {
	if overlay.DetectionThreshold != 0 {
		c.DetectionThreshold = overlay.DetectionThreshold
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
}

func (c *CartConfig) loadDefaults() {
	if c.DetectionThreshold == 0 {
		c.DetectionThreshold = 0.70
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *CartConfig) loadEnv() {
	if v := os.Getenv(EnvCartThreshold); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.DetectionThreshold = f
		}
	}
	if v := os.Getenv(EnvCartMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
}

func (c *CartConfig) validate() error {
	if c.DetectionThreshold <= 0 || c.DetectionThreshold > 1 {
		return fmt.Errorf("detection_threshold must be in (0, 1]: %v", c.DetectionThreshold)
	}

	size, err := units.FromHumanSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	c.maxBodySizeVal = size
	return nil
}
