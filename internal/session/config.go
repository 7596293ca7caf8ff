package session

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config controls session cookies and expiry.
type Config struct {
	CookieName    string `toml:"cookie_name"`
	TTL           string `toml:"ttl"`
	SweepInterval string `toml:"sweep_interval"`
	Secure        bool   `toml:"secure"`
}

// Env names the environment variables that override session settings.
type Env struct {
	CookieName    string
	TTL           string
	SweepInterval string
	Secure        string
}

// TTLDuration returns the parsed idle timeout.
func (c *Config) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// SweepIntervalDuration returns the parsed sweep period.
func (c *Config) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
	return d
}

// Finalize applies defaults, environment overrides, then validates.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites fields set in overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
	if overlay.Secure {
		c.Secure = true
	}
}

func (c *Config) loadDefaults() {
	if c.CookieName == "" {
		c.CookieName = "pos_session"
	}
	if c.TTL == "" {
		c.TTL = "30m"
	}
	if c.SweepInterval == "" {
		c.SweepInterval = "1m"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.CookieName != "" {
		if v := os.Getenv(env.CookieName); v != "" {
			c.CookieName = v
		}
	}
	if env.TTL != "" {
		if v := os.Getenv(env.TTL); v != "" {
			c.TTL = v
		}
	}
	if env.SweepInterval != "" {
		if v := os.Getenv(env.SweepInterval); v != "" {
			c.SweepInterval = v
		}
	}
	if env.Secure != "" {
		if b, err := strconv.ParseBool(os.Getenv(env.Secure)); err == nil {
			c.Secure = b
		}
	}
}

func (c *Config) validate() error {
	if ttl, err := time.ParseDuration(c.TTL); err != nil || ttl <= 0 {
		return fmt.Errorf("invalid ttl: %q", c.TTL)
	}
	if si, err := time.ParseDuration(c.SweepInterval); err != nil || si <= 0 {
		return fmt.Errorf("invalid sweep_interval: %q", c.SweepInterval)
	}
	return nil
}
