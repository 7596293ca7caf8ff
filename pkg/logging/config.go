package logging

import "os"

// Env names the environment variables that override logging settings.
type Env struct {
	Level  string
	Format string
}

// Config holds logging settings.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize applies defaults, environment overrides, then validates.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if v := os.Getenv(env.Level); v != "" {
			c.Level = Level(v)
		}
		if v := os.Getenv(env.Format); v != "" {
			c.Format = Format(v)
		}
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

// Merge applies non-zero overlay values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}
