package config

import (
	"fmt"
	"os"
)

// EnvCatalogFile overrides the catalog file path.
const EnvCatalogFile = "CATALOG_FILE"

// CatalogConfig selects the product list. An empty File uses the built-in lineup.
type CatalogConfig struct {
	File string `toml:"file"`
}

// Finalize loads environment overrides and checks the file exists.
func (c *CatalogConfig) Finalize() error {
	if v := os.Getenv(EnvCatalogFile); v != "" {
		c.File = v
	}
	if c.File == "" {
		return nil
	}
	if _, err := os.Stat(c.File); err != nil {
		return fmt.Errorf("catalog file: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *CatalogConfig) Merge(overlay *CatalogConfig) {
	if overlay.File != "" {
		c.File = overlay.File
	}
}
