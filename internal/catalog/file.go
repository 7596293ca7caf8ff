package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type file struct {
	Products []Product `yaml:"products"`
}

// LoadFile reads a product list from a YAML file:
//
//	products:
//	  - code: croissant
//	    name: 오리지널크라상
//	    price: 3200
func LoadFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("%w: %s lists no products", ErrInvalid, path)
	}
	return f.Products, nil
}
