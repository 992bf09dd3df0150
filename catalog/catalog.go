// Package catalog holds the fixed, ordered list of products offered by the
// shopping list. A Catalog is built once at startup and never mutated.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/qyinm/shoptui/types"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

var (
	ErrEmptyCatalog = errors.New("catalog has no products")
	ErrMissingName  = errors.New("product name is required")
)

type fileFormat struct {
	Products []productRecord `yaml:"products"`
}

type productRecord struct {
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
}

// Catalog is an immutable ordered sequence of products.
type Catalog struct {
	products []types.Product
}

// New builds a Catalog from the given products, copying the slice.
func New(products ...types.Product) Catalog {
	return Catalog{products: append([]types.Product(nil), products...)}
}

// Default returns the built-in catalog.
func Default() Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file. An empty path yields Default().
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (Catalog, error) {
	var doc fileFormat
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Products) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}

	products := make([]types.Product, 0, len(doc.Products))
	for i, r := range doc.Products {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return Catalog{}, fmt.Errorf("product %d: %w", i, ErrMissingName)
		}
		products = append(products, types.NewProduct(name, strings.TrimSpace(r.Price), strings.TrimSpace(r.Description)))
	}
	return Catalog{products: products}, nil
}

// Products returns a copy of the catalog entries in order.
func (c Catalog) Products() []types.Product {
	return append([]types.Product(nil), c.products...)
}

func (c Catalog) Len() int { return len(c.products) }

// At returns the product at index i. It panics if i is out of range.
func (c Catalog) At(i int) types.Product { return c.products[i] }

// Index returns the position of the first product equal to p, or -1.
func (c Catalog) Index(p types.Product) int {
	for i, candidate := range c.products {
		if candidate == p {
			return i
		}
	}
	return -1
}

func (c Catalog) Contains(p types.Product) bool { return c.Index(p) >= 0 }

// FindByName returns the first product whose name matches case-insensitively.
func (c Catalog) FindByName(name string) (types.Product, bool) {
	want := strings.TrimSpace(name)
	for _, p := range c.products {
		if strings.EqualFold(p.Name(), want) {
			return p, true
		}
	}
	return types.Product{}, false
}
