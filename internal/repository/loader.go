package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"

	"github.com/Lixing-Zhang/kart-storefront/internal/models"
)

// catalogFile is the on-disk layout of a menu catalog
type catalogFile struct {
	Products []models.Product `json:"products" yaml:"products"`
}

// LoadProductsFile reads a catalog from a YAML (.yaml, .yml) or JSON (.json) file
func LoadProductsFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseProductsYAML(data)
	case ".json":
		return ParseProductsJSON(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
}

// ParseProductsYAML decodes a YAML catalog document
func ParseProductsYAML(data []byte) ([]models.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshaling yaml catalog: %w", err)
	}
	return f.Products, nil
}

// ParseProductsJSON decodes a JSON catalog document
func ParseProductsJSON(data []byte) ([]models.Product, error) {
	var f catalogFile
	if err := sonic.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshaling json catalog: %w", err)
	}
	return f.Products, nil
}

// NewRepositoryFromFile loads and validates a catalog file
func NewRepositoryFromFile(path string) (*InMemoryProductRepository, error) {
	products, err := LoadProductsFile(path)
	if err != nil {
		return nil, err
	}
	repo, err := NewProductRepository(products)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return repo, nil
}
