package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/kart-storefront/internal/models"
)

const yamlCatalog = `products:
  - id: gulab-jamun
    name: Gulab Jamun
    description: Milk dumplings soaked in rose syrup.
    price: 80
    category: desserts
    rating: 4.9
    reviewCount: 500
    isVeg: true
    isJain: true
    spiceLevel: none
    tags: [sweet, warm]
  - id: butter-naan
    name: Butter Naan
    price: 50
    category: breads
    rating: 4.2
    reviewCount: 120
    isVeg: true
`

const jsonCatalog = `{"products":[
  {"id":"gulab-jamun","name":"Gulab Jamun","price":80,"category":"desserts","rating":4.9,"reviewCount":500,"isVeg":true,"isJain":true,"spiceLevel":"none","tags":["sweet","warm"]},
  {"id":"butter-naan","name":"Butter Naan","price":50,"category":"breads","rating":4.2,"reviewCount":120,"isVeg":true}
]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProductsFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "menu.yaml", yamlCatalog},
		{"yml", "menu.yml", yamlCatalog},
		{"json", "menu.json", jsonCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := LoadProductsFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			require.Len(t, products, 2)

			assert.Equal(t, "gulab-jamun", products[0].ID)
			assert.Equal(t, 500, products[0].ReviewCount)
			assert.True(t, products[0].IsJain)
			assert.False(t, products[0].IsVegan)
			assert.Equal(t, models.SpiceNone, products[0].SpiceLevel)
			assert.Equal(t, []string{"sweet", "warm"}, products[0].Tags)
			assert.Equal(t, models.CategoryBreads, products[1].Category)
		})
	}
}

func TestLoadProductsFile_Errors(t *testing.T) {
	_, err := LoadProductsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadProductsFile(writeFile(t, "menu.toml", "x = 1"))
	assert.Error(t, err)

	_, err = LoadProductsFile(writeFile(t, "menu.json", "{not json"))
	assert.Error(t, err)
}

func TestNewRepositoryFromFile(t *testing.T) {
	repo, err := NewRepositoryFromFile(writeFile(t, "menu.yaml", yamlCatalog))
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Len())

	bad := `products:
  - id: x
    name: X
    price: 1
    category: pizza
`
	_, err = NewRepositoryFromFile(writeFile(t, "bad.yaml", bad))
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestNewRepositoryFromFile_RejectsNonFiniteNumbers(t *testing.T) {
	tests := []struct {
		name  string
		field string
	}{
		{"price inf", "price: .inf\n    rating: 4"},
		{"price nan", "price: .nan\n    rating: 4"},
		{"rating nan", "price: 10\n    rating: .nan"},
		{"rating inf", "price: 10\n    rating: .inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "products:\n  - id: x\n    name: X\n    category: breads\n    " + tt.field + "\n"
			_, err := NewRepositoryFromFile(writeFile(t, "menu.yaml", content))
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}
}

func TestNewRepositoryFromFile_RejectsNonSlugID(t *testing.T) {
	content := `products:
  - id: PT_01
    name: Paneer Tikka
    price: 220
    category: appetizers
`
	_, err := NewRepositoryFromFile(writeFile(t, "menu.yaml", content))
	assert.ErrorIs(t, err, ErrInvalidProduct)
}
