package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"shopsearch/internal/domain"
)

//go:embed sample_products.json
var sampleProducts []byte

type MemoryRepository struct {
	products []domain.Product
}

func NewMemoryRepository(products []domain.Product) *MemoryRepository {
	return &MemoryRepository{products: products}
}

// FindAll returns a copy of the catalog.
func (r *MemoryRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// LoadProducts reads a JSON product array from path, or the bundled sample
// catalog when path is empty.
func LoadProducts(path string) ([]domain.Product, error) {
	data := sampleProducts
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file: %w", err)
		}
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	return products, nil
}
