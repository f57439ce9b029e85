// Package seed loads an initial product catalog from a JSON file.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goldior/backend/internal/domain"
)

// LoadFile reads a JSON array of products from path
func LoadFile(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decoding seed file: %w", err)
	}

	for i := range products {
		if products[i].ID == "" {
			return nil, fmt.Errorf("seed product %d (%q) has no id", i, products[i].Name)
		}
	}
	return products, nil
}

// Apply saves every product into the repository
func Apply(ctx context.Context, repo domain.ProductRepository, products []domain.Product) error {
	for i := range products {
		if err := repo.Save(ctx, &products[i]); err != nil {
			return fmt.Errorf("seeding product %q: %w", products[i].ID, err)
		}
	}
	return nil
}
