package badgerstore

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/goldior/backend/internal/domain"
)

// ProductStore implements domain.ProductRepository on BadgerDB
type ProductStore struct {
	backend *Backend
}

var _ domain.ProductRepository = (*ProductStore)(nil)

// NewProductStore creates a product repository over the backend
func NewProductStore(backend *Backend) *ProductStore {
	return &ProductStore{backend: backend}
}

// Save inserts or replaces a product
func (s *ProductStore) Save(ctx context.Context, product *domain.Product) error {
	data, err := marshalProduct(product)
	if err != nil {
		return err
	}
	return s.backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set(productKey(product.ID), data)
	})
}

// FindMatching returns up to limit products satisfying the filter, in key order
func (s *ProductStore) FindMatching(ctx context.Context, filter domain.ProductFilter, limit int) ([]domain.Product, error) {
	matches := make([]domain.Product, 0, limit)

	err := s.backend.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(productPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(productPrefix)); it.ValidForPrefix([]byte(productPrefix)); it.Next() {
			if len(matches) >= limit {
				break
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			err := it.Item().Value(func(val []byte) error {
				product, err := unmarshalProduct(val)
				if err != nil {
					return err
				}
				if filter.Matches(&product) {
					matches = append(matches, product)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// FindAny returns up to limit products with no filtering, in key order
func (s *ProductStore) FindAny(ctx context.Context, limit int) ([]domain.Product, error) {
	return s.FindMatching(ctx, domain.ProductFilter{}, limit)
}

// Count returns the number of stored products; the server uses it to decide
// whether an empty store needs seeding at startup
func (s *ProductStore) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.backend.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(productPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(productPrefix)); it.ValidForPrefix([]byte(productPrefix)); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
