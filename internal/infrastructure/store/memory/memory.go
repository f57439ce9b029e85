// Package memory provides in-memory repository implementations, used for
// development and as the reference store in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/goldior/backend/internal/domain"
)

// ProductStore is a thread-safe in-memory product repository.
// Store-native order is ascending product ID, matching the badger store's
// key order, so both stores return identical sequences for the same data.
type ProductStore struct {
	products map[string]domain.Product
	mutex    sync.RWMutex
}

// NewProductStore creates an empty in-memory product store
func NewProductStore() *ProductStore {
	return &ProductStore{
		products: make(map[string]domain.Product),
	}
}

// Save inserts or replaces a product
func (s *ProductStore) Save(ctx context.Context, product *domain.Product) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.products[product.ID] = *product
	return nil
}

// FindMatching returns up to limit products satisfying the filter, in store order
func (s *ProductStore) FindMatching(ctx context.Context, filter domain.ProductFilter, limit int) ([]domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	matches := make([]domain.Product, 0, limit)
	for _, product := range s.ordered() {
		if len(matches) >= limit {
			break
		}
		if filter.Matches(&product) {
			matches = append(matches, product)
		}
	}
	return matches, nil
}

// FindAny returns up to limit products with no filtering, in store order
func (s *ProductStore) FindAny(ctx context.Context, limit int) ([]domain.Product, error) {
	return s.FindMatching(ctx, domain.ProductFilter{}, limit)
}

// ordered returns all products sorted by ID
func (s *ProductStore) ordered() []domain.Product {
	products := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})
	return products
}

// UserStore is a thread-safe in-memory user repository keyed by email
type UserStore struct {
	users map[string]domain.User
	mutex sync.RWMutex
}

// NewUserStore creates an empty in-memory user store
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]domain.User),
	}
}

// Create stores a new user; the email must not already be registered
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return domain.ErrDuplicateEmail
	}
	s.users[user.Email] = *user
	return nil
}

// GetByEmail fetches a user by email
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}
