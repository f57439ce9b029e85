package badgerstore

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/goldior/backend/internal/domain"
)

// UserStore implements domain.UserRepository on BadgerDB, keyed by email
type UserStore struct {
	backend *Backend
}

var _ domain.UserRepository = (*UserStore)(nil)

// NewUserStore creates a user repository over the backend
func NewUserStore(backend *Backend) *UserStore {
	return &UserStore{backend: backend}
}

// Create stores a new user; the email must not already be registered
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	data, err := marshalUser(user)
	if err != nil {
		return err
	}

	return s.backend.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(userKey(user.Email))
		if err == nil {
			return domain.ErrDuplicateEmail
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(userKey(user.Email), data)
	})
}

// GetByEmail fetches a user by email
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user *domain.User

	err := s.backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(email))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			user, err = unmarshalUser(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
