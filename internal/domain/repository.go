package domain

import (
	"context"
	"time"
)

// ProductRepository defines the catalog operations the recommendation
// pipeline depends on. Both lookups return at most limit products in
// store-native order; FindMatching with a universal filter must behave
// identically to FindAny.
type ProductRepository interface {
	FindMatching(ctx context.Context, filter ProductFilter, limit int) ([]Product, error)
	FindAny(ctx context.Context, limit int) ([]Product, error)
	Save(ctx context.Context, product *Product) error
}

// UserRepository defines user account persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// OTPStore holds issued one-time passwords until they are verified or expire
type OTPStore interface {
	Put(ctx context.Context, email string, code int, ttl time.Duration) error
	Get(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, email string) error
}

// OTPMailer delivers a one-time password to a user's email address
type OTPMailer interface {
	SendOTP(ctx context.Context, email string, code int) error
}
