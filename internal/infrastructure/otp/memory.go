// Package otp provides storage for issued one-time passwords.
package otp

import (
	"context"
	"sync"
	"time"

	"github.com/goldior/backend/internal/domain"
)

// entry is a single issued code with its expiration
type entry struct {
	Code       int
	Expiration time.Time
}

// MemoryStore is a thread-safe in-memory OTP store with TTL support.
// Codes are keyed by email; a code survives until it is verified, replaced,
// or its validity window passes.
type MemoryStore struct {
	data  map[string]entry
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory OTP store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		data: make(map[string]entry),
	}

	// Remove expired codes periodically so abandoned requests don't accumulate
	go store.cleanupExpired()

	return store
}

// Put stores a code for the email with the given TTL, replacing any previous code
func (s *MemoryStore) Put(ctx context.Context, email string, code int, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[email] = entry{
		Code:       code,
		Expiration: time.Now().Add(ttl),
	}
	return nil
}

// Get returns the stored code for the email.
// Returns ErrOTPNotFound when no code was issued and ErrOTPExpired when the
// code exists but its validity window has passed.
func (s *MemoryStore) Get(ctx context.Context, email string) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[email]
	if !exists {
		return 0, domain.ErrOTPNotFound
	}

	if time.Now().After(item.Expiration) {
		return 0, domain.ErrOTPExpired
	}

	return item.Code, nil
}

// Delete removes the stored code for the email
func (s *MemoryStore) Delete(ctx context.Context, email string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, email)
	return nil
}

// Size returns the current number of stored codes (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// cleanupExpired removes expired codes from the store periodically
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for email, item := range s.data {
			if now.After(item.Expiration) {
				delete(s.data, email)
			}
		}
		s.mutex.Unlock()
	}
}
