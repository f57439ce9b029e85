package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goldior/backend/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("get without put", func(t *testing.T) {
		store := NewMemoryStore()
		_, err := store.Get(ctx, "a@example.com")
		if !errors.Is(err, domain.ErrOTPNotFound) {
			t.Errorf("error = %v, want ErrOTPNotFound", err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		store := NewMemoryStore()
		if err := store.Put(ctx, "a@example.com", 1234, time.Minute); err != nil {
			t.Fatalf("Put: %v", err)
		}

		code, err := store.Get(ctx, "a@example.com")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if code != 1234 {
			t.Errorf("code = %d, want 1234", code)
		}
	})

	t.Run("put replaces previous code", func(t *testing.T) {
		store := NewMemoryStore()
		_ = store.Put(ctx, "a@example.com", 1111, time.Minute)
		_ = store.Put(ctx, "a@example.com", 2222, time.Minute)

		code, err := store.Get(ctx, "a@example.com")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if code != 2222 {
			t.Errorf("code = %d, want 2222", code)
		}
	})

	t.Run("expired code", func(t *testing.T) {
		store := NewMemoryStore()
		_ = store.Put(ctx, "a@example.com", 1234, time.Millisecond)
		time.Sleep(5 * time.Millisecond)

		_, err := store.Get(ctx, "a@example.com")
		if !errors.Is(err, domain.ErrOTPExpired) {
			t.Errorf("error = %v, want ErrOTPExpired", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		store := NewMemoryStore()
		_ = store.Put(ctx, "a@example.com", 1234, time.Minute)
		if err := store.Delete(ctx, "a@example.com"); err != nil {
			t.Fatalf("Delete: %v", err)
		}

		_, err := store.Get(ctx, "a@example.com")
		if !errors.Is(err, domain.ErrOTPNotFound) {
			t.Errorf("error = %v, want ErrOTPNotFound", err)
		}
	})

	t.Run("codes are isolated per email", func(t *testing.T) {
		store := NewMemoryStore()
		_ = store.Put(ctx, "a@example.com", 1111, time.Minute)
		_ = store.Put(ctx, "b@example.com", 2222, time.Minute)
		_ = store.Delete(ctx, "a@example.com")

		code, err := store.Get(ctx, "b@example.com")
		if err != nil || code != 2222 {
			t.Errorf("Get(b) = %d, %v, want 2222, nil", code, err)
		}
		if store.Size() != 1 {
			t.Errorf("Size() = %d, want 1", store.Size())
		}
	})
}
