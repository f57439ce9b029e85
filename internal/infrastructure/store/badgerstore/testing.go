package badgerstore

import "testing"

// NewTestBackend opens an in-memory backend and registers its cleanup
func NewTestBackend(t *testing.T) *Backend {
	t.Helper()

	backend, err := Open("", true)
	if err != nil {
		t.Fatalf("opening in-memory backend: %v", err)
	}
	t.Cleanup(func() {
		if err := backend.Close(); err != nil {
			t.Errorf("closing backend: %v", err)
		}
	})
	return backend
}
