// Package badgerstore persists the product catalog and user accounts in
// BadgerDB, the embedded key-value store the server runs against by default.
package badgerstore

import (
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// Backend wraps an open BadgerDB instance shared by the repositories
type Backend struct {
	db *badger.DB
}

// badgerLogger adapts badger's logger interface to the standard logger
type badgerLogger struct{}

var _ badger.Logger = badgerLogger{}

func (badgerLogger) Errorf(msg string, items ...interface{}) {
	log.Printf("[BADGER] ERROR "+msg, items...)
}

func (badgerLogger) Warningf(msg string, items ...interface{}) {
	log.Printf("[BADGER] WARN "+msg, items...)
}

func (badgerLogger) Infof(msg string, items ...interface{}) {
	log.Printf("[BADGER] "+msg, items...)
}

func (badgerLogger) Debugf(msg string, items ...interface{}) {
	// Badger's debug output is too chatty for server logs
}

// Open opens (creating if needed) a BadgerDB database at path.
// With inMemory set, path is ignored and nothing touches disk; tests and
// the memory-backed development mode use this.
func Open(path string, inMemory bool) (*Backend, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
		opts = badger.DefaultOptions(path)
	}

	opts.Logger = badgerLogger{}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger store: %w", err)
	}

	return &Backend{db: db}, nil
}

// Close closes the underlying database
func (b *Backend) Close() error {
	return b.db.Close()
}
