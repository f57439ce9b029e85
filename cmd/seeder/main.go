// Command seeder loads a JSON product catalog into a BadgerDB store.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/goldior/backend/internal/infrastructure/store/badgerstore"
	"github.com/goldior/backend/internal/infrastructure/store/seed"
)

func main() {
	storePath := flag.String("store", "./data/goldior", "path to the badger store directory")
	seedFile := flag.String("file", "./seed/products.json", "path to the products JSON file")
	flag.Parse()

	backend, err := badgerstore.Open(*storePath, false)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	products, err := seed.LoadFile(*seedFile)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	repo := badgerstore.NewProductStore(backend)
	if err := seed.Apply(context.Background(), repo, products); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("Seeded %d products from %s into %s", len(products), *seedFile, *storePath)
}
