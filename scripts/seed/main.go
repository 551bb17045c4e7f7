// Seeds the database with a demo user and recent entries.
// Usage: go run scripts/seed/main.go
package main

import (
	"log"

	"github.com/signal-au/signal-api/internal/config"
	"github.com/signal-au/signal-api/internal/crypto"
	"github.com/signal-au/signal-api/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	cipher, err := crypto.New(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("Invalid ENCRYPTION_KEY: %v", err)
	}

	if err := seed.Run(db, cipher); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}
