package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/goldior/backend/config"
	httpDelivery "github.com/goldior/backend/internal/delivery/http"
	"github.com/goldior/backend/internal/domain"
	"github.com/goldior/backend/internal/infrastructure/mail"
	"github.com/goldior/backend/internal/infrastructure/otp"
	"github.com/goldior/backend/internal/infrastructure/store/badgerstore"
	"github.com/goldior/backend/internal/infrastructure/store/memory"
	"github.com/goldior/backend/internal/infrastructure/store/seed"
	"github.com/goldior/backend/internal/usecase"
)

func main() {
	// Load .env before viper reads the environment
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Goldior Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store Type: %s", cfg.Store.Type)

	// Initialize infrastructure dependencies
	products, users, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	if err := seedCatalog(context.Background(), cfg, products); err != nil {
		log.Fatalf("Failed to seed product catalog: %v", err)
	}

	otpStore := otp.NewMemoryStore()
	mailer := buildMailer(cfg)

	// Initialize usecase layer
	recommendService := usecase.NewRecommendService(products, usecase.RecommendServiceConfig{
		Limit:              cfg.Recommend.Limit,
		CurrencySymbol:     cfg.Recommend.CurrencySymbol,
		Vocabulary:         cfg.Recommend.NoteVocabulary,
		EnableDebugLogging: cfg.Server.Environment == "development",
	})

	authService := usecase.NewAuthService(users, otpStore, mailer, usecase.AuthServiceConfig{
		JWTSecret:          cfg.Auth.JWTSecret,
		TokenTTL:           cfg.Auth.TokenTTL,
		OTPTTL:             cfg.Auth.OTPTTL,
		EnableDebugLogging: cfg.Server.Environment == "development",
	})

	log.Printf("Recommend: limit=%d, vocabulary=%d notes", cfg.Recommend.Limit, len(cfg.Recommend.NoteVocabulary))
	log.Printf("Mail mode: %s", cfg.Mail.Mode)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendService, authService, cfg.Server.Environment == "production")

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openStore builds the configured repositories and returns a close function
func openStore(cfg *config.Config) (domain.ProductRepository, domain.UserRepository, func(), error) {
	if cfg.Store.Type == "memory" {
		return memory.NewProductStore(), memory.NewUserStore(), func() {}, nil
	}

	backend, err := badgerstore.Open(cfg.Store.Path, false)
	if err != nil {
		return nil, nil, nil, err
	}

	closeStore := func() {
		if err := backend.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}
	return badgerstore.NewProductStore(backend), badgerstore.NewUserStore(backend), closeStore, nil
}

// seedCatalog loads the configured seed file into an empty product store.
// A store that already has products is left untouched.
func seedCatalog(ctx context.Context, cfg *config.Config, products domain.ProductRepository) error {
	if cfg.Store.SeedFile == "" {
		return nil
	}

	if counter, ok := products.(interface {
		Count(ctx context.Context) (int, error)
	}); ok {
		count, err := counter.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			log.Printf("[SEED] Store already has %d products, skipping seed file", count)
			return nil
		}
	}

	items, err := seed.LoadFile(cfg.Store.SeedFile)
	if err != nil {
		return err
	}
	if err := seed.Apply(ctx, products, items); err != nil {
		return err
	}

	log.Printf("[SEED] Loaded %d products from %s", len(items), cfg.Store.SeedFile)
	return nil
}

// buildMailer selects the OTP mail transport
func buildMailer(cfg *config.Config) domain.OTPMailer {
	if cfg.Mail.Mode == "smtp" {
		return mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		})
	}
	return mail.NewLogMailer()
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
