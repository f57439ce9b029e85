package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Run in an empty directory so no stray config.yaml is picked up
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	t.Run("server defaults", func(t *testing.T) {
		if cfg.Server.Port != "8080" {
			t.Errorf("Port = %q, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Environment = %q, want development", cfg.Server.Environment)
		}
		if len(cfg.Server.AllowedOrigins) == 0 {
			t.Error("expected default allowed origins")
		}
	})

	t.Run("store defaults", func(t *testing.T) {
		if cfg.Store.Type != "badger" {
			t.Errorf("Store.Type = %q, want badger", cfg.Store.Type)
		}
		if cfg.Store.Path == "" {
			t.Error("expected a default store path")
		}
	})

	t.Run("recommend defaults", func(t *testing.T) {
		if cfg.Recommend.Limit != 3 {
			t.Errorf("Limit = %d, want 3", cfg.Recommend.Limit)
		}
		if cfg.Recommend.CurrencySymbol != "₹" {
			t.Errorf("CurrencySymbol = %q, want ₹", cfg.Recommend.CurrencySymbol)
		}
		if len(cfg.Recommend.NoteVocabulary) != 11 {
			t.Errorf("vocabulary size = %d, want 11", len(cfg.Recommend.NoteVocabulary))
		}
	})

	t.Run("auth defaults", func(t *testing.T) {
		if cfg.Auth.TokenTTL != 360*time.Hour {
			t.Errorf("TokenTTL = %v, want 360h", cfg.Auth.TokenTTL)
		}
		if cfg.Auth.OTPTTL != 10*time.Minute {
			t.Errorf("OTPTTL = %v, want 10m", cfg.Auth.OTPTTL)
		}
	})

	t.Run("mail defaults", func(t *testing.T) {
		if cfg.Mail.Mode != "log" {
			t.Errorf("Mail.Mode = %q, want log", cfg.Mail.Mode)
		}
		if cfg.Mail.SMTPPort != 587 {
			t.Errorf("SMTPPort = %d, want 587", cfg.Mail.SMTPPort)
		}
	})

	t.Run("rate limit defaults", func(t *testing.T) {
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Burst != 20 {
			t.Errorf("Burst = %d, want 20", cfg.RateLimit.Burst)
		}
	})
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GOLDIOR_SERVER_PORT", "9000")
	t.Setenv("GOLDIOR_STORE_TYPE", "memory")
	t.Setenv("GOLDIOR_AUTH_JWT_SECRET", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Store.Type != "memory" {
		t.Errorf("Store.Type = %q, want memory", cfg.Store.Type)
	}
	if cfg.Auth.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q, want from-env", cfg.Auth.JWTSecret)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: "7777"
  environment: staging
store:
  type: memory
recommend:
  limit: 5
  currency_symbol: "$"
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != "7777" {
		t.Errorf("Port = %q, want 7777", cfg.Server.Port)
	}
	if cfg.Server.Environment != "staging" {
		t.Errorf("Environment = %q, want staging", cfg.Server.Environment)
	}
	if cfg.Recommend.Limit != 5 {
		t.Errorf("Limit = %d, want 5", cfg.Recommend.Limit)
	}
	if cfg.Recommend.CurrencySymbol != "$" {
		t.Errorf("CurrencySymbol = %q, want $", cfg.Recommend.CurrencySymbol)
	}
	// Unset keys still fall back to defaults
	if cfg.Mail.Mode != "log" {
		t.Errorf("Mail.Mode = %q, want log", cfg.Mail.Mode)
	}
}

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080", Environment: "development"},
		Store:     StoreConfig{Type: "badger", Path: "./data"},
		Recommend: RecommendConfig{Limit: 3, CurrencySymbol: "₹"},
		Mail:      MailConfig{Mode: "log"},
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid development config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "unknown store type",
			mutate:  func(c *Config) { c.Store.Type = "mongo" },
			wantErr: true,
		},
		{
			name: "badger store without path",
			mutate: func(c *Config) {
				c.Store.Type = "badger"
				c.Store.Path = ""
			},
			wantErr: true,
		},
		{
			name:    "memory store needs no path",
			mutate:  func(c *Config) { c.Store = StoreConfig{Type: "memory"} },
			wantErr: false,
		},
		{
			name:    "zero recommend limit",
			mutate:  func(c *Config) { c.Recommend.Limit = 0 },
			wantErr: true,
		},
		{
			name:    "unknown mail mode",
			mutate:  func(c *Config) { c.Mail.Mode = "carrier-pigeon" },
			wantErr: true,
		},
		{
			name: "smtp mode without credentials",
			mutate: func(c *Config) {
				c.Mail = MailConfig{Mode: "smtp", SMTPHost: "smtp.example.com"}
			},
			wantErr: true,
		},
		{
			name: "smtp mode with credentials",
			mutate: func(c *Config) {
				c.Mail = MailConfig{
					Mode: "smtp", SMTPHost: "smtp.example.com", SMTPPort: 587,
					Username: "bot@example.com", Password: "hunter2", From: "bot@example.com",
				}
			},
			wantErr: false,
		},
		{
			name:    "production without jwt secret",
			mutate:  func(c *Config) { c.Server.Environment = "production" },
			wantErr: true,
		},
		{
			name: "production with jwt secret",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.Auth.JWTSecret = "super-secret"
			},
			wantErr: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := validate(cfg)
			if tc.wantErr && err == nil {
				t.Error("expected a validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
