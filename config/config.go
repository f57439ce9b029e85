package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Recommend RecommendConfig
	Auth      AuthConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StoreConfig holds product/user store configuration
type StoreConfig struct {
	Type     string `mapstructure:"type"` // "memory" or "badger"
	Path     string `mapstructure:"path"`
	SeedFile string `mapstructure:"seed_file"`
}

// RecommendConfig holds recommendation pipeline configuration
type RecommendConfig struct {
	Limit              int      `mapstructure:"limit"`
	CurrencySymbol     string   `mapstructure:"currency_symbol"`
	NoteVocabulary     []string `mapstructure:"note_vocabulary"`
	EnableDebugLogging bool     `mapstructure:"enable_debug_logging"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	OTPTTL    time.Duration `mapstructure:"otp_ttl"`
}

// MailConfig holds OTP mail delivery configuration
type MailConfig struct {
	Mode     string `mapstructure:"mode"` // "log" or "smtp"
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per second per client IP
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/goldior/")

	// Environment variable settings (GOLDIOR_SERVER_PORT -> server.port)
	v.SetEnvPrefix("GOLDIOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	// Store defaults
	v.SetDefault("store.type", "badger")
	v.SetDefault("store.path", "./data/goldior")

	// Recommendation defaults
	v.SetDefault("recommend.limit", 3)
	v.SetDefault("recommend.currency_symbol", "₹")
	v.SetDefault("recommend.note_vocabulary", []string{
		"woody", "fresh", "citrus", "mint", "aqua", "jasmine",
		"vanilla", "rose", "musk", "amber", "sandalwood",
	})

	// Auth defaults
	v.SetDefault("auth.token_ttl", "360h") // 15 days
	v.SetDefault("auth.otp_ttl", "10m")

	// Mail defaults
	v.SetDefault("mail.mode", "log")
	v.SetDefault("mail.smtp_port", 587)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Store.Type != "memory" && config.Store.Type != "badger" {
		return fmt.Errorf("store type must be 'memory' or 'badger', got: %s", config.Store.Type)
	}

	if config.Store.Type == "badger" && config.Store.Path == "" {
		return fmt.Errorf("store path is required when store type is 'badger'")
	}

	if config.Recommend.Limit <= 0 {
		return fmt.Errorf("recommend limit must be positive, got: %d", config.Recommend.Limit)
	}

	if config.Mail.Mode != "log" && config.Mail.Mode != "smtp" {
		return fmt.Errorf("mail mode must be 'log' or 'smtp', got: %s", config.Mail.Mode)
	}

	if config.Mail.Mode == "smtp" {
		if config.Mail.SMTPHost == "" || config.Mail.Username == "" || config.Mail.Password == "" {
			return fmt.Errorf("SMTP host, username and password are required when mail mode is 'smtp'")
		}
	}

	if config.Server.Environment == "production" && config.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required in production (set GOLDIOR_AUTH_JWT_SECRET)")
	}

	return nil
}
