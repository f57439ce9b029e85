package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/goldior/backend/internal/domain"
)

// emailRegex validates the address an OTP is requested for
var emailRegex = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@([\w-]+\.)+[a-zA-Z]{2,7}$`)

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	JWTSecret          string
	TokenTTL           time.Duration
	OTPTTL             time.Duration
	EnableDebugLogging bool
}

// AuthService handles passwordless account verification: users are created
// without credentials and prove ownership of their email with a one-time
// password, after which a session token is issued.
type AuthService struct {
	users              domain.UserRepository
	otps               domain.OTPStore
	mailer             domain.OTPMailer
	jwtSecret          []byte
	tokenTTL           time.Duration
	otpTTL             time.Duration
	enableDebugLogging bool
}

// NewAuthService creates a new auth service with dependencies
func NewAuthService(
	users domain.UserRepository,
	otps domain.OTPStore,
	mailer domain.OTPMailer,
	config AuthServiceConfig,
) *AuthService {
	tokenTTL := config.TokenTTL
	if tokenTTL == 0 {
		tokenTTL = 15 * 24 * time.Hour // 15 days
	}

	otpTTL := config.OTPTTL
	if otpTTL == 0 {
		otpTTL = 10 * time.Minute
	}

	return &AuthService{
		users:              users,
		otps:               otps,
		mailer:             mailer,
		jwtSecret:          []byte(config.JWTSecret),
		tokenTTL:           tokenTTL,
		otpTTL:             otpTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// SendOTP generates a fresh 4-digit code for an existing user and emails it.
// Any previously issued code for the email is discarded first.
func (s *AuthService) SendOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return domain.ErrInvalidRequest
	}

	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		return err
	}

	// Drop any old code before issuing a new one
	if _, err := s.otps.Get(ctx, email); err == nil {
		if err := s.otps.Delete(ctx, email); err != nil {
			return err
		}
		if s.enableDebugLogging {
			log.Printf("[AUTH] Old OTP deleted for %s", email)
		}
	}

	code := 1000 + rand.IntN(9000) // 4-digit code

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailFailure, err)
	}

	return s.otps.Put(ctx, email, code, s.otpTTL)
}

// VerifyOTP checks the submitted code against the stored one. On success the
// code is consumed and a signed session token for the user is returned.
func (s *AuthService) VerifyOTP(ctx context.Context, email string, code int) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	stored, err := s.otps.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrOTPExpired) {
			// An expired code is useless; remove it so the next attempt starts clean
			_ = s.otps.Delete(ctx, email)
		}
		return nil, "", err
	}

	if stored != code {
		return nil, "", domain.ErrOTPMismatch
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := s.otps.Delete(ctx, email); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// CreateUser validates and stores a new account. Accounts are passwordless;
// the email must be unique and every address field is required.
func (s *AuthService) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil || user.Username == "" || user.Email == "" || user.Gender == "" {
		return domain.ErrInvalidRequest
	}
	if len(user.Addresses) == 0 {
		return domain.ErrInvalidRequest
	}
	for i := range user.Addresses {
		if !user.Addresses[i].Complete() {
			return domain.ErrInvalidRequest
		}
	}

	user.ID = uuid.NewString()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.LastLoggedInAt = time.Now().UTC()
	if user.Favourites == nil {
		user.Favourites = []string{}
	}

	return s.users.Create(ctx, user)
}

// GetUserByEmail fetches a user account by email
func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// TokenTTL exposes the session token lifetime so the delivery layer can set
// a cookie max-age that matches the token expiry
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// issueToken signs a session JWT for the user
func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}
