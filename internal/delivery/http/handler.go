package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goldior/backend/internal/domain"
)

// Recommender is the chatbot pipeline contract the handler depends on
type Recommender interface {
	Recommend(ctx context.Context, request *domain.RecommendRequest) ([]domain.Recommendation, error)
}

// Authenticator is the account/OTP contract the handler depends on
type Authenticator interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email string, code int) (*domain.User, string, error)
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	TokenTTL() time.Duration
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommend    Recommender
	auth         Authenticator
	secureCookie bool
}

// NewHandler creates a new HTTP handler
func NewHandler(recommend Recommender, auth Authenticator, secureCookie bool) *Handler {
	return &Handler{
		recommend:    recommend,
		auth:         auth,
		secureCookie: secureCookie,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "goldior-backend",
		"version": "1.0.0",
	})
}

// RecommendChat handles chatbot recommendation requests.
// The wire contract is deliberately narrow: 200 with up to three product
// summaries, or 500 with an empty reply. No error detail ever leaks out.
func (h *Handler) RecommendChat(c *gin.Context) {
	var request domain.RecommendRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		log.Printf("[CHATBOT] Malformed request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"reply": []domain.Recommendation{}})
		return
	}

	reply, err := h.recommend.Recommend(c.Request.Context(), &request)
	if err != nil {
		log.Printf("[CHATBOT] Recommendation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"reply": []domain.Recommendation{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// SendOTP emails a verification code to an existing user
func (h *Handler) SendOTP(c *gin.Context) {
	email := c.Param("email")

	if err := h.auth.SendOTP(c.Request.Context(), email); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found with this email"})
		default:
			log.Printf("[AUTH] Sending OTP failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP. Please try again later."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully to your email!"})
}

// verifyOTPRequest is the body of a verification attempt
type verifyOTPRequest struct {
	OTP string `json:"otp"`
}

// VerifyOTP checks a submitted code and issues the session cookie on success
func (h *Handler) VerifyOTP(c *gin.Context) {
	email := c.Param("email")

	var request verifyOTPRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "OTP is required"})
		return
	}

	code, err := strconv.Atoi(request.OTP)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid OTP"})
		return
	}

	user, token, err := h.auth.VerifyOTP(c.Request.Context(), email, code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "No OTP found for this email"})
		case errors.Is(err, domain.ErrOTPExpired):
			c.JSON(http.StatusBadRequest, gin.H{"message": "OTP has expired"})
		case errors.Is(err, domain.ErrOTPMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid OTP"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			log.Printf("[AUTH] Verifying OTP failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while verifying user"})
		}
		return
	}

	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP verified successfully!",
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"gender":     user.Gender,
			"email":      user.Email,
			"isAdmin":    user.IsAdmin,
			"addresses":  user.Addresses,
			"favourites": user.Favourites,
		},
	})
}

// createUserRequest is the body of an account creation request
type createUserRequest struct {
	Username   string         `json:"username"`
	Email      string         `json:"email"`
	Gender     string         `json:"gender"`
	Address    domain.Address `json:"address"`
	Favourites []string       `json:"favourites"`
}

// CreateUser registers a new account
func (h *Handler) CreateUser(c *gin.Context) {
	var request createUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields or invalid address format"})
		return
	}

	user := &domain.User{
		Username:   request.Username,
		Email:      request.Email,
		Gender:     request.Gender,
		Addresses:  []domain.Address{request.Address},
		Favourites: request.Favourites,
	}

	if err := h.auth.CreateUser(c.Request.Context(), user); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields or invalid address format"})
		case errors.Is(err, domain.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		default:
			log.Printf("[AUTH] Creating user failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

// GetUserByEmail fetches an account by email
func (h *Handler) GetUserByEmail(c *gin.Context) {
	email := c.Param("email")

	user, err := h.auth.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("[AUTH] Fetching user failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// setSessionCookie attaches the signed session token as an httpOnly cookie
func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	maxAge := int(h.auth.TokenTTL() / time.Second)
	c.SetCookie("jwt", token, maxAge, "/", "", h.secureCookie, true)
}
