package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/config"
	"github.com/india-resources/directory-api/internal/db"
	"github.com/india-resources/directory-api/internal/service"
)

// CredentialsRequest represents the login and register request payload.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

// TokenResponse represents a successful authentication response.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Role      db.Role   `json:"role"`
}

// LoginHandler authenticates either the configured admin credential pair or a
// registered contributor.
func LoginHandler(dbConn *gorm.DB, cfg *config.Config, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request format",
				"details": err.Error(),
			})
			return
		}

		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username cannot be empty"})
			return
		}

		// The admin identity is not a registered user; it is matched against
		// the configured credential pair.
		if req.Username == cfg.AdminUsername {
			if req.Password != cfg.AdminPassword {
				log.Warn().Str("username", req.Username).Msg("Failed admin login attempt")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			issueToken(c, http.StatusOK, cfg, log, cfg.AdminUsername, db.RoleAdmin)
			return
		}

		user, err := service.AuthenticateUser(dbConn, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				log.Warn().Str("username", req.Username).Msg("Failed login attempt")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			log.Error().Err(err).Msg("Database error during login")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		log.Info().Str("username", user.Username).Msg("Successful login")
		issueToken(c, http.StatusOK, cfg, log, user.Username, db.RoleContributor)
	}
}

// RegisterHandler creates a contributor account and logs it in immediately.
func RegisterHandler(dbConn *gorm.DB, cfg *config.Config, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request format",
				"details": err.Error(),
			})
			return
		}

		user, err := service.RegisterUser(dbConn, req.Username, req.Password, cfg.AdminUsername)
		if err != nil {
			if errors.Is(err, service.ErrDuplicateUsername) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already exists."})
				return
			}
			log.Error().Err(err).Msg("Failed to register user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		log.Info().Str("username", user.Username).Msg("Registered new contributor")
		issueToken(c, http.StatusCreated, cfg, log, user.Username, db.RoleContributor)
	}
}

// issueToken signs a JWT for the identity and writes the token response.
func issueToken(c *gin.Context, status int, cfg *config.Config, log zerolog.Logger, username string, role db.Role) {
	expiresAt := time.Now().Add(cfg.TokenDuration)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     string(role),
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenStr, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign JWT token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(status, TokenResponse{
		Token:     tokenStr,
		ExpiresAt: expiresAt,
		Username:  username,
		Role:      role,
	})
}
