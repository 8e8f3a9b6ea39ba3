package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hamzak/maktab/internal/app/models"
)

// JWT errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// Token lifetimes. A session token lives for one hour; reset tokens are valid
// for three hours and are additionally checked against the stored copy.
const (
	SessionTokenExp = 1 * time.Hour
	ResetTokenExp   = 3 * time.Hour
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey   string
	TokenIssuer string
}

// JWTService handles JWT operations
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// SessionClaims defines session token content
type SessionClaims struct {
	UserID   int64           `json:"userId"`
	UserRole models.RoleType `json:"userRole"`
	jwt.RegisteredClaims
}

// ResetClaims defines password reset token content
type ResetClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed one-hour session token for a user
func (s *JWTService) GenerateSessionToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:   user.ID,
		UserRole: user.UserRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to create session token: %w", err)
	}
	return signed, nil
}

// GenerateResetToken creates a signed three-hour password reset token. The
// caller must also store the token on the user record; validity requires both.
func (s *JWTService) GenerateResetToken(userID int64) (string, error) {
	now := time.Now()
	claims := &ResetClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ResetTokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to create reset token: %w", err)
	}
	return signed, nil
}

// ValidateSessionToken validates a session token and returns its claims
func (s *JWTService) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	if err := s.parseInto(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.UserID <= 0 || claims.UserRole == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateResetToken validates a reset token signature and expiry and returns
// its claims. Matching against the stored token is the caller's job.
func (s *JWTService) ValidateResetToken(tokenString string) (*ResetClaims, error) {
	claims := &ResetClaims{}
	if err := s.parseInto(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *JWTService) parseInto(tokenString string, claims jwt.Claims) error {
	if tokenString == "" {
		return ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// ExtractBearerToken extracts the token from the Authorization header. The
// admin clients send the raw token without a Bearer prefix, so both forms are
// accepted.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	return authHeader, nil
}
