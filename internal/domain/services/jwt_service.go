package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"realtrust-http-service/internal/infrastructure/config"
)

// ErrTokenInvalid is returned for any token failure: missing, malformed,
// expired or signature mismatch.
var ErrTokenInvalid = errors.New("invalid or expired token")

// InterfaceJWTService defines the session token service interface
type InterfaceJWTService interface {
	GenerateToken(adminID uint, role string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*AdminClaims, error)
}

// AdminClaims is the claim set carried by a session token. Tokens are
// stateless: the admin record is not re-read on verification, so a token
// issued before an admin is deleted stays valid until it expires.
type AdminClaims struct {
	AdminID uint   `json:"admin_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and validates HS256 session tokens
type JWTService struct {
	secretKey string
	issuer    string
	validity  time.Duration
}

// NewJWTService creates a new session token service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	hours := cfg.JWTExpireHours
	if hours <= 0 {
		hours = 7 * 24
	}
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "realtrust-http-service",
		validity:  time.Duration(hours) * time.Hour,
	}
}

// GenerateToken issues a signed session token for an administrator
func (s *JWTService) GenerateToken(adminID uint, role string) (string, error) {
	now := time.Now()
	claims := &AdminClaims{
		AdminID: adminID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses a token and verifies its signature and expiry
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims validates a token and returns its claims
func (s *JWTService) ExtractClaims(tokenString string) (*AdminClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
