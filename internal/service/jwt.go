package service

import (
	"errors"
	"time"

	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// minSecretLength is the minimum byte length accepted for the HMAC secret.
const minSecretLength = 32

// Claims represents JWT token claims. The user id travels in the registered
// Subject claim.
type Claims struct {
	Role     models.Role `json:"role"`
	Email    string      `json:"email"`
	FullName string      `json:"fullName"`
	jwt.RegisteredClaims
}

// UserID returns the subject user id carried by the claims.
func (c *Claims) UserID() string {
	return c.Subject
}

// JWTService defines JWT token operations.
type JWTService interface {
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetExpiry() time.Duration
}

type jwtService struct {
	secret string
	expiry time.Duration
}

// NewJWTService creates a new JWTService instance. Returns nil when the
// secret is shorter than 32 bytes.
func NewJWTService(secret string, expiry time.Duration) JWTService {
	if len(secret) < minSecretLength {
		return nil
	}
	return &jwtService{
		secret: secret,
		expiry: expiry,
	}
}

func (s *jwtService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:     user.Role,
		Email:    user.Email,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

func (s *jwtService) GetExpiry() time.Duration {
	return s.expiry
}
