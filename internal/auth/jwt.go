package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"flysolo/internal/domain"
)

// Claims is the JWT payload carried by every authenticated request. It is
// exactly the actor identity the core services consume.
type Claims struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Faction string `json:"faction,omitempty"` // empty = neutral
	jwt.RegisteredClaims
}

// Actor converts the claims into the explicit actor passed to services.
func (c *Claims) Actor() domain.Actor {
	faction, _ := domain.ParseFaction(c.Faction)
	return domain.Actor{
		ID:      c.UserID,
		Role:    domain.Role(c.Role),
		Faction: faction,
	}
}

// TokenManager issues and verifies HS256 tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager with the given signing secret and
// token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Generate issues a signed token for the user.
func (m *TokenManager) Generate(user *domain.User) (string, error) {
	faction := ""
	if user.Faction != nil {
		faction = string(*user.Faction)
	}

	claims := Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    string(user.Role),
		Faction: faction,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token, returning its claims.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ExtractBearerToken pulls the token out of an Authorization header.
// Returns "" when the header is missing or not a bearer credential.
func ExtractBearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
