package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL bounds how long a minted service token is accepted
const DefaultTokenTTL = 1 * time.Hour

// TokenManager signs and validates HS256 service tokens with a shared secret.
type TokenManager struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

func NewTokenManager(secretKey string) *TokenManager {
	return &TokenManager{
		secretKey: secretKey,
		ttl:       DefaultTokenTTL,
		now:       time.Now,
	}
}

// WithTTL returns a copy of the manager that mints tokens valid for ttl
func (m *TokenManager) WithTTL(ttl time.Duration) *TokenManager {
	c := *m
	c.ttl = ttl
	return &c
}

func (m *TokenManager) GenerateToken(subject string) (string, error) {
	if m.secretKey == "" {
		return "", fmt.Errorf("JWT secret key is empty")
	}

	now := m.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	})

	return token.SignedString([]byte(m.secretKey))
}

func (m *TokenManager) ValidateToken(tokenString string) (*ServiceClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("invalid sub claim")
	}

	jtiStr, ok := claims["jti"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid jti claim")
	}

	jti, err := uuid.Parse(jtiStr)
	if err != nil {
		return nil, fmt.Errorf("invalid jti format")
	}

	result := &ServiceClaims{Subject: subject, UUID: jti}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		result.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		result.ExpiresAt = exp.Time
	}

	return result, nil
}
