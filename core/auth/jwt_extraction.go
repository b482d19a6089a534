package auth

import (
	"fmt"
	"strings"
)

// ExtractJWTFromAuthHeader extracts the JWT token from an Authorization header.
// Expected format: "Bearer {token}"
func ExtractJWTFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("authorization header is empty")
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || scheme != "Bearer" || token == "" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	return token, nil
}

// BearerHeader formats a token for the Authorization header
func BearerHeader(token string) string {
	return "Bearer " + token
}
