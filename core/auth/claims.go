package auth

import (
	"time"

	"github.com/google/uuid"
)

// ServiceClaims identifies the caller of an RPC. Tokens are minted by the
// front end (or an operator for the CLI) and checked by the relay.
type ServiceClaims struct {
	Subject   string
	UUID      uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}
