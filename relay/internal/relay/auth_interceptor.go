package relay

import (
	"context"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"

	coreauth "github.com/Sheesh1006/service-backend/core/auth"
)

type claimsKey struct{}

// ClaimsFromContext returns the validated caller claims, if any.
func ClaimsFromContext(ctx context.Context) (*coreauth.ServiceClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*coreauth.ServiceClaims)
	return claims, ok
}

// TokenValidationInterceptor rejects calls without a valid service token.
type TokenValidationInterceptor struct {
	tokens *coreauth.TokenManager
}

// NewTokenValidationInterceptor creates the server-side auth interceptor.
func NewTokenValidationInterceptor(tokens *coreauth.TokenManager) *TokenValidationInterceptor {
	return &TokenValidationInterceptor{tokens: tokens}
}

// WrapUnary implements connect.Interceptor for unary RPCs
func (i *TokenValidationInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		ctx, err := i.authenticate(ctx, req.Spec().Procedure, req.Header().Get("Authorization"))
		if err != nil {
			return nil, err
		}
		return next(ctx, req)
	}
}

// WrapStreamingClient implements connect.Interceptor for client streaming
func (i *TokenValidationInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler implements connect.Interceptor for handler streams
func (i *TokenValidationInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		ctx, err := i.authenticate(ctx, conn.Spec().Procedure, conn.RequestHeader().Get("Authorization"))
		if err != nil {
			return err
		}
		return next(ctx, conn)
	}
}

func (i *TokenValidationInterceptor) authenticate(ctx context.Context, procedure, header string) (context.Context, error) {
	token, err := coreauth.ExtractJWTFromAuthHeader(header)
	if err != nil {
		log.Debug().Err(err).Str("procedure", procedure).Msg("Missing bearer token")
		return ctx, connect.NewError(connect.CodeUnauthenticated, err)
	}

	claims, err := i.tokens.ValidateToken(token)
	if err != nil {
		log.Warn().Err(err).Str("procedure", procedure).Msg("Rejected service token")
		return ctx, connect.NewError(connect.CodeUnauthenticated, err)
	}

	log.Debug().Str("subject", claims.Subject).Str("procedure", procedure).Msg("Service token accepted")
	return context.WithValue(ctx, claimsKey{}, claims), nil
}
