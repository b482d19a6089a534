package auth

import (
	"context"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"
)

// TokenSource returns the bearer token for the next call.
type TokenSource func() (string, error)

// StaticToken always returns token.
func StaticToken(token string) TokenSource {
	return func() (string, error) { return token, nil }
}

// TokenSource mints a fresh service token for subject on every call.
func (m *TokenManager) TokenSource(subject string) TokenSource {
	return func() (string, error) { return m.GenerateToken(subject) }
}

// BearerInterceptor attaches an Authorization header to outgoing calls.
type BearerInterceptor struct {
	source TokenSource
}

// NewBearerInterceptor creates a client interceptor using source.
func NewBearerInterceptor(source TokenSource) *BearerInterceptor {
	return &BearerInterceptor{source: source}
}

// WrapUnary implements connect.Interceptor for unary RPCs
func (i *BearerInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if req.Spec().IsClient {
			token, err := i.source()
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			req.Header().Set("Authorization", BearerHeader(token))
		}
		return next(ctx, req)
	}
}

// WrapStreamingClient implements connect.Interceptor for client streams
func (i *BearerInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return func(ctx context.Context, spec connect.Spec) connect.StreamingClientConn {
		conn := next(ctx, spec)
		token, err := i.source()
		if err != nil {
			// The server rejects the call as unauthenticated.
			log.Warn().Err(err).Str("procedure", spec.Procedure).Msg("Failed to obtain bearer token")
			return conn
		}
		conn.RequestHeader().Set("Authorization", BearerHeader(token))
		return conn
	}
}

// WrapStreamingHandler implements connect.Interceptor for handler streams
func (i *BearerInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return next
}
