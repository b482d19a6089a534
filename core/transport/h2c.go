// Package transport holds the HTTP/2 cleartext plumbing shared by every
// service. Connect streaming RPCs (bidirectional in particular) need HTTP/2,
// and the services talk to each other without TLS inside the deployment.
package transport

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// NewH2CClient returns an HTTP client that speaks HTTP/2 over plain TCP.
// The client is safe to share; connections are pooled by the transport.
func NewH2CClient() *http.Client {
	return &http.Client{
		Transport: &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
			ReadIdleTimeout: 30 * time.Second,
			PingTimeout:     15 * time.Second,
		},
	}
}

// NewServer wraps handler so it accepts HTTP/2 without TLS.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
