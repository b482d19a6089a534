// Package notesclient calls the relay's GetNotes RPC from a video and an
// optional presentation and returns the finished PDF.
package notesclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"connectrpc.com/connect"

	coreauth "github.com/Sheesh1006/service-backend/core/auth"
	"github.com/Sheesh1006/service-backend/core/streaming"
	"github.com/Sheesh1006/service-backend/gen/notes/v1/notesv1connect"
)

// DefaultFragmentBytes is the upload fragment size when none is configured.
const DefaultFragmentBytes = 1 << 20

// Options configure a Client.
type Options struct {
	// FragmentBytes bounds each uploaded video fragment.
	FragmentBytes int
	// MaxMessageBytes limits a single message in either direction. Zero
	// leaves connect's default.
	MaxMessageBytes int
	// Token, when set, authenticates every call.
	Token coreauth.TokenSource
}

// Client is a relay client. It is safe for concurrent use.
type Client struct {
	rpc           notesv1connect.BackendServiceClient
	fragmentBytes int
}

// New creates a client for the relay at endpoint.
func New(httpClient connect.HTTPClient, endpoint string, opts Options) *Client {
	var clientOpts []connect.ClientOption
	if opts.MaxMessageBytes > 0 {
		clientOpts = append(clientOpts,
			connect.WithReadMaxBytes(opts.MaxMessageBytes),
			connect.WithSendMaxBytes(opts.MaxMessageBytes),
		)
	}
	if opts.Token != nil {
		clientOpts = append(clientOpts, connect.WithInterceptors(coreauth.NewBearerInterceptor(opts.Token)))
	}

	size := opts.FragmentBytes
	if size <= 0 {
		size = DefaultFragmentBytes
	}

	return &Client{
		rpc:           notesv1connect.NewBackendServiceClient(httpClient, endpoint, clientOpts...),
		fragmentBytes: size,
	}
}

// Generate uploads video and presentation (which may be nil) and returns
// the whole document. Nothing is returned on error.
func (c *Client) Generate(ctx context.Context, video, presentation io.Reader) ([]byte, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream := c.rpc.GetNotes(ctx)

	// abort ends the call without letting the relay see a clean end of a
	// partial upload.
	abort := func(err error) ([]byte, error) {
		cancel()
		stream.CloseRequest()
		stream.CloseResponse()
		return nil, err
	}

	for req, err := range streaming.Fragments(video, presentation, c.fragmentBytes) {
		if err != nil {
			return abort(err)
		}
		if err := stream.Send(req); err != nil {
			// The relay ended the call early; its status is read below.
			if errors.Is(err, io.EOF) {
				break
			}
			return abort(fmt.Errorf("send fragment: %w", err))
		}
	}
	if err := stream.CloseRequest(); err != nil {
		stream.CloseResponse()
		return nil, fmt.Errorf("close upload: %w", err)
	}

	var doc bytes.Buffer
	for {
		msg, err := stream.Receive()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			stream.CloseResponse()
			return nil, fmt.Errorf("receive notes: %w", err)
		}
		doc.Write(msg.GetNotes())
	}
	if err := stream.CloseResponse(); err != nil {
		return nil, fmt.Errorf("close response: %w", err)
	}
	return doc.Bytes(), nil
}
