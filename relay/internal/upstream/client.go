package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/proto"

	"github.com/Sheesh1006/service-backend/core/streaming"
	generatorv1 "github.com/Sheesh1006/service-backend/gen/generator/v1"
	"github.com/Sheesh1006/service-backend/gen/generator/v1/generatorv1connect"
	"github.com/Sheesh1006/service-backend/relay/internal/metrics"
)

// Notes is the generator output for one request.
type Notes struct {
	Summary    []string
	Timestamps []string
}

// Options configure a Client.
type Options struct {
	// Timeout bounds each generator call separately.
	Timeout time.Duration
	// ChunkBytes is the video byte bound per upstream request unit.
	ChunkBytes int
	// MaxMessageBytes limits the size of a single message in either
	// direction. Zero leaves connect's default.
	MaxMessageBytes int
}

// Client is the long-lived handle on the generator service. It is created
// once per process and is safe for concurrent use.
type Client struct {
	gen  generatorv1connect.GeneratorServiceClient
	opts Options
}

// NewClient builds a Client for the generator at baseURL over httpClient.
func NewClient(httpClient connect.HTTPClient, baseURL string, opts Options, clientOpts ...connect.ClientOption) *Client {
	if opts.MaxMessageBytes > 0 {
		clientOpts = append(clientOpts,
			connect.WithReadMaxBytes(opts.MaxMessageBytes),
			connect.WithSendMaxBytes(opts.MaxMessageBytes),
		)
	}
	return &Client{
		gen:  generatorv1connect.NewGeneratorServiceClient(httpClient, baseURL, clientOpts...),
		opts: opts,
	}
}

// Collect runs the two generator calls one after the other and returns
// their split output. Any failure discards partial results.
func (c *Client) Collect(ctx context.Context, payload *streaming.Payload) (*Notes, error) {
	if err := c.checkFirstUnit(payload); err != nil {
		return nil, err
	}

	summary, err := c.rawNotes(ctx, payload)
	if err != nil {
		return nil, err
	}

	timestamps, err := c.timestamps(ctx)
	if err != nil {
		return nil, err
	}

	return &Notes{Summary: summary, Timestamps: timestamps}, nil
}

// checkFirstUnit rejects payloads whose first upstream unit, which carries
// the whole presentation, cannot fit in one message.
func (c *Client) checkFirstUnit(payload *streaming.Payload) error {
	if c.opts.MaxMessageBytes <= 0 {
		return nil
	}
	for unit := range streaming.RequestChunks(payload, c.opts.ChunkBytes) {
		if size := proto.Size(unit); size > c.opts.MaxMessageBytes {
			return fmt.Errorf("%w: presentation of %d bytes does not fit in a %d byte upstream message",
				streaming.ErrInvalidInput, len(payload.Presentation), c.opts.MaxMessageBytes)
		}
		break
	}
	return nil
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opts.Timeout > 0 {
		return context.WithTimeout(ctx, c.opts.Timeout)
	}
	return context.WithCancel(ctx)
}

func (c *Client) rawNotes(ctx context.Context, payload *streaming.Payload) ([]string, error) {
	const method = "GetRawNotes"
	logger := zerolog.Ctx(ctx)

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	stream := c.gen.GetRawNotes(callCtx)

	// Send on its own goroutine so a generator that answers while still
	// reading cannot stall on flow control.
	sendErr := make(chan error, 1)
	go func() {
		err := sendAll(stream, payload, c.opts.ChunkBytes)
		if err != nil {
			// Abort the call before closing the request side. Closing alone
			// would end a truncated upload cleanly, and the pending receive
			// never returns while no request has been made.
			cancel()
			stream.CloseRequest()
		}
		sendErr <- err
	}()

	segments, err := Drain(rawNotesStream{recv: stream})
	if err != nil {
		cancel()
		if sendFailure := <-sendErr; sendFailure != nil {
			err = sendFailure
		}
		stream.CloseResponse()
		return nil, c.classify(ctx, method, err)
	}
	if err := <-sendErr; err != nil {
		stream.CloseResponse()
		return nil, c.classify(ctx, method, err)
	}
	if err := stream.CloseResponse(); err != nil {
		logger.Debug().Err(err).Msg("Failed to close raw notes response")
	}

	metrics.UpstreamCallsTotal.WithLabelValues(method, "ok").Inc()
	metrics.UpstreamSegmentsTotal.WithLabelValues(method).Add(float64(len(segments)))
	logger.Debug().Int("segments", len(segments)).Msg("Raw notes collected")
	return segments, nil
}

type rawNotesSender interface {
	Send(*generatorv1.GetRawNotesRequest) error
	CloseRequest() error
}

func sendAll(stream rawNotesSender, payload *streaming.Payload, size int) error {
	for req := range streaming.RequestChunks(payload, size) {
		if err := stream.Send(req); err != nil {
			// io.EOF means the server ended the call; the real error
			// surfaces on the receive side.
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("send video chunk: %w", err)
		}
	}
	if err := stream.CloseRequest(); err != nil {
		return fmt.Errorf("close request: %w", err)
	}
	return nil
}

func (c *Client) timestamps(ctx context.Context) ([]string, error) {
	const method = "GetTimestamps"
	logger := zerolog.Ctx(ctx)

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	stream, err := c.gen.GetTimestamps(callCtx, connect.NewRequest(&generatorv1.GetTimestampsRequest{}))
	if err != nil {
		return nil, c.classify(ctx, method, err)
	}
	defer stream.Close()

	lines, err := Drain(timestampsStream{recv: stream})
	if err != nil {
		return nil, c.classify(ctx, method, err)
	}

	metrics.UpstreamCallsTotal.WithLabelValues(method, "ok").Inc()
	metrics.UpstreamSegmentsTotal.WithLabelValues(method).Add(float64(len(lines)))
	logger.Debug().Int("lines", len(lines)).Msg("Timestamps collected")
	return lines, nil
}

// classify maps a call failure onto the package sentinels. Cancellation of
// the caller's own context is passed through untouched.
func (c *Client) classify(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, ErrUpstreamProtocol):
		metrics.UpstreamCallsTotal.WithLabelValues(method, "protocol_error").Inc()
		return fmt.Errorf("%s: %w", method, err)
	case ctx.Err() != nil:
		metrics.UpstreamCallsTotal.WithLabelValues(method, "canceled").Inc()
		return fmt.Errorf("%s: %w", method, ctx.Err())
	}

	status := "unavailable"
	if connect.CodeOf(err) == connect.CodeDeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
		status = "timeout"
	}
	metrics.UpstreamCallsTotal.WithLabelValues(method, status).Inc()
	return fmt.Errorf("%s: %w: %w", method, ErrUpstreamUnavailable, err)
}
