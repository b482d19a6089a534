package relay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreauth "github.com/Sheesh1006/service-backend/core/auth"
	"github.com/Sheesh1006/service-backend/core/streaming"
	generatorv1 "github.com/Sheesh1006/service-backend/gen/generator/v1"
	"github.com/Sheesh1006/service-backend/gen/generator/v1/generatorv1connect"
	notesv1 "github.com/Sheesh1006/service-backend/gen/notes/v1"
	"github.com/Sheesh1006/service-backend/gen/notes/v1/notesv1connect"
	"github.com/Sheesh1006/service-backend/relay/internal/upstream"
	"github.com/Sheesh1006/service-backend/relay/pkg/render"
)

type fakeCollector struct {
	notes *upstream.Notes
	err   error

	mu      sync.Mutex
	payload *streaming.Payload
	calls   int
}

func (f *fakeCollector) Collect(_ context.Context, p *streaming.Payload) (*upstream.Notes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.payload = p
	if f.err != nil {
		return nil, f.err
	}
	return f.notes, nil
}

func (f *fakeCollector) snapshot() (*streaming.Payload, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payload, f.calls
}

type fakeRenderer struct {
	out []byte
	err error
}

func (f fakeRenderer) Render(*render.Document) ([]byte, error) { return f.out, f.err }

func startServer(t *testing.T, h *NotesHandler, opts ...connect.HandlerOption) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle(notesv1connect.NewBackendServiceHandler(h, opts...))

	server := httptest.NewUnstartedServer(mux)
	server.EnableHTTP2 = true
	server.StartTLS()
	t.Cleanup(server.Close)
	return server
}

// call sends fragments and collects every response chunk until the stream
// ends.
func call(t *testing.T, server *httptest.Server, fragments []*notesv1.GetNotesRequest, opts ...connect.ClientOption) ([][]byte, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := notesv1connect.NewBackendServiceClient(server.Client(), server.URL, opts...)
	stream := client.GetNotes(ctx)
	for _, f := range fragments {
		if err := stream.Send(f); err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
	}
	_ = stream.CloseRequest()

	var chunks [][]byte
	for {
		msg, err := stream.Receive()
		if errors.Is(err, io.EOF) {
			return chunks, stream.CloseResponse()
		}
		if err != nil {
			stream.CloseResponse()
			return chunks, err
		}
		chunks = append(chunks, msg.GetNotes())
	}
}

func TestGetNotesStreamsDocument(t *testing.T) {
	collector := &fakeCollector{notes: &upstream.Notes{Summary: []string{"a"}, Timestamps: []string{"00:00"}}}
	h := NewNotesHandler(collector, fakeRenderer{out: []byte("0123456789")}, Options{OutputChunkBytes: 4})
	server := startServer(t, h)

	chunks, err := call(t, server, []*notesv1.GetNotesRequest{
		{Video: []byte("AAAA"), Presentation: []byte("PPP")},
		{Video: []byte("BBBB")},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]byte{[]byte("0123"), []byte("4567"), []byte("89")}, chunks)

	payload, calls := collector.snapshot()
	assert.Equal(t, 1, calls)
	assert.Equal(t, "AAAABBBB", string(payload.Video))
	assert.Equal(t, "PPP", string(payload.Presentation))
}

func TestGetNotesErrors(t *testing.T) {
	tests := []struct {
		name      string
		fragments []*notesv1.GetNotesRequest
		collector *fakeCollector
		renderer  fakeRenderer
		code      connect.Code
		collected int
	}{
		{
			name:      "no fragments",
			collector: &fakeCollector{},
			code:      connect.CodeInvalidArgument,
		},
		{
			name:      "presentation only",
			fragments: []*notesv1.GetNotesRequest{{Presentation: []byte("PPP")}, {Video: []byte{}}},
			collector: &fakeCollector{},
			code:      connect.CodeInvalidArgument,
		},
		{
			name:      "upstream down",
			fragments: []*notesv1.GetNotesRequest{{Video: []byte("v")}},
			collector: &fakeCollector{err: fmt.Errorf("GetRawNotes: %w: connection refused", upstream.ErrUpstreamUnavailable)},
			code:      connect.CodeUnavailable,
			collected: 1,
		},
		{
			name:      "upstream garbage",
			fragments: []*notesv1.GetNotesRequest{{Video: []byte("v")}},
			collector: &fakeCollector{err: fmt.Errorf("GetTimestamps: %w", upstream.ErrUpstreamProtocol)},
			code:      connect.CodeInternal,
			collected: 1,
		},
		{
			name:      "render failure",
			fragments: []*notesv1.GetNotesRequest{{Video: []byte("v")}},
			collector: &fakeCollector{notes: &upstream.Notes{}},
			renderer:  fakeRenderer{err: errors.New("font exploded")},
			code:      connect.CodeInternal,
			collected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewNotesHandler(tt.collector, tt.renderer, Options{OutputChunkBytes: 4})
			server := startServer(t, h)

			chunks, err := call(t, server, tt.fragments)
			require.Error(t, err)
			assert.Equal(t, tt.code, connect.CodeOf(err))
			assert.Empty(t, chunks)

			_, calls := tt.collector.snapshot()
			assert.Equal(t, tt.collected, calls)
		})
	}
}

func TestGetNotesVideoLimit(t *testing.T) {
	collector := &fakeCollector{notes: &upstream.Notes{}}
	h := NewNotesHandler(collector, fakeRenderer{out: []byte("pdf")}, Options{OutputChunkBytes: 4, MaxVideoBytes: 4})
	server := startServer(t, h)

	_, err := call(t, server, []*notesv1.GetNotesRequest{{Video: []byte("AAAA")}, {Video: []byte("B")}})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestGetNotesRequiresToken(t *testing.T) {
	tokens := coreauth.NewTokenManager("relay-test-secret")
	collector := &fakeCollector{notes: &upstream.Notes{}}
	h := NewNotesHandler(collector, fakeRenderer{out: []byte("pdf")}, Options{OutputChunkBytes: 4})
	server := startServer(t, h, connect.WithInterceptors(NewTokenValidationInterceptor(tokens)))

	fragments := []*notesv1.GetNotesRequest{{Video: []byte("v")}}

	_, err := call(t, server, fragments)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = call(t, server, fragments, connect.WithInterceptors(
		coreauth.NewBearerInterceptor(coreauth.NewTokenManager("other-secret").TokenSource("frontend")),
	))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	chunks, err := call(t, server, fragments, connect.WithInterceptors(
		coreauth.NewBearerInterceptor(tokens.TokenSource("frontend")),
	))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("pdf")}, chunks)
}

func TestToConnectError(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		code connect.Code
	}{
		{"invalid input", context.Background(), fmt.Errorf("x: %w", streaming.ErrInvalidInput), connect.CodeInvalidArgument},
		{"unavailable", context.Background(), fmt.Errorf("x: %w", upstream.ErrUpstreamUnavailable), connect.CodeUnavailable},
		{"protocol", context.Background(), upstream.ErrUpstreamProtocol, connect.CodeInternal},
		{"caller canceled", canceled, fmt.Errorf("receive fragment: %w", context.Canceled), connect.CodeCanceled},
		{"connect passthrough", context.Background(), fmt.Errorf("receive: %w", connect.NewError(connect.CodeResourceExhausted, errors.New("too big"))), connect.CodeResourceExhausted},
		{"unknown", context.Background(), errors.New("boom"), connect.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, connect.CodeOf(toConnectError(tt.ctx, tt.err)))
		})
	}
}

type scriptedGenerator struct {
	generatorv1connect.UnimplementedGeneratorServiceHandler
}

func (scriptedGenerator) GetRawNotes(_ context.Context, stream *connect.BidiStream[generatorv1.GetRawNotesRequest, generatorv1.GetRawNotesResponse]) error {
	for {
		if _, err := stream.Receive(); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}
	}
	return stream.Send(&generatorv1.GetRawNotesResponse{
		RawNotesData: []byte("Обход графа в ширину и глубину###Очередь хранит фронт обхода###Стек заменяет рекурсию"),
	})
}

func (scriptedGenerator) GetTimestamps(_ context.Context, _ *connect.Request[generatorv1.GetTimestampsRequest], stream *connect.ServerStream[generatorv1.GetTimestampsResponse]) error {
	return stream.Send(&generatorv1.GetTimestampsResponse{Timestamps: "00:00 Введение###04:30 BFS###09:15 DFS"})
}

func TestGetNotesEndToEnd(t *testing.T) {
	genMux := http.NewServeMux()
	genMux.Handle(generatorv1connect.NewGeneratorServiceHandler(scriptedGenerator{}))
	generator := httptest.NewUnstartedServer(genMux)
	generator.EnableHTTP2 = true
	generator.StartTLS()
	t.Cleanup(generator.Close)

	collector := upstream.NewClient(generator.Client(), generator.URL, upstream.Options{
		Timeout:    5 * time.Second,
		ChunkBytes: 2,
	})
	renderer, err := render.NewRenderer("", zerolog.Nop())
	require.NoError(t, err)

	server := startServer(t, NewNotesHandler(collector, renderer, Options{OutputChunkBytes: 512}))

	chunks, err := call(t, server, []*notesv1.GetNotesRequest{
		{Video: []byte("AAAA"), Presentation: []byte("PPP")},
		{Video: []byte("BBBB")},
	})
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 512)
	}
	pdf := bytes.Join(chunks, nil)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}
