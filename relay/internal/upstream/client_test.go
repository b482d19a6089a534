package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sheesh1006/service-backend/core/streaming"
	"github.com/Sheesh1006/service-backend/core/transport"
	generatorv1 "github.com/Sheesh1006/service-backend/gen/generator/v1"
	"github.com/Sheesh1006/service-backend/gen/generator/v1/generatorv1connect"
)

type fakeGenerator struct {
	generatorv1connect.UnimplementedGeneratorServiceHandler

	rawReplies []*generatorv1.GetRawNotesResponse
	rawErr     error
	tsReplies  []*generatorv1.GetTimestampsResponse
	tsErr      error
	tsBlock    bool

	mu       sync.Mutex
	received []*generatorv1.GetRawNotesRequest
	tsCalls  int
}

func (f *fakeGenerator) GetRawNotes(ctx context.Context, stream *connect.BidiStream[generatorv1.GetRawNotesRequest, generatorv1.GetRawNotesResponse]) error {
	for {
		req, err := stream.Receive()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		f.mu.Lock()
		f.received = append(f.received, req)
		f.mu.Unlock()
	}
	if f.rawErr != nil {
		return f.rawErr
	}
	for _, r := range f.rawReplies {
		if err := stream.Send(r); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeGenerator) GetTimestamps(ctx context.Context, _ *connect.Request[generatorv1.GetTimestampsRequest], stream *connect.ServerStream[generatorv1.GetTimestampsResponse]) error {
	f.mu.Lock()
	f.tsCalls++
	f.mu.Unlock()

	if f.tsBlock {
		<-ctx.Done()
		return ctx.Err()
	}
	if f.tsErr != nil {
		return f.tsErr
	}
	for _, r := range f.tsReplies {
		if err := stream.Send(r); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeGenerator) requests() []*generatorv1.GetRawNotesRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*generatorv1.GetRawNotesRequest(nil), f.received...)
}

func (f *fakeGenerator) timestampCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tsCalls
}

func newTestClient(t *testing.T, gen *fakeGenerator, opts Options) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle(generatorv1connect.NewGeneratorServiceHandler(gen))

	server := httptest.NewUnstartedServer(mux)
	server.EnableHTTP2 = true
	server.StartTLS()
	t.Cleanup(server.Close)

	return NewClient(server.Client(), server.URL, opts)
}

func TestCollect(t *testing.T) {
	gen := &fakeGenerator{
		rawReplies: []*generatorv1.GetRawNotesResponse{
			{RawNotes: "Intro to graphs###BFS visits by layers"},
			{RawNotesData: []byte("DFS uses a stack")},
		},
		tsReplies: []*generatorv1.GetTimestampsResponse{
			{TimestampsData: []byte("00:00 Intro###05:10 BFS")},
			{Timestamps: "12:30 DFS"},
		},
	}
	client := newTestClient(t, gen, Options{Timeout: 5 * time.Second, ChunkBytes: 2})

	notes, err := client.Collect(context.Background(), &streaming.Payload{
		Video:        []byte("AAAABBBB"),
		Presentation: []byte("PPP"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Intro to graphs", "BFS visits by layers", "DFS uses a stack"}, notes.Summary)
	assert.Equal(t, []string{"00:00 Intro", "05:10 BFS", "12:30 DFS"}, notes.Timestamps)

	received := gen.requests()
	require.Len(t, received, 4)
	assert.Equal(t, "PPP", string(received[0].GetPresentation()))
	var video []byte
	for i, req := range received {
		if i > 0 {
			assert.Empty(t, req.GetPresentation())
		}
		video = append(video, req.GetVideo()...)
	}
	assert.Equal(t, "AAAABBBB", string(video))
}

func TestCollectRejectsInvalidUTF8(t *testing.T) {
	gen := &fakeGenerator{
		rawReplies: []*generatorv1.GetRawNotesResponse{{RawNotesData: []byte{0xff, 0xfe}}},
	}
	client := newTestClient(t, gen, Options{Timeout: 5 * time.Second, ChunkBytes: 4})

	_, err := client.Collect(context.Background(), &streaming.Payload{Video: []byte("video")})
	assert.ErrorIs(t, err, ErrUpstreamProtocol)
	assert.Zero(t, gen.timestampCalls(), "timestamps must not be requested after a failed first call")
}

func TestCollectUpstreamError(t *testing.T) {
	gen := &fakeGenerator{rawErr: connect.NewError(connect.CodeInternal, errors.New("model crashed"))}
	client := newTestClient(t, gen, Options{Timeout: 5 * time.Second, ChunkBytes: 4})

	_, err := client.Collect(context.Background(), &streaming.Payload{Video: []byte("video")})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestCollectTimestampsTimeout(t *testing.T) {
	gen := &fakeGenerator{
		rawReplies: []*generatorv1.GetRawNotesResponse{{RawNotes: "a"}},
		tsBlock:    true,
	}
	client := newTestClient(t, gen, Options{Timeout: 200 * time.Millisecond, ChunkBytes: 4})

	start := time.Now()
	_, err := client.Collect(context.Background(), &streaming.Payload{Video: []byte("video")})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestCollectUnreachable(t *testing.T) {
	client := NewClient(transport.NewH2CClient(), "http://127.0.0.1:1", Options{Timeout: 2 * time.Second, ChunkBytes: 4})

	_, err := client.Collect(context.Background(), &streaming.Payload{Video: []byte("video")})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestCollectCallerCanceled(t *testing.T) {
	client := newTestClient(t, &fakeGenerator{}, Options{Timeout: 5 * time.Second, ChunkBytes: 4})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Collect(ctx, &streaming.Payload{Video: []byte("video")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestCollectRejectsPresentationOverMessageLimit(t *testing.T) {
	gen := &fakeGenerator{}
	client := newTestClient(t, gen, Options{Timeout: 3 * time.Second, ChunkBytes: 8, MaxMessageBytes: 64})

	_, err := client.Collect(context.Background(), &streaming.Payload{
		Video:        make([]byte, 40),
		Presentation: make([]byte, 100),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, streaming.ErrInvalidInput)
	assert.Empty(t, gen.requests())
	assert.Zero(t, gen.timestampCalls())
}

func TestRawNotesSendFailureEndsCall(t *testing.T) {
	gen := &fakeGenerator{rawReplies: []*generatorv1.GetRawNotesResponse{{RawNotes: "never"}}}
	client := newTestClient(t, gen, Options{Timeout: 3 * time.Second, ChunkBytes: 8, MaxMessageBytes: 64})

	done := make(chan error, 1)
	go func() {
		_, err := client.rawNotes(context.Background(), &streaming.Payload{
			Video:        make([]byte, 40),
			Presentation: make([]byte, 100),
		})
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	case <-time.After(2 * time.Second):
		t.Fatal("rawNotes did not return after a failed send")
	}
}
