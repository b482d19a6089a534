package notesclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreauth "github.com/Sheesh1006/service-backend/core/auth"
	notesv1 "github.com/Sheesh1006/service-backend/gen/notes/v1"
	"github.com/Sheesh1006/service-backend/gen/notes/v1/notesv1connect"
)

// echoRelay answers with "video|presentation|authorization" split into
// three-byte chunks.
type echoRelay struct {
	notesv1connect.UnimplementedBackendServiceHandler
}

func (echoRelay) GetNotes(_ context.Context, stream *connect.BidiStream[notesv1.GetNotesRequest, notesv1.GetNotesResponse]) error {
	var video, pres bytes.Buffer
	fragments := 0
	for {
		req, err := stream.Receive()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		fragments++
		video.Write(req.GetVideo())
		pres.Write(req.GetPresentation())
	}
	if video.Len() == 0 {
		return connect.NewError(connect.CodeInvalidArgument, errors.New("no video provided"))
	}

	out := []byte(video.String() + "|" + pres.String() + "|" + stream.RequestHeader().Get("Authorization"))
	for len(out) > 0 {
		n := min(3, len(out))
		if err := stream.Send(&notesv1.GetNotesResponse{Notes: out[:n]}); err != nil {
			return err
		}
		out = out[n:]
	}
	return nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(notesv1connect.NewBackendServiceHandler(echoRelay{}))
	server := httptest.NewUnstartedServer(mux)
	server.EnableHTTP2 = true
	server.StartTLS()
	t.Cleanup(server.Close)
	return server
}

func TestGenerate(t *testing.T) {
	server := newServer(t)
	client := New(server.Client(), server.URL, Options{FragmentBytes: 2})

	doc, err := client.Generate(context.Background(), strings.NewReader("AAAABBB"), strings.NewReader("slides"))
	require.NoError(t, err)
	assert.Equal(t, "AAAABBB|slides|", string(doc))
}

func TestGenerateWithToken(t *testing.T) {
	server := newServer(t)
	client := New(server.Client(), server.URL, Options{Token: coreauth.StaticToken("abc")})

	doc, err := client.Generate(context.Background(), strings.NewReader("V"), nil)
	require.NoError(t, err)
	assert.Equal(t, "V||Bearer abc", string(doc))
}

func TestGenerateEmptyVideo(t *testing.T) {
	server := newServer(t)
	client := New(server.Client(), server.URL, Options{})

	doc, err := client.Generate(context.Background(), strings.NewReader(""), strings.NewReader("slides"))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	assert.Nil(t, doc)
}

func TestGenerateSendFailureEndsCall(t *testing.T) {
	server := newServer(t)
	client := New(server.Client(), server.URL, Options{FragmentBytes: 100, MaxMessageBytes: 64})

	done := make(chan error, 1)
	go func() {
		_, err := client.Generate(context.Background(), bytes.NewReader(make([]byte, 200)), nil)
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Equal(t, connect.CodeResourceExhausted, connect.CodeOf(err))
	case <-time.After(5 * time.Second):
		t.Fatal("Generate did not return after a failed send")
	}
}
