package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Sheesh1006/service-backend/core/streaming"
	notesv1 "github.com/Sheesh1006/service-backend/gen/notes/v1"
	"github.com/Sheesh1006/service-backend/relay/internal/metrics"
	"github.com/Sheesh1006/service-backend/relay/internal/upstream"
	"github.com/Sheesh1006/service-backend/relay/pkg/render"
)

// Collector fetches generated notes for a payload.
type Collector interface {
	Collect(ctx context.Context, payload *streaming.Payload) (*upstream.Notes, error)
}

// Renderer serialises a document.
type Renderer interface {
	Render(doc *render.Document) ([]byte, error)
}

// Options tune a NotesHandler.
type Options struct {
	// OutputChunkBytes bounds each response message.
	OutputChunkBytes int
	// MaxVideoBytes caps the reassembled video. Zero means unlimited.
	MaxVideoBytes int64
}

// NotesHandler implements notes.v1.BackendService.
type NotesHandler struct {
	collector   Collector
	renderer    Renderer
	reassembler streaming.Reassembler
	outputChunk int
}

// NewNotesHandler creates the GetNotes handler. The collector and renderer
// are shared by all requests.
func NewNotesHandler(collector Collector, renderer Renderer, opts Options) *NotesHandler {
	return &NotesHandler{
		collector:   collector,
		renderer:    renderer,
		reassembler: streaming.Reassembler{MaxVideoBytes: opts.MaxVideoBytes},
		outputChunk: opts.OutputChunkBytes,
	}
}

// GetNotes reassembles the uploaded video, has the generator describe it,
// renders the notes and streams the PDF back. Nothing is sent unless the
// whole document rendered.
func (h *NotesHandler) GetNotes(ctx context.Context, stream *connect.BidiStream[notesv1.GetNotesRequest, notesv1.GetNotesResponse]) error {
	logger := log.With().
		Str("request_id", uuid.NewString()).
		Str("procedure", stream.Spec().Procedure).
		Str("peer", stream.Peer().Addr).
		Logger()
	ctx = logger.WithContext(ctx)

	metrics.RequestsInFlight.Inc()
	defer metrics.RequestsInFlight.Dec()

	start := time.Now()
	err := h.serve(ctx, stream, &logger)

	code := "ok"
	if err != nil {
		err = toConnectError(ctx, err)
		code = connect.CodeOf(err).String()
		logger.Warn().Err(err).Str("code", code).Dur("elapsed", time.Since(start)).Msg("Notes request failed")
	} else {
		logger.Info().Dur("elapsed", time.Since(start)).Msg("Notes request completed")
	}
	metrics.RequestsTotal.WithLabelValues(code).Inc()
	return err
}

func (h *NotesHandler) serve(ctx context.Context, stream *connect.BidiStream[notesv1.GetNotesRequest, notesv1.GetNotesResponse], logger *zerolog.Logger) error {
	stage := time.Now()
	payload, err := h.reassembler.Reassemble(ctx, stream)
	if err != nil {
		return err
	}
	observeStage("reassemble", stage)
	metrics.BytesTotal.WithLabelValues("video", "in").Add(float64(len(payload.Video)))
	metrics.BytesTotal.WithLabelValues("presentation", "in").Add(float64(len(payload.Presentation)))
	logger.Debug().
		Str("video", humanize.IBytes(uint64(len(payload.Video)))).
		Str("presentation", humanize.IBytes(uint64(len(payload.Presentation)))).
		Msg("Request reassembled")

	stage = time.Now()
	notes, err := h.collector.Collect(ctx, payload)
	if err != nil {
		return err
	}
	observeStage("upstream", stage)

	stage = time.Now()
	doc := render.NewDocument(notes.Summary, notes.Timestamps)
	pdf, err := h.renderer.Render(doc)
	if err != nil {
		return connect.NewError(connect.CodeInternal, fmt.Errorf("render notes: %w", err))
	}
	observeStage("render", stage)
	logger.Debug().
		Int("segments", len(notes.Summary)).
		Int("timestamps", len(notes.Timestamps)).
		Str("document", humanize.IBytes(uint64(len(pdf)))).
		Msg("Notes rendered")

	stage = time.Now()
	for chunk := range streaming.OutputChunks(pdf, h.outputChunk) {
		if err := stream.Send(&notesv1.GetNotesResponse{Notes: chunk}); err != nil {
			return fmt.Errorf("send notes chunk: %w", err)
		}
		metrics.BytesTotal.WithLabelValues("document", "out").Add(float64(len(chunk)))
	}
	observeStage("send", stage)
	return nil
}

func observeStage(name string, start time.Time) {
	metrics.StageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}

// toConnectError maps pipeline failures onto RPC status codes.
func toConnectError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, streaming.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, upstream.ErrUpstreamUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, upstream.ErrUpstreamProtocol):
		return connect.NewError(connect.CodeInternal, err)
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}
	return connect.NewError(connect.CodeInternal, err)
}
