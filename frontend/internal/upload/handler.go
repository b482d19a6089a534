package upload

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"connectrpc.com/connect"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Sheesh1006/service-backend/frontend/internal/metrics"
)

// Form field names.
const (
	VideoField        = "video_file"
	PresentationField = "presentation_file"
)

// Generator turns an upload into a PDF.
type Generator interface {
	Generate(ctx context.Context, video, presentation io.Reader) ([]byte, error)
}

// Options bound an upload.
type Options struct {
	Timeout     time.Duration
	MaxBytes    int64
	MemoryBytes int64
}

// Handler serves POST /api/process.
type Handler struct {
	gen  Generator
	opts Options
}

// NewHandler creates the upload handler.
func NewHandler(gen Generator, opts Options) *Handler {
	return &Handler{gen: gen, opts: opts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("request_id", uuid.NewString()).Str("remote", r.RemoteAddr).Logger()

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		h.fail(w, &logger, http.StatusUnsupportedMediaType, "only multipart/form-data is supported", err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxBytes)
	if err := r.ParseMultipartForm(h.opts.MemoryBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, &logger, http.StatusRequestEntityTooLarge,
				"upload exceeds "+humanize.IBytes(uint64(h.opts.MaxBytes)), err)
			return
		}
		h.fail(w, &logger, http.StatusBadRequest, "malformed multipart form", err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	video, videoHeader, err := r.FormFile(VideoField)
	if err != nil {
		h.fail(w, &logger, http.StatusBadRequest, VideoField+" is required", err)
		return
	}
	defer video.Close()
	metrics.UploadBytes.WithLabelValues(VideoField).Add(float64(videoHeader.Size))

	var presentation io.Reader
	pres, presHeader, err := r.FormFile(PresentationField)
	switch {
	case err == nil:
		defer pres.Close()
		presentation = pres
		metrics.UploadBytes.WithLabelValues(PresentationField).Add(float64(presHeader.Size))
	case !errors.Is(err, http.ErrMissingFile):
		h.fail(w, &logger, http.StatusBadRequest, "unreadable "+PresentationField, err)
		return
	}

	logger.Info().
		Str("video", videoHeader.Filename).
		Str("video_size", humanize.IBytes(uint64(videoHeader.Size))).
		Bool("presentation", presentation != nil).
		Msg("Processing upload")

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	start := time.Now()
	doc, err := h.gen.Generate(ctx, video, presentation)
	metrics.RelayDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		status, msg := relayStatus(err)
		h.fail(w, &logger, status, msg, err)
		return
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	logger.Info().Str("document", humanize.IBytes(uint64(len(doc)))).Dur("elapsed", time.Since(start)).Msg("Notes generated")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="notes.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		logger.Debug().Err(err).Msg("Client went away while receiving document")
	}
}

// relayStatus maps a relay failure onto an HTTP status and a message safe
// to show to the browser.
func relayStatus(err error) (int, string) {
	switch connect.CodeOf(err) {
	case connect.CodeInvalidArgument:
		return http.StatusBadRequest, "the video could not be processed"
	case connect.CodeDeadlineExceeded:
		return http.StatusGatewayTimeout, "processing took too long"
	case connect.CodeUnavailable, connect.CodeUnauthenticated:
		return http.StatusBadGateway, "notes service is unavailable"
	case connect.CodeCanceled:
		return http.StatusServiceUnavailable, "request was cancelled"
	default:
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, "processing took too long"
		}
		return http.StatusInternalServerError, "notes generation failed"
	}
}

func (h *Handler) fail(w http.ResponseWriter, logger *zerolog.Logger, status int, msg string, err error) {
	metrics.UploadsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	logger.Warn().Err(err).Int("status", status).Msg(msg)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": msg,
	})
}
