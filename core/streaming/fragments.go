package streaming

import (
	"errors"
	"fmt"
	"io"
	"iter"

	notesv1 "github.com/Sheesh1006/service-backend/gen/notes/v1"
)

// Fragments reads video in pieces of at most size bytes and yields them as
// inbound requests. The presentation is read whole and spread over the
// leading fragments in pieces of at most size bytes, so no field of a
// fragment exceeds size. A read error is yielded once and ends the sequence.
func Fragments(video, presentation io.Reader, size int) iter.Seq2[*notesv1.GetNotesRequest, error] {
	return func(yield func(*notesv1.GetNotesRequest, error) bool) {
		if size <= 0 {
			yield(nil, fmt.Errorf("%w: fragment size must be positive", ErrInvalidInput))
			return
		}

		var pres []byte
		if presentation != nil {
			var err error
			if pres, err = io.ReadAll(presentation); err != nil {
				yield(nil, fmt.Errorf("read presentation: %w", err))
				return
			}
		}

		videoDone := false
		buf := make([]byte, size)
		for !videoDone || len(pres) > 0 {
			req := &notesv1.GetNotesRequest{}

			if !videoDone {
				n, err := io.ReadFull(video, buf)
				switch {
				case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
					videoDone = true
				case err != nil:
					yield(nil, fmt.Errorf("read video: %w", err))
					return
				}
				if n > 0 {
					req.Video = append([]byte(nil), buf[:n]...)
				}
			}

			// With no video at all the presentation is still delivered so
			// the server can reject the request for the right reason.
			if len(pres) > 0 {
				n := min(size, len(pres))
				req.Presentation, pres = pres[:n:n], pres[n:]
			}

			if len(req.Video) == 0 && len(req.Presentation) == 0 {
				return
			}
			if !yield(req, nil) {
				return
			}
		}
	}
}
