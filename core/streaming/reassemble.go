package streaming

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	notesv1 "github.com/Sheesh1006/service-backend/gen/notes/v1"
)

// ErrInvalidInput is returned when the reassembled request is unusable,
// e.g. it carries no video bytes.
var ErrInvalidInput = errors.New("invalid input")

// Payload is a fully reassembled request. It is not modified after
// Reassemble returns.
type Payload struct {
	Video        []byte
	Presentation []byte
}

// FragmentSource yields inbound fragments until io.EOF.
// *connect.BidiStream[notesv1.GetNotesRequest, notesv1.GetNotesResponse]
// satisfies it.
type FragmentSource interface {
	Receive() (*notesv1.GetNotesRequest, error)
}

// Reassembler collects fragments into a Payload.
type Reassembler struct {
	// MaxVideoBytes caps the reassembled video size. Zero means unlimited.
	MaxVideoBytes int64
}

// Reassemble reads src with no size limit.
func Reassemble(ctx context.Context, src FragmentSource) (*Payload, error) {
	return Reassembler{}.Reassemble(ctx, src)
}

// Reassemble drains src, concatenating the video and presentation fields
// in arrival order. The whole payload is held in memory.
func (r Reassembler) Reassemble(ctx context.Context, src FragmentSource) (*Payload, error) {
	var video, presentation bytes.Buffer

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		msg, err := src.Receive()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("receive fragment: %w", err)
		}

		video.Write(msg.GetVideo())
		presentation.Write(msg.GetPresentation())

		if r.MaxVideoBytes > 0 && int64(video.Len()) > r.MaxVideoBytes {
			return nil, fmt.Errorf("%w: video exceeds %d bytes", ErrInvalidInput, r.MaxVideoBytes)
		}
	}

	if video.Len() == 0 {
		return nil, fmt.Errorf("%w: no video provided", ErrInvalidInput)
	}

	return &Payload{
		Video:        video.Bytes(),
		Presentation: presentation.Bytes(),
	}, nil
}
