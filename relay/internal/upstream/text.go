package upstream

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	generatorv1 "github.com/Sheesh1006/service-backend/gen/generator/v1"
)

// SegmentDelimiter separates note segments and timestamp lines in
// generator output.
const SegmentDelimiter = "###"

var (
	// ErrUpstreamUnavailable covers transport failures, refusals and
	// deadline expiry of a generator call.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUpstreamProtocol is returned when a generator response cannot be
	// decoded as text.
	ErrUpstreamProtocol = errors.New("upstream protocol error")
)

// TextStream is a sequence of decoded text units. Next returns io.EOF once
// the sequence is exhausted.
type TextStream interface {
	Next() (string, error)
}

// SplitSegments splits text on the segment delimiter. Pieces are neither
// trimmed nor deduplicated, so empty pieces are kept.
func SplitSegments(text string) []string {
	return strings.Split(text, SegmentDelimiter)
}

// decodeText applies the tolerant decode rule: the binary representation
// wins when present, otherwise the string field is taken as is.
func decodeText(text string, data []byte) (string, error) {
	if len(data) > 0 {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: response is not valid UTF-8", ErrUpstreamProtocol)
		}
		text = string(data)
	}
	return norm.NFC.String(text), nil
}

// Drain reads s to the end and splits every unit on the delimiter,
// appending the pieces in arrival order.
func Drain(s TextStream) ([]string, error) {
	var out []string
	for {
		text, err := s.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, SplitSegments(text)...)
	}
}

type rawNotesReceiver interface {
	Receive() (*generatorv1.GetRawNotesResponse, error)
}

// rawNotesStream adapts the response side of a GetRawNotes call.
type rawNotesStream struct {
	recv rawNotesReceiver
}

func (s rawNotesStream) Next() (string, error) {
	msg, err := s.recv.Receive()
	if err != nil {
		return "", err
	}
	return decodeText(msg.GetRawNotes(), msg.GetRawNotesData())
}

type timestampsReceiver interface {
	Receive() bool
	Msg() *generatorv1.GetTimestampsResponse
	Err() error
}

// timestampsStream adapts a GetTimestamps server stream.
type timestampsStream struct {
	recv timestampsReceiver
}

func (s timestampsStream) Next() (string, error) {
	if !s.recv.Receive() {
		if err := s.recv.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	msg := s.recv.Msg()
	return decodeText(msg.GetTimestamps(), msg.GetTimestampsData())
}
