package streaming

import (
	"iter"

	generatorv1 "github.com/Sheesh1006/service-backend/gen/generator/v1"
)

// RequestChunks splits the payload into upstream request units of at most
// size video bytes. The presentation rides on the first unit only; later
// units carry none. An empty video yields no units.
func RequestChunks(p *Payload, size int) iter.Seq[*generatorv1.GetRawNotesRequest] {
	return func(yield func(*generatorv1.GetRawNotesRequest) bool) {
		if p == nil {
			return
		}
		first := true
		for part := range OutputChunks(p.Video, size) {
			req := &generatorv1.GetRawNotesRequest{Video: part}
			if first {
				req.Presentation = p.Presentation
				first = false
			}
			if !yield(req) {
				return
			}
		}
	}
}

// OutputChunks yields consecutive slices of data of at most size bytes.
// The slices alias data. A non-positive size yields data in one piece.
func OutputChunks(data []byte, size int) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if size <= 0 {
			if len(data) > 0 {
				yield(data)
			}
			return
		}
		for start := 0; start < len(data); start += size {
			end := min(start+size, len(data))
			if !yield(data[start:end:end]) {
				return
			}
		}
	}
}
