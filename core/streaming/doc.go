// Package streaming holds the byte plumbing around the notes RPCs.
//
// Inbound, a client sends a video (and optionally a presentation) as a
// sequence of GetNotesRequest fragments; Reassemble concatenates them back
// into one Payload. Outbound to the generator, RequestChunks re-splits the
// payload into bounded GetRawNotesRequest units with the presentation
// attached once to the first unit. The rendered document goes back to the
// client through OutputChunks. Fragments is the client-side counterpart of
// Reassemble.
//
// Chunking never reorders, drops or duplicates bytes: concatenating the
// produced pieces always yields the original input.
//
// Example usage (relay side):
//
//	payload, err := streaming.Reassemble(ctx, stream)
//	for req := range streaming.RequestChunks(payload, 2<<20) {
//		upstream.Send(req)
//	}
//	for chunk := range streaming.OutputChunks(pdf, 4<<20) {
//		stream.Send(&notesv1.GetNotesResponse{Notes: chunk})
//	}
package streaming
