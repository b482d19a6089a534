// Package render lays lecture notes out as an A4 PDF.
//
// Layout runs as a small state machine over pages (start page, write line,
// page break, end document) against the Canvas interface, so the geometry
// can be exercised without producing a real PDF. The production canvas is
// backed by go-pdf/fpdf.
package render

import (
	"errors"
	"strings"
)

// PlaceholderTitle is used when the generator produced no summary.
const PlaceholderTitle = "Краткий конспект"

// Section headers.
const (
	OutlineHeader = "План занятия:"
	SummaryHeader = "Краткое содержание:"
	ImagesHeader  = "Визуальные материалы из видео"
)

// ErrRenderSkip marks an item that could not be drawn and was left out of
// the document. It never fails a render.
var ErrRenderSkip = errors.New("render skipped item")

// Image is an encoded picture to append after the summary.
type Image struct {
	Name string
	Data []byte
}

// Document is the content of one PDF. Build it with NewDocument and treat
// it as read-only afterwards.
type Document struct {
	Title      string
	Timestamps []string
	Summary    []string
	Images     []Image
}

// NewDocument builds a document and derives its title from the summary.
func NewDocument(summary, timestamps []string, images ...Image) *Document {
	return &Document{
		Title:      DeriveTitle(summary),
		Timestamps: timestamps,
		Summary:    summary,
		Images:     images,
	}
}

// DeriveTitle builds the title from the words of the first summary segment.
// The two halves of the word list are joined without a space between them:
// "The quick brown fox jumps" becomes "The quickbrown fox jumps".
func DeriveTitle(summary []string) string {
	if len(summary) == 0 {
		return PlaceholderTitle
	}
	words := strings.Fields(summary[0])
	mid := len(words) / 2
	return strings.Join(words[:mid], " ") + strings.Join(words[mid:], " ")
}
