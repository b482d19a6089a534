package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/goregular"
)

// Observer is told about finished renders. Implementations must be safe for
// concurrent use.
type Observer interface {
	ImageSkipped()
	PagesRendered(pages int)
}

type nopObserver struct{}

func (nopObserver) ImageSkipped()     {}
func (nopObserver) PagesRendered(int) {}

// Option configures a Renderer.
type Option func(*Renderer)

// WithObserver reports skipped images and page counts to o.
func WithObserver(o Observer) Option {
	return func(r *Renderer) { r.observer = o }
}

// Renderer turns documents into PDF bytes. It holds only the font and is
// safe for concurrent use.
type Renderer struct {
	font     []byte
	logger   zerolog.Logger
	observer Observer
}

// NewRenderer loads the TrueType font at fontPath, or the embedded Go
// Regular font when fontPath is empty. The font must cover Cyrillic.
func NewRenderer(fontPath string, logger zerolog.Logger, opts ...Option) (*Renderer, error) {
	font := goregular.TTF
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", fontPath, err)
		}
		font = data
	}

	// Parse once up front so a bad font fails at startup, not per request.
	if _, err := newPDFCanvas(font, ""); err != nil {
		return nil, err
	}
	r := &Renderer{font: font, logger: logger, observer: nopObserver{}}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render lays doc out and serialises the whole PDF. Images that cannot be
// drawn are logged and left out.
func (r *Renderer) Render(doc *Document) ([]byte, error) {
	c, err := newPDFCanvas(r.font, doc.Title)
	if err != nil {
		return nil, err
	}

	pages := paginate(c, doc, func(i int, err error) {
		r.observer.ImageSkipped()
		name := ""
		if i < len(doc.Images) {
			name = doc.Images[i].Name
		}
		r.logger.Warn().Err(err).Int("index", i).Str("image", name).Msg("Skipping image")
	})

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialise pdf: %w", err)
	}
	r.observer.PagesRendered(pages)
	return buf.Bytes(), nil
}
