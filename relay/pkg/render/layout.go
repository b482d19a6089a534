package render

import "fmt"

// Page geometry in points.
const (
	marginX         = 50.0
	marginTop       = 50.0
	textBottom      = 80.0
	imageBottom     = 50.0
	titleSize       = 18.0
	headerSize      = 14.0
	bodySize        = 12.0
	titleLeading    = 22.0
	titleGap        = 20.0
	headerLeading   = 20.0
	lineLeading     = 16.0
	bulletLeading   = 18.0
	sectionGap      = 10.0
	timestampIndent = 20.0
	continueIndent  = 15.0
	imagesLeading   = 30.0
	imageBoxW       = 400.0
	imageBoxH       = 300.0
	imageGap        = 20.0
	bullet          = "• "
)

// pager is the per-render cursor: current page, y position and font size.
type pager struct {
	c      Canvas
	width  float64
	height float64
	y      float64
	size   float64
	pages  int
}

func newPager(c Canvas) *pager {
	w, h := c.PageSize()
	return &pager{c: c, width: w, height: h, size: bodySize}
}

func (p *pager) top() float64 { return p.height - marginTop }

func (p *pager) atTop() bool { return p.y == p.top() }

// startPage opens a new page with the cursor at the top margin. The font
// size in effect carries over.
func (p *pager) startPage() {
	p.c.AddPage()
	p.c.SetFontSize(p.size)
	p.pages++
	p.y = p.top()
}

func (p *pager) pageBreak(size float64) {
	p.size = size
	p.startPage()
}

func (p *pager) setFont(size float64) {
	p.size = size
	p.c.SetFontSize(size)
}

// ensure breaks the page when a baseline at y-drop would land below bottom.
// A fresh page never breaks again.
func (p *pager) ensure(drop, bottom float64) {
	if p.y-drop < bottom && !p.atTop() {
		p.pageBreak(p.size)
	}
}

func (p *pager) writeLine(x float64, s string, advance float64) {
	p.ensure(0, textBottom)
	p.c.DrawString(x, p.y, s)
	p.y -= advance
}

func (p *pager) measure(s string) float64 { return p.c.StringWidth(s) }

// skipFunc is told about every item left out of the document.
type skipFunc func(index int, err error)

// paginate lays doc out on c and returns the number of pages used.
func paginate(c Canvas, doc *Document, skip skipFunc) int {
	p := newPager(c)
	textWidth := p.width - 2*marginX

	p.startPage()

	p.setFont(titleSize)
	for _, line := range wrapTitle(doc.Title, textWidth, p.measure) {
		p.writeLine(marginX, line, titleLeading)
	}
	p.y -= titleGap

	p.setFont(headerSize)
	p.writeLine(marginX, OutlineHeader, headerLeading)
	p.setFont(bodySize)
	for _, line := range doc.Timestamps {
		p.writeLine(marginX+timestampIndent, line, lineLeading)
	}
	p.y -= sectionGap

	p.setFont(headerSize)
	p.ensure(headerLeading, textBottom)
	p.writeLine(marginX, SummaryHeader, headerLeading)
	p.setFont(bodySize)
	for _, segment := range doc.Summary {
		writeSegment(p, wrapParagraphs(segment, textWidth, p.measure))
		p.y -= sectionGap
	}

	if len(doc.Images) > 0 {
		writeImages(p, doc.Images, skip)
	}
	return p.pages
}

// writeSegment draws one bulleted summary segment. The whole segment moves
// to a new page when its last line would cross the bottom margin; a
// segment taller than a page continues on the next one.
func writeSegment(p *pager, lines []string) {
	if len(lines) == 0 {
		return
	}
	drop := 0.0
	if len(lines) > 1 {
		drop = bulletLeading + lineLeading*float64(len(lines)-2)
	}
	p.ensure(drop, textBottom)

	p.writeLine(marginX, bullet+lines[0], bulletLeading)
	for _, line := range lines[1:] {
		p.writeLine(marginX+continueIndent, line, lineLeading)
	}
}

func writeImages(p *pager, images []Image, skip skipFunc) {
	p.pageBreak(headerSize)
	p.writeLine(marginX, ImagesHeader, imagesLeading)
	p.setFont(bodySize)

	for i, img := range images {
		raster, err := prepareImage(img.Data)
		if err != nil {
			skip(i, err)
			continue
		}

		w, h := fitBox(raster.Width, raster.Height, imageBoxW, imageBoxH)
		p.ensure(h, imageBottom)

		if err := p.c.DrawImage(raster, marginX, p.y-h, w, h); err != nil {
			skip(i, fmt.Errorf("%w: draw image: %v", ErrRenderSkip, err))
			continue
		}
		p.y -= h + imageGap
	}
}
