package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "notes"

// pdfCanvas draws on an fpdf document. fpdf measures y from the top of the
// page, so every y is flipped on the way in.
type pdfCanvas struct {
	pdf    *fpdf.Fpdf
	height float64
	images int
}

func newPDFCanvas(font []byte, title string) (*pdfCanvas, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddUTF8FontFromBytes(fontFamily, "", font)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	pdf.SetFont(fontFamily, "", bodySize)
	if title != "" {
		pdf.SetTitle(title, true)
	}

	_, h := pdf.GetPageSize()
	return &pdfCanvas{pdf: pdf, height: h}, nil
}

func (c *pdfCanvas) PageSize() (float64, float64) {
	return c.pdf.GetPageSize()
}

func (c *pdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) SetFontSize(size float64) {
	c.pdf.SetFontSize(size)
}

func (c *pdfCanvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(s)
}

func (c *pdfCanvas) DrawString(x, y float64, s string) {
	c.pdf.Text(x, c.height-y, s)
}

func (c *pdfCanvas) DrawImage(img *Raster, x, y, w, h float64) error {
	c.images++
	name := fmt.Sprintf("image-%d", c.images)
	opts := fpdf.ImageOptions{ImageType: img.Format}

	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if err := c.pdf.Error(); err != nil {
		// A bad image must not poison the rest of the document.
		c.pdf.ClearError()
		return err
	}
	c.pdf.ImageOptions(name, x, c.height-y-h, w, h, false, opts, 0, "")
	if err := c.pdf.Error(); err != nil {
		c.pdf.ClearError()
		return err
	}
	return nil
}

func (c *pdfCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}
