package render

// Canvas is the drawing surface used by the layout engine. Coordinates are
// in points with the origin at the bottom-left corner of the page; y of a
// string is its baseline.
type Canvas interface {
	PageSize() (width, height float64)
	AddPage()
	SetFontSize(size float64)
	// StringWidth measures s at the current font size.
	StringWidth(s string) float64
	DrawString(x, y float64, s string)
	// DrawImage places img with its bottom-left corner at (x, y).
	DrawImage(img *Raster, x, y, w, h float64) error
}

// Raster is an image ready to be embedded: its data is in one of the
// formats every canvas accepts.
type Raster struct {
	Format string // "JPG", "PNG" or "GIF"
	Data   []byte
	Width  int
	Height int
}
