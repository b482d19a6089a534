package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// prepareImage checks that data is a decodable image. JPEG, PNG and GIF are
// embedded as they are; anything else that decodes is re-encoded as PNG.
func prepareImage(data []byte) (*Raster, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrRenderSkip, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("%w: image has no pixels", ErrRenderSkip)
	}

	r := &Raster{Data: data, Width: cfg.Width, Height: cfg.Height}
	switch format {
	case "jpeg":
		r.Format = "JPG"
	case "png":
		r.Format = "PNG"
	case "gif":
		r.Format = "GIF"
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: decode %s image: %v", ErrRenderSkip, format, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: re-encode %s image: %v", ErrRenderSkip, format, err)
		}
		r.Format = "PNG"
		r.Data = buf.Bytes()
	}
	return r, nil
}

// fitBox scales w×h to the largest size that fits in boxW×boxH while
// keeping the aspect ratio.
func fitBox(w, h int, boxW, boxH float64) (float64, float64) {
	scale := min(boxW/float64(w), boxH/float64(h))
	return float64(w) * scale, float64(h) * scale
}
