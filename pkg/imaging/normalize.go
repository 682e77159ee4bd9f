package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// embeddable lists decoder formats that documents accept without conversion.
var embeddable = map[string]bool{
	"png":  true,
	"jpeg": true,
}

// NormalizeOptions controls how images are prepared for embedding.
type NormalizeOptions struct {
	MaxPixels   int    // Longest side limit in pixels (0 = keep original size)
	JPEGQuality int    // Quality for re-encoded JPEGs (0 = jpeg.DefaultQuality)
	TempDir     string // Directory for temporary files ("" = os.TempDir())
}

// Normalized is an image in an embeddable format.
// When the source had to be converted or downsampled the bytes live in a
// temporary file that Cleanup removes.
type Normalized struct {
	Path      string      // File holding the embeddable bytes
	Format    string      // png or jpeg
	Width     int         // Pixel width after downsampling
	Height    int         // Pixel height after downsampling
	Temporary bool        // Path is a temporary file owned by this value
	Pixels    image.Image // Decoded pixels matching the embeddable bytes

	data []byte
}

// Bytes returns the embeddable image bytes.
func (n *Normalized) Bytes() ([]byte, error) {
	if n.data != nil {
		return n.data, nil
	}
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read normalized image: %w", err)
	}
	return data, nil
}

// Cleanup removes the temporary file, if any. It is safe to call more than once.
func (n *Normalized) Cleanup() error {
	if !n.Temporary || n.Path == "" {
		return nil
	}
	err := os.Remove(n.Path)
	n.Temporary = false
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temporary image: %w", err)
	}
	return nil
}

// Normalize returns img in a format a document can embed. PNG and JPEG
// within the pixel limit pass through untouched; everything else is written
// to a temporary PNG (or JPEG for JPEG sources) that the caller must Cleanup.
func Normalize(img *Image, opts NormalizeOptions) (*Normalized, error) {
	resize := opts.MaxPixels > 0 && max(img.Width, img.Height) > opts.MaxPixels
	if embeddable[img.Format] && !resize {
		return &Normalized{
			Path:   img.Path,
			Format: img.Format,
			Width:  img.Width,
			Height: img.Height,
			Pixels: img.Pixels,
			data:   img.Data,
		}, nil
	}

	pixels := img.Pixels
	if resize {
		pixels = downsample(pixels, opts.MaxPixels)
	}

	format := "png"
	if img.Format == "jpeg" {
		format = "jpeg"
	}

	f, err := os.CreateTemp(opts.TempDir, "phototable-*."+format)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary image: %w", err)
	}
	if err := encode(f, pixels, format, opts.JPEGQuality); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write temporary image: %w", err)
	}

	bounds := pixels.Bounds()
	return &Normalized{
		Path:      f.Name(),
		Format:    format,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Temporary: true,
		Pixels:    pixels,
	}, nil
}

// EncodeJPEG writes pixels as a JPEG, used when a consumer rejects the
// original bytes.
func EncodeJPEG(w io.Writer, pixels image.Image, quality int) error {
	return encode(w, pixels, "jpeg", quality)
}

func encode(w io.Writer, pixels image.Image, format string, quality int) error {
	if format == "jpeg" {
		if quality <= 0 {
			quality = jpeg.DefaultQuality
		}
		return jpeg.Encode(w, pixels, &jpeg.Options{Quality: quality})
	}
	return png.Encode(w, pixels)
}

// downsample shrinks pixels so the longest side equals limit.
func downsample(pixels image.Image, limit int) image.Image {
	bounds := pixels.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w >= h {
		h = max(1, h*limit/w)
		w = limit
	} else {
		w = max(1, w*limit/h)
		h = limit
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), pixels, bounds, draw.Over, nil)
	return dst
}
