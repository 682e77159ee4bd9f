package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "github.com/gen2brain/heic"
	_ "golang.org/x/image/bmp"
)

var (
	// ErrEmpty is returned for zero-length image files.
	ErrEmpty = errors.New("image file is empty")
	// ErrNoPixels is returned when an image decodes to zero width or height.
	ErrNoPixels = errors.New("image has no pixels")
)

// Image is a fully decoded source image.
type Image struct {
	Path   string      // Source file path
	Name   string      // Base file name
	Format string      // Format name reported by the decoder (png, jpeg, gif, bmp, heic)
	Data   []byte      // Raw file contents
	Width  int         // Pixel width
	Height int         // Pixel height
	Pixels image.Image // Decoded pixels
}

// Load reads the file at path and decodes it completely, so truncated or
// corrupt files are rejected here rather than after they reach a document.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	img.Path = path
	img.Name = filepath.Base(path)
	return img, nil
}

// Decode decodes in-memory image data.
func Decode(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	pixels, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := pixels.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrNoPixels
	}

	return &Image{
		Format: format,
		Data:   data,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: pixels,
	}, nil
}

// DetectFormat returns the decoder's format name for data without decoding
// the pixels.
func DetectFormat(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image config: %w", err)
	}
	return format, nil
}
