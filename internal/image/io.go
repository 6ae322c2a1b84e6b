package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder with image.Decode
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is the quality used by Save for JPEG output.
const DefaultJPEGQuality = 95

// Load reads an image file, auto-detecting the format from its content.
func Load(path string) (*Image, Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an image held in memory.
func LoadFromBytes(data []byte) (*Image, Format, error) {
	if len(data) == 0 {
		return nil, FormatUnknown, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes BMP, PNG, JPEG, TIFF or WebP data into an 8-bit-per-channel
// Image. Alpha is discarded.
func Decode(r io.Reader) (*Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, FormatUnknown, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, FormatUnknown, fmt.Errorf("image: decode: %w", err)
	}

	m, err := FromStdImage(img)
	if err != nil {
		return nil, FormatUnknown, err
	}
	return m, FormatFromName(name), nil
}

// Save writes m to path, choosing the encoder from the file extension.
func Save(path string, m *Image) error {
	format := FormatFromPath(path)
	if !format.CanEncode() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(f, m, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes m in the given format. Samples are rounded and clamped to
// [0, 255] here; the smoothing core never clamps.
func Encode(w io.Writer, m *Image, format Format) error {
	if err := m.Validate(); err != nil {
		return err
	}

	img := m.ToStdImage()

	var err error
	switch format {
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// FromStdImage converts a standard library image into an Image holding
// 8-bit samples (0-255) per channel in R, G, B order.
func FromStdImage(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	m, err := NewImage(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for the decoders' common output types.
	switch src := img.(type) {
	case *image.NRGBA:
		for y := range m.Height {
			row := src.Pix[y*src.Stride:]
			for x := range m.Width {
				off := (y*m.Width + x) * Channels
				m.Pix[off] = float64(row[x*4])
				m.Pix[off+1] = float64(row[x*4+1])
				m.Pix[off+2] = float64(row[x*4+2])
			}
		}
		return m, nil
	case *image.Gray:
		for y := range m.Height {
			row := src.Pix[y*src.Stride:]
			for x := range m.Width {
				v := float64(row[x])
				off := (y*m.Width + x) * Channels
				m.Pix[off] = v
				m.Pix[off+1] = v
				m.Pix[off+2] = v
			}
		}
		return m, nil
	}

	for y := range m.Height {
		for x := range m.Width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			off := (y*m.Width + x) * Channels
			m.Pix[off] = float64(c.R)
			m.Pix[off+1] = float64(c.G)
			m.Pix[off+2] = float64(c.B)
		}
	}
	return m, nil
}

// ToStdImage converts the Image into an opaque *image.NRGBA, rounding and
// clamping every sample to [0, 255].
func (m *Image) ToStdImage() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := range m.Height {
		row := dst.Pix[y*dst.Stride:]
		for x := range m.Width {
			off := (y*m.Width + x) * Channels
			row[x*4] = ClampUint8(m.Pix[off])
			row[x*4+1] = ClampUint8(m.Pix[off+1])
			row[x*4+2] = ClampUint8(m.Pix[off+2])
			row[x*4+3] = 255
		}
	}
	return dst
}

// ClampUint8 rounds v to the nearest integer and clamps it to [0, 255].
// NaN maps to 0.
func ClampUint8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
