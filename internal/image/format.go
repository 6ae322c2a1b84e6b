package image

import (
	"path/filepath"
	"strings"
)

// Format identifies an image file encoding.
type Format uint8

const (
	// FormatUnknown is returned when a format cannot be determined.
	FormatUnknown Format = iota

	// FormatBMP is Windows bitmap, the format of the reference test images.
	FormatBMP

	// FormatPNG is lossless PNG.
	FormatPNG

	// FormatJPEG is baseline JPEG.
	FormatJPEG

	// FormatTIFF is TIFF, written deflate-compressed.
	FormatTIFF

	// FormatWebP is WebP. It can be decoded but not encoded.
	FormatWebP

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a file format.
type FormatInfo struct {
	// Name is the lowercase format name.
	Name string

	// Extensions lists the file extensions, leading dot included.
	Extensions []string

	// CanEncode indicates if the format can be written.
	CanEncode bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatUnknown: {Name: "unknown"},
	FormatBMP:     {Name: "bmp", Extensions: []string{".bmp"}, CanEncode: true},
	FormatPNG:     {Name: "png", Extensions: []string{".png"}, CanEncode: true},
	FormatJPEG:    {Name: "jpeg", Extensions: []string{".jpg", ".jpeg"}, CanEncode: true},
	FormatTIFF:    {Name: "tiff", Extensions: []string{".tif", ".tiff"}, CanEncode: true},
	FormatWebP:    {Name: "webp", Extensions: []string{".webp"}},
}

// Info returns the metadata for the format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return formatInfoTable[FormatUnknown]
	}
	return formatInfoTable[f]
}

// String returns the lowercase format name.
func (f Format) String() string {
	return f.Info().Name
}

// CanEncode reports whether images can be written in this format.
func (f Format) CanEncode() bool {
	return f.Info().CanEncode
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for f := FormatBMP; f < formatCount; f++ {
		for _, e := range formatInfoTable[f].Extensions {
			if e == ext {
				return f
			}
		}
	}
	return FormatUnknown
}

// FormatFromName maps a decoder name as reported by image.Decode to a Format.
func FormatFromName(name string) Format {
	for f := FormatBMP; f < formatCount; f++ {
		if formatInfoTable[f].Name == name {
			return f
		}
	}
	return FormatUnknown
}
