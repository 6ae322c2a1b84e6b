package gradsmooth

import (
	"fmt"

	"github.com/gogpu/gradsmooth/internal/gradient"
	"github.com/gogpu/gradsmooth/internal/image"
)

// Channels is the number of channels in an Image.
const Channels = image.Channels

// Image is a three-channel raster of float64 samples, interleaved row-major:
// channel c of (x, y) lives at Pix[(y*Width+x)*3+c].
type Image = image.Image

// Plane is a single-channel raster of float64 samples, row-major.
type Plane = image.Plane

// GradientField holds the central-difference gradient vector (DX, DY) of
// every pixel of one channel. Border pixels hold the zero vector.
type GradientField = gradient.Field

// Stats holds the gradient magnitude and direction of every pixel of one
// channel. Border and flat pixels have magnitude 0 and angle 0.
type Stats = gradient.Stats

// Sample is the set of numeric types an image can be built from. Samples are
// promoted to float64.
type Sample interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~float32 | ~float64
}

// NewImage creates a zeroed width x height image.
func NewImage(width, height int) (*Image, error) {
	m, err := image.NewImage(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return m, nil
}

// FromSamples builds an Image from interleaved H x W x 3 samples of any
// numeric type, e.g. the Pix of an 8-bit RGB buffer.
func FromSamples[T Sample](width, height int, samples []T) (*Image, error) {
	m, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	if len(samples) != len(m.Pix) {
		return nil, fmt.Errorf("%w: have %d samples, want %d for %dx%dx%d",
			ErrInvalidImage, len(samples), len(m.Pix), width, height, Channels)
	}
	for i, v := range samples {
		m.Pix[i] = float64(v)
	}
	return m, nil
}

// PlaneFromSamples builds a single-channel Plane from row-major samples.
func PlaneFromSamples[T Sample](width, height int, samples []T) (*Plane, error) {
	p, err := image.NewPlane(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if len(samples) != len(p.Pix) {
		return nil, fmt.Errorf("%w: have %d samples, want %d for %dx%d",
			ErrInvalidImage, len(samples), len(p.Pix), width, height)
	}
	for i, v := range samples {
		p.Pix[i] = float64(v)
	}
	return p, nil
}
