// Package image provides the dense float64 sample buffers used by gradsmooth
// and the codecs that move them to and from image files.
//
// A Plane holds one channel. An Image holds three interleaved channels in
// row-major order, the in-memory layout the smoothing pipeline consumes.
package image

import (
	"errors"
	"fmt"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataSize is returned when a sample slice does not match the dimensions.
	ErrDataSize = errors.New("image: sample count does not match dimensions")
)

// Plane is a single-channel raster of float64 samples.
// Sample (x, y) lives at Pix[y*Width+x].
type Plane struct {
	Width  int
	Height int
	Pix    []float64
}

// NewPlane creates a zeroed plane.
func NewPlane(width, height int) (*Plane, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Plane{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}, nil
}

// PlaneFromRaw wraps pix without copying. len(pix) must equal width*height.
func PlaneFromRaw(pix []float64, width, height int) (*Plane, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrDataSize, len(pix), width*height)
	}
	return &Plane{Width: width, Height: height, Pix: pix}, nil
}

// Validate reports whether the plane is well-formed.
func (p *Plane) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil plane", ErrInvalidDimensions)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}
	if len(p.Pix) != p.Width*p.Height {
		return fmt.Errorf("%w: have %d, want %d", ErrDataSize, len(p.Pix), p.Width*p.Height)
	}
	return nil
}

// Index returns the offset of (x, y) in Pix.
func (p *Plane) Index(x, y int) int {
	return y*p.Width + x
}

// At returns the sample at (x, y). Out of range coordinates return 0.
func (p *Plane) At(x, y int) float64 {
	if !p.InBounds(x, y) {
		return 0
	}
	return p.Pix[y*p.Width+x]
}

// Set stores v at (x, y). Out of range coordinates are ignored.
func (p *Plane) Set(x, y int, v float64) {
	if !p.InBounds(x, y) {
		return
	}
	p.Pix[y*p.Width+x] = v
}

// InBounds reports whether (x, y) addresses a sample of the plane.
func (p *Plane) InBounds(x, y int) bool {
	return x >= 0 && x < p.Width && y >= 0 && y < p.Height
}

// Interior reports whether (x, y) has all four axis neighbors inside the
// plane, i.e. 1 <= x <= Width-2 and 1 <= y <= Height-2.
func (p *Plane) Interior(x, y int) bool {
	return x > 0 && x < p.Width-1 && y > 0 && y < p.Height-1
}

// SameShape reports whether q has the same dimensions as p.
func (p *Plane) SameShape(q *Plane) bool {
	return q != nil && p.Width == q.Width && p.Height == q.Height
}

// Clone returns a deep copy of the plane.
func (p *Plane) Clone() *Plane {
	pix := make([]float64, len(p.Pix))
	copy(pix, p.Pix)
	return &Plane{Width: p.Width, Height: p.Height, Pix: pix}
}

// Row returns the samples of row y, or nil if y is out of range.
func (p *Plane) Row(y int) []float64 {
	if y < 0 || y >= p.Height {
		return nil
	}
	return p.Pix[y*p.Width : (y+1)*p.Width]
}

// Window returns the rows and columns of the size x size square centered on
// (x, y), clipped to the plane. The ranges are half-open.
func (p *Plane) Window(x, y, size int) (y0, y1, x0, x1 int) {
	half := size / 2
	y0 = max(y-half, 0)
	y1 = min(y+half+1, p.Height)
	x0 = max(x-half, 0)
	x1 = min(x+half+1, p.Width)
	return y0, y1, x0, x1
}
