package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gradsmooth/internal/gradient"
	"github.com/gogpu/gradsmooth/internal/image"
)

// Averager errors.
var (
	// ErrInvalidKernelSize is returned for kernel sizes that are not positive odd integers.
	ErrInvalidKernelSize = errors.New("filter: kernel size must be a positive odd integer")

	// ErrShapeMismatch is returned when the source, destination and statistics
	// do not share dimensions.
	ErrShapeMismatch = errors.New("filter: shape mismatch")
)

// Averager filters one plane with the anisotropic averaging kernel.
//
// The statistics normally describe src itself, but any statistics of the
// same shape are accepted. Averager never writes to src or stats.
//
// Thread safety: ApplyRows may be called concurrently for disjoint row
// ranges.
type Averager struct {
	src   *image.Plane
	stats *gradient.Stats
	dst   *image.Plane
	size  int
}

// NewAverager prepares a filter of src into dst. dst must not alias src.
func NewAverager(src *image.Plane, stats *gradient.Stats, kernelSize int, dst *image.Plane) (*Averager, error) {
	if !IsValidKernelSize(kernelSize) {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidKernelSize, kernelSize)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if !src.SameShape(dst) || len(dst.Pix) != len(src.Pix) {
		return nil, fmt.Errorf("%w: destination does not match %dx%d source", ErrShapeMismatch, src.Width, src.Height)
	}
	if err := stats.Check(src.Width, src.Height); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}

	return &Averager{
		src:   src,
		stats: stats,
		dst:   dst,
		size:  kernelSize,
	}, nil
}

// Average filters src with the given statistics into a new plane.
func Average(src *image.Plane, stats *gradient.Stats, kernelSize int) (*image.Plane, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	dst := &image.Plane{Width: src.Width, Height: src.Height, Pix: make([]float64, len(src.Pix))}

	a, err := NewAverager(src, stats, kernelSize, dst)
	if err != nil {
		return nil, err
	}
	a.Apply()
	return dst, nil
}

// Apply filters every row and returns the number of pixels copied unchanged
// because their whole window was flat.
func (a *Averager) Apply() int {
	return a.ApplyRows(0, a.src.Height)
}

// ApplyRows filters rows [y0, y1) and returns the number of pixels in that
// band copied unchanged because their whole window was flat.
func (a *Averager) ApplyRows(y0, y1 int) int {
	y0 = max(y0, 0)
	y1 = min(y1, a.src.Height)

	unchanged := 0
	w := a.src.Width
	for i := y0; i < y1; i++ {
		row := a.dst.Pix[i*w : (i+1)*w]
		for j := range row {
			v, ok := a.pixel(i, j)
			if !ok {
				unchanged++
			}
			row[j] = v
		}
	}
	return unchanged
}

// Dst returns the destination plane.
func (a *Averager) Dst() *image.Plane {
	return a.dst
}

// KernelSize returns the window size.
func (a *Averager) KernelSize() int {
	return a.size
}

// pixel computes output (i, j), row i and column j. ok is false when the
// window carried no weight and the source sample was copied.
func (a *Averager) pixel(i, j int) (v float64, ok bool) {
	src := a.src.Pix
	mag := a.stats.Magnitude
	ang := a.stats.Angle

	w := a.src.Width
	center := i*w + j
	centerAngle := ang[center]
	y0, y1, x0, x1 := a.src.Window(j, i, a.size)

	var result, sumWeights float64
	for s := y0; s < y1; s++ {
		for t := x0; t < x1; t++ {
			n := s*w + t

			// Flat pixels never contribute, the center included.
			m := mag[n]
			if m == 0 {
				continue
			}

			weight := 1.0
			if n != center {
				weight = OrientationWeight(centerAngle, ang[n], m)
			}

			result += weight * src[n]
			sumWeights += weight
		}
	}

	if sumWeights != 0 {
		return math.RoundToEven(result / sumWeights), true
	}
	return src[center], false
}
