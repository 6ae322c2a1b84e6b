package gradient

import (
	"fmt"
	"math"

	"github.com/gogpu/gradsmooth/internal/image"
)

// Stats is the per-channel statistics aggregate: gradient magnitude and
// direction for every pixel. Both slices share the index space of the plane
// the statistics describe.
type Stats struct {
	Width     int
	Height    int
	Magnitude []float64
	Angle     []float64
}

// NewStats creates zero statistics: every pixel flat, every angle 0.
func NewStats(width, height int) *Stats {
	n := width * height
	return &Stats{
		Width:     width,
		Height:    height,
		Magnitude: make([]float64, n),
		Angle:     make([]float64, n),
	}
}

// Magnitude returns the Euclidean norm of (dx, dy). It is exactly 0 for the
// zero vector.
func Magnitude(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// Angle returns the direction of (dx, dy) in radians, atan2(dy, dx), in the
// range (-pi, pi]. The zero vector, and any input whose arctangent is NaN,
// map to exactly 0.
func Angle(dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	a := math.Atan2(dy, dx)
	if math.IsNaN(a) {
		return 0
	}
	return a
}

// FromField derives statistics from a gradient field. Only interior pixels
// are evaluated; border pixels keep magnitude 0 and angle 0.
func FromField(f *Field) *Stats {
	s := NewStats(f.Width, f.Height)
	w := f.Width
	for y := 1; y < f.Height-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			dx, dy := f.DX[i], f.DY[i]
			s.Magnitude[i] = Magnitude(dx, dy)
			s.Angle[i] = Angle(dx, dy)
		}
	}
	return s
}

// Analyze computes the gradient field of p and derives its statistics.
func Analyze(p *image.Plane) *Stats {
	return FromField(Compute(p))
}

// At returns the magnitude and angle at (x, y).
func (s *Stats) At(x, y int) (magnitude, angle float64) {
	i := y*s.Width + x
	return s.Magnitude[i], s.Angle[i]
}

// Flat reports whether (x, y) has zero gradient magnitude. Flat pixels
// contribute nothing to the anisotropic average, not even to their own.
func (s *Stats) Flat(x, y int) bool {
	return s.Magnitude[y*s.Width+x] == 0
}

// Check verifies that the statistics cover a width x height plane.
func (s *Stats) Check(width, height int) error {
	if s == nil {
		return fmt.Errorf("%w: nil statistics", ErrShapeMismatch)
	}
	n := width * height
	if s.Width != width || s.Height != height || len(s.Magnitude) != n || len(s.Angle) != n {
		return fmt.Errorf("%w: statistics are %dx%d (%d/%d samples), plane is %dx%d",
			ErrShapeMismatch, s.Width, s.Height, len(s.Magnitude), len(s.Angle), width, height)
	}
	return nil
}

// FlatCount returns the number of zero-magnitude pixels.
func (s *Stats) FlatCount() int {
	n := 0
	for _, m := range s.Magnitude {
		if m == 0 {
			n++
		}
	}
	return n
}
