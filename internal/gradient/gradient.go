// Package gradient computes the per-pixel gradient field of a single channel
// and the statistics the anisotropic averager consumes: gradient magnitude
// and gradient direction.
//
// Gradients are central differences defined only on interior pixels, those
// with 1 <= x <= Width-2 and 1 <= y <= Height-2. Border pixels keep the zero
// vector, zero magnitude and zero angle. The border is not reflected or
// clamped; it is simply treated as having no local structure.
package gradient

import (
	"errors"
	"fmt"

	"github.com/gogpu/gradsmooth/internal/image"
)

// ErrShapeMismatch is returned when a field or statistics aggregate does not
// cover the plane it is paired with.
var ErrShapeMismatch = errors.New("gradient: shape mismatch")

// Field is the gradient vector field of one channel. DX and DY share the
// index space of the plane the field was computed from.
type Field struct {
	Width  int
	Height int
	DX     []float64
	DY     []float64
}

// NewField creates a zero field, the correct value for every border pixel.
func NewField(width, height int) *Field {
	n := width * height
	return &Field{
		Width:  width,
		Height: height,
		DX:     make([]float64, n),
		DY:     make([]float64, n),
	}
}

// Compute returns the central-difference gradient of p:
//
//	dx = p[y][x-1] - p[y][x+1]
//	dy = p[y+1][x] - p[y-1][x]
//
// for interior pixels. Planes narrower or shorter than three samples have no
// interior and yield an all-zero field.
func Compute(p *image.Plane) *Field {
	f := NewField(p.Width, p.Height)
	w := p.Width
	for y := 1; y < p.Height-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			f.DX[i] = p.Pix[i-1] - p.Pix[i+1]
			f.DY[i] = p.Pix[i+w] - p.Pix[i-w]
		}
	}
	return f
}

// At returns the gradient vector at (x, y).
func (f *Field) At(x, y int) (dx, dy float64) {
	i := y*f.Width + x
	return f.DX[i], f.DY[i]
}

// Interior reports whether (x, y) is a pixel on which gradients are defined.
func (f *Field) Interior(x, y int) bool {
	return x > 0 && x < f.Width-1 && y > 0 && y < f.Height-1
}

// Check verifies that the field covers a width x height plane.
func (f *Field) Check(width, height int) error {
	if f == nil {
		return fmt.Errorf("%w: nil field", ErrShapeMismatch)
	}
	n := width * height
	if f.Width != width || f.Height != height || len(f.DX) != n || len(f.DY) != n {
		return fmt.Errorf("%w: field is %dx%d (%d/%d samples), plane is %dx%d",
			ErrShapeMismatch, f.Width, f.Height, len(f.DX), len(f.DY), width, height)
	}
	return nil
}
