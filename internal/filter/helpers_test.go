package filter

import (
	"github.com/gogpu/gradsmooth/internal/gradient"
	"github.com/gogpu/gradsmooth/internal/image"
)

// Test helper functions shared across filter tests.

// planeFromRows builds a plane from row slices of equal length.
func planeFromRows(rows [][]float64) *image.Plane {
	h := len(rows)
	w := len(rows[0])
	p, _ := image.NewPlane(w, h)
	for y, row := range rows {
		copy(p.Pix[y*w:], row)
	}
	return p
}

// filledPlane creates a plane with every sample set to v.
func filledPlane(w, h int, v float64) *image.Plane {
	p, _ := image.NewPlane(w, h)
	for i := range p.Pix {
		p.Pix[i] = v
	}
	return p
}

// noisePlane fills a plane with deterministic pseudo-random 8-bit values.
func noisePlane(w, h int, seed uint32) *image.Plane {
	p, _ := image.NewPlane(w, h)
	s := seed
	for i := range p.Pix {
		s = s*1664525 + 1013904223
		p.Pix[i] = float64(s >> 24)
	}
	return p
}

// mustAverage runs the averager with statistics derived from src.
func mustAverage(src *image.Plane, k int) *image.Plane {
	dst, err := Average(src, gradient.Analyze(src), k)
	if err != nil {
		panic(err)
	}
	return dst
}

// rowsOf returns the plane as row slices for readable failure messages.
func rowsOf(p *image.Plane) [][]float64 {
	rows := make([][]float64, p.Height)
	for y := range rows {
		rows[y] = p.Row(y)
	}
	return rows
}
