package filter

import (
	"math"
	"testing"
)

func TestIsValidKernelSize(t *testing.T) {
	tests := []struct {
		size int
		want bool
	}{
		{-3, false},
		{-1, false},
		{0, false},
		{1, true},
		{2, false},
		{3, true},
		{4, false},
		{7, true},
		{31, true},
	}

	for _, tt := range tests {
		if got := IsValidKernelSize(tt.size); got != tt.want {
			t.Errorf("IsValidKernelSize(%d) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestKernelCenter(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 0},
		{3, 1},
		{5, 2},
		{7, 3},
	}

	for _, tt := range tests {
		if got := KernelCenter(tt.size); got != tt.want {
			t.Errorf("KernelCenter(%d) = %d, want %d", tt.size, got, tt.want)
		}
		if got := KernelArea(tt.size); got != tt.size*tt.size {
			t.Errorf("KernelArea(%d) = %d, want %d", tt.size, got, tt.size*tt.size)
		}
	}
}

func TestOrientationWeight(t *testing.T) {
	tests := []struct {
		name            string
		center, angle   float64
		magnitude, want float64
	}{
		{"parallel", 0.5, 0.5, 4, 0.5},
		{"anti-parallel", 0, math.Pi, 2, 1},
		{"perpendicular", 0, math.Pi / 2, 1, 0},
		{"diagonal", 0, math.Pi / 4, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrientationWeight(tt.center, tt.angle, tt.magnitude)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("OrientationWeight(%v, %v, %v) = %v, want %v",
					tt.center, tt.angle, tt.magnitude, got, tt.want)
			}
		})
	}
}
