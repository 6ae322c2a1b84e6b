package image

import (
	"errors"
	"testing"
)

func TestNewPlane(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"valid", 4, 3, false},
		{"single pixel", 1, 1, false},
		{"zero width", 0, 3, true},
		{"zero height", 3, 0, true},
		{"negative", -1, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlane(tt.width, tt.height)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Errorf("NewPlane() error = %v, want ErrInvalidDimensions", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPlane() error = %v", err)
			}
			if len(p.Pix) != tt.width*tt.height {
				t.Errorf("len(Pix) = %d, want %d", len(p.Pix), tt.width*tt.height)
			}
		})
	}
}

func TestPlaneFromRaw(t *testing.T) {
	pix := []float64{1, 2, 3, 4, 5, 6}

	p, err := PlaneFromRaw(pix, 3, 2)
	if err != nil {
		t.Fatalf("PlaneFromRaw() error = %v", err)
	}
	if got := p.At(2, 1); got != 6 {
		t.Errorf("At(2,1) = %v, want 6", got)
	}

	// No copy is made.
	pix[0] = 9
	if got := p.At(0, 0); got != 9 {
		t.Errorf("At(0,0) = %v, want 9 (shared storage)", got)
	}

	if _, err := PlaneFromRaw(pix, 4, 2); !errors.Is(err, ErrDataSize) {
		t.Errorf("PlaneFromRaw(4x2) error = %v, want ErrDataSize", err)
	}
	if _, err := PlaneFromRaw(pix, 0, 6); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("PlaneFromRaw(0x6) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestPlaneValidate(t *testing.T) {
	var nilPlane *Plane
	if err := nilPlane.Validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("nil Validate() = %v, want ErrInvalidDimensions", err)
	}

	p := &Plane{Width: 2, Height: 2, Pix: make([]float64, 3)}
	if err := p.Validate(); !errors.Is(err, ErrDataSize) {
		t.Errorf("short Validate() = %v, want ErrDataSize", err)
	}

	p.Pix = append(p.Pix, 0)
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestPlaneAccessors(t *testing.T) {
	p, _ := NewPlane(3, 3)
	p.Set(1, 2, 7)
	p.Set(-1, 0, 5) // ignored
	p.Set(3, 0, 5)  // ignored

	if got := p.At(1, 2); got != 7 {
		t.Errorf("At(1,2) = %v, want 7", got)
	}
	if got := p.At(5, 5); got != 0 {
		t.Errorf("At(5,5) = %v, want 0", got)
	}
	if got := p.Index(1, 2); got != 7 {
		t.Errorf("Index(1,2) = %d, want 7", got)
	}
	if row := p.Row(2); len(row) != 3 || row[1] != 7 {
		t.Errorf("Row(2) = %v, want [0 7 0]", row)
	}
	if row := p.Row(3); row != nil {
		t.Errorf("Row(3) = %v, want nil", row)
	}
}

func TestPlaneInterior(t *testing.T) {
	p, _ := NewPlane(4, 3)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, false},
		{1, 1, true},
		{2, 1, true},
		{3, 1, false},
		{1, 0, false},
		{1, 2, false},
	}
	for _, tt := range tests {
		if got := p.Interior(tt.x, tt.y); got != tt.want {
			t.Errorf("Interior(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	tiny, _ := NewPlane(2, 5)
	for y := range 5 {
		for x := range 2 {
			if tiny.Interior(x, y) {
				t.Errorf("2x5 plane has interior pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestPlaneWindow(t *testing.T) {
	p, _ := NewPlane(5, 4)

	tests := []struct {
		name           string
		x, y, size     int
		y0, y1, x0, x1 int
	}{
		{"center", 2, 2, 3, 1, 4, 1, 4},
		{"corner", 0, 0, 3, 0, 2, 0, 2},
		{"far corner", 4, 3, 3, 2, 4, 3, 5},
		{"size one", 2, 1, 1, 1, 2, 2, 3},
		{"larger than plane", 2, 2, 11, 0, 4, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y0, y1, x0, x1 := p.Window(tt.x, tt.y, tt.size)
			if y0 != tt.y0 || y1 != tt.y1 || x0 != tt.x0 || x1 != tt.x1 {
				t.Errorf("Window() = [%d,%d)x[%d,%d), want [%d,%d)x[%d,%d)",
					y0, y1, x0, x1, tt.y0, tt.y1, tt.x0, tt.x1)
			}
		})
	}
}

func TestPlaneCloneAndShape(t *testing.T) {
	p, _ := NewPlane(2, 2)
	p.Set(0, 0, 3)

	q := p.Clone()
	q.Set(0, 0, 4)

	if p.At(0, 0) != 3 {
		t.Error("Clone shares storage with the original")
	}
	if !p.SameShape(q) {
		t.Error("SameShape(clone) = false")
	}
	r, _ := NewPlane(2, 3)
	if p.SameShape(r) || p.SameShape(nil) {
		t.Error("SameShape reported a match for a different shape")
	}
}
