package image

import "fmt"

// Channels is the number of interleaved channels in an Image.
const Channels = 3

// Image is a three-channel raster of float64 samples, interleaved row-major:
// channel c of (x, y) lives at Pix[(y*Width+x)*Channels+c]. Channel order is
// whatever the producer used; the smoothing pipeline treats channels alike.
type Image struct {
	Width  int
	Height int
	Pix    []float64
}

// NewImage creates a zeroed image.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*Channels),
	}, nil
}

// Validate reports whether the image is well-formed.
func (m *Image) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidDimensions)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, m.Width, m.Height)
	}
	if want := m.Width * m.Height * Channels; len(m.Pix) != want {
		return fmt.Errorf("%w: have %d, want %d", ErrDataSize, len(m.Pix), want)
	}
	return nil
}

// At returns channel c of (x, y). Out of range arguments return 0.
func (m *Image) At(x, y, c int) float64 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height || c < 0 || c >= Channels {
		return 0
	}
	return m.Pix[(y*m.Width+x)*Channels+c]
}

// Set stores v in channel c of (x, y). Out of range arguments are ignored.
func (m *Image) Set(x, y, c int, v float64) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height || c < 0 || c >= Channels {
		return
	}
	m.Pix[(y*m.Width+x)*Channels+c] = v
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	pix := make([]float64, len(m.Pix))
	copy(pix, m.Pix)
	return &Image{Width: m.Width, Height: m.Height, Pix: pix}
}

// Channel copies channel c into a new Plane.
func (m *Image) Channel(c int) *Plane {
	p := &Plane{Width: m.Width, Height: m.Height, Pix: make([]float64, m.Width*m.Height)}
	for i := range p.Pix {
		p.Pix[i] = m.Pix[i*Channels+c]
	}
	return p
}

// SetChannel copies p into channel c. p must have the image's dimensions.
func (m *Image) SetChannel(c int, p *Plane) {
	for i, v := range p.Pix {
		m.Pix[i*Channels+c] = v
	}
}

// Split copies the image into one Plane per channel.
func (m *Image) Split() [Channels]*Plane {
	var planes [Channels]*Plane
	for c := range Channels {
		planes[c] = m.Channel(c)
	}
	return planes
}

// Merge interleaves planes into a new Image. All planes must share the
// dimensions of planes[0].
func Merge(planes [Channels]*Plane) (*Image, error) {
	first := planes[0]
	if err := first.Validate(); err != nil {
		return nil, err
	}
	for c := 1; c < Channels; c++ {
		if err := planes[c].Validate(); err != nil {
			return nil, err
		}
		if !first.SameShape(planes[c]) {
			return nil, fmt.Errorf("%w: channel %d is %dx%d, channel 0 is %dx%d",
				ErrDataSize, c, planes[c].Width, planes[c].Height, first.Width, first.Height)
		}
	}

	m := &Image{
		Width:  first.Width,
		Height: first.Height,
		Pix:    make([]float64, first.Width*first.Height*Channels),
	}
	for c, p := range planes {
		m.SetChannel(c, p)
	}
	return m, nil
}
