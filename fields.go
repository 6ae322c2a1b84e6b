package gradsmooth

import (
	"fmt"

	"github.com/gogpu/gradsmooth/internal/gradient"
	"github.com/gogpu/gradsmooth/internal/image"
)

// ChannelFields is the precomputed gradient data of one channel. Either
// member may be nil: with Stats set, Gradient is ignored; with only Gradient
// set, the statistics are derived from it; with neither, the channel is
// analysed from its pixels.
type ChannelFields struct {
	Gradient *GradientField
	Stats    *Stats
}

// Fields holds first-pass gradient data for each channel of an image.
type Fields struct {
	Channels [Channels]ChannelFields
}

// Analyze computes the gradient field and statistics of every channel of m.
// The result can be passed to WithFields when the same image is smoothed
// repeatedly, e.g. with different kernel sizes.
func Analyze(m *Image) (*Fields, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	f := &Fields{}
	for c := range Channels {
		f.Channels[c] = AnalyzePlane(m.Channel(c))
	}
	return f, nil
}

// AnalyzePlane computes the gradient field and statistics of one plane.
func AnalyzePlane(p *Plane) ChannelFields {
	field := gradient.Compute(p)
	return ChannelFields{
		Gradient: field,
		Stats:    gradient.FromField(field),
	}
}

// seed resolves the statistics the first pass should use, or nil when the
// channel must be analysed from pixels.
func (cf ChannelFields) seed(width, height int) (*Stats, error) {
	switch {
	case cf.Stats != nil:
		if err := cf.Stats.Check(width, height); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
		}
		return cf.Stats, nil
	case cf.Gradient != nil:
		if err := cf.Gradient.Check(width, height); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
		}
		return gradient.FromField(cf.Gradient), nil
	default:
		return nil, nil
	}
}

// passPlan yields the statistics for each pass over one channel.
//
// The seed, when present, is handed out exactly once, to the first pass,
// and dropped. Every later pass analyses the plane it is about to filter,
// which is the previous pass's output.
type passPlan struct {
	seed *Stats
	pass int
}

func newPassPlan(seed *Stats) *passPlan {
	return &passPlan{seed: seed}
}

// next returns the statistics for the upcoming pass over src and whether
// they came from the seed.
func (p *passPlan) next(src *image.Plane) (*Stats, bool) {
	p.pass++
	if seed := p.seed; seed != nil {
		p.seed = nil
		return seed, true
	}
	return gradient.Analyze(src), false
}
