package gradsmooth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ChannelReport summarises how one channel changed.
type ChannelReport struct {
	// MeanAbsChange is the mean absolute sample difference.
	MeanAbsChange float64

	// MaxAbsChange is the largest absolute sample difference.
	MaxAbsChange float64

	// Changed is the number of samples that differ.
	Changed int
}

// Report summarises the difference between an image and its smoothed form.
type Report struct {
	Width    int
	Height   int
	Channels [Channels]ChannelReport
}

// Changed returns the number of changed samples across all channels.
func (r *Report) Changed() int {
	n := 0
	for _, c := range r.Channels {
		n += c.Changed
	}
	return n
}

// Compare reports per-channel differences between before and after, which
// must have the same dimensions.
func Compare(before, after *Image) (*Report, error) {
	if err := before.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if err := after.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if before.Width != after.Width || before.Height != after.Height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrShapeMismatch, before.Width, before.Height, after.Width, after.Height)
	}

	r := &Report{Width: before.Width, Height: before.Height}
	n := float64(before.Width * before.Height)
	diff := make([]float64, before.Width*before.Height)

	for c := range Channels {
		a := before.Channel(c).Pix
		b := after.Channel(c).Pix

		floats.SubTo(diff, b, a)
		r.Channels[c] = ChannelReport{
			MeanAbsChange: floats.Norm(diff, 1) / n,
			MaxAbsChange:  floats.Norm(diff, math.Inf(1)),
			Changed:       floats.Count(func(v float64) bool { return v != 0 }, diff),
		}
	}
	return r, nil
}
