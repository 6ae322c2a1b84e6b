package gradsmooth

import "errors"

// Errors returned by Smooth and SmoothPlane. They are wrapped with details;
// test with errors.Is.
var (
	// ErrInvalidParameter is returned for a kernel size that is not a
	// positive odd integer, a pass count below 1 or a negative worker count.
	ErrInvalidParameter = errors.New("gradsmooth: invalid parameter")

	// ErrInvalidImage is returned for a nil image or one whose sample slice
	// does not match its dimensions.
	ErrInvalidImage = errors.New("gradsmooth: invalid image")

	// ErrShapeMismatch is returned when supplied first-pass fields do not
	// cover the image.
	ErrShapeMismatch = errors.New("gradsmooth: shape mismatch")
)
