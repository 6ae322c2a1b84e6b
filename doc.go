// Package gradsmooth implements an edge-preserving smoothing filter based on
// gradient analysis.
//
// # Overview
//
// Each pixel is replaced by a weighted mean of its k x k neighborhood in
// which neighbors count only if their gradient has the same orientation as
// the center's. Noise is averaged away along edges while the contrast across
// an edge survives, unlike an isotropic blur.
//
// # Quick Start
//
//	import "github.com/gogpu/gradsmooth"
//
//	img, _ := gradsmooth.FromSamples(width, height, rgbBytes) // H x W x 3
//	out, err := gradsmooth.Smooth(img, 3, gradsmooth.WithPasses(2))
//	if err != nil {
//	    return err
//	}
//
// # Algorithm
//
// For every channel independently:
//
//  1. Gradient: on interior pixels, dx = p[y][x-1] - p[y][x+1] and
//     dy = p[y+1][x] - p[y-1][x]. Border pixels keep the zero vector.
//  2. Statistics: magnitude |(dx, dy)| and angle atan2(dy, dx); the zero
//     vector has angle 0.
//  3. Averaging: over the window clipped to the image, neighbors with zero
//     magnitude are skipped (the center too). The center weighs 1; any other
//     neighbor weighs (cos(2*(angle_center - angle_n)) + 1) / magnitude_n.
//     The result is rounded half to even. A window with no weight leaves the
//     pixel unchanged.
//
// With more than one pass, every pass after the first recomputes the
// statistics from the previous pass's output. Precomputed fields supplied
// with WithFields are used by the first pass only.
//
// # Architecture
//
// The module is organized into:
//   - Public API: Smooth, SmoothPlane, Analyze, Compare, options
//   - internal/gradient: gradient field and statistics
//   - internal/filter: the anisotropic averager
//   - internal/parallel: row-band worker pool
//   - internal/image: float64 buffers and file codecs
//   - cmd/gradsmooth: command-line tool
//
// # Logging
//
// The package is silent by default. See SetLogger.
package gradsmooth
