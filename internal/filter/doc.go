// Package filter implements the anisotropic averaging kernel of gradsmooth.
//
// For every pixel the averager scans a k x k window clipped to the plane and
// forms a weighted mean of the neighbors whose gradient orientation matches
// the center's. Neighbors with zero gradient magnitude are skipped, the center
// included, so a window made only of flat pixels leaves the pixel unchanged.
//
// The averager reads its source plane and statistics and writes disjoint rows
// of its destination, so row bands can be filtered concurrently. Results are
// bit-identical to a sequential scan: every pixel accumulates its window in
// the same row-major order and rounds once.
package filter
