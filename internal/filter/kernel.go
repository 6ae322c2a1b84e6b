package filter

import "math"

// IsValidKernelSize reports whether size is a positive odd integer, the only
// window sizes that have a center pixel.
func IsValidKernelSize(size int) bool {
	return size > 0 && size%2 == 1
}

// KernelCenter returns the center index of a kernel of the given size, which
// is also the window's reach on each side of the center.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}

// KernelArea returns the number of samples in an unclipped window.
func KernelArea(kernelSize int) int {
	return kernelSize * kernelSize
}

// OrientationWeight returns the weight of a non-center neighbor:
//
//	(cos(2*(centerAngle-neighborAngle)) + 1) / neighborMagnitude
//
// Doubling the angle difference makes a gradient and its opposite, the same
// edge orientation, weigh alike. The weight peaks at 2/magnitude for parallel
// gradients and vanishes for perpendicular ones. neighborMagnitude must be
// non-zero.
func OrientationWeight(centerAngle, neighborAngle, neighborMagnitude float64) float64 {
	beta := 2 * (centerAngle - neighborAngle)
	return (math.Cos(beta) + 1) * (1 / neighborMagnitude)
}
