package conv

import "github.com/cwbudde/algo-convolve/internal/checks"

// ConvolveND invokes the rank-specific kernel matching len(imageShape).
// It is a raw entry point: inputs are trusted (see package doc for the
// precondition policy) and there is no return value.
//
// Supported ranks are 1, 2 and 3. There is deliberately no general-rank
// fallback; rank-generic indexing would cost every supported rank its
// tight inner loop.
func ConvolveND(result, image []float64, imageShape []int, kernel []float64, kernelShape []int, nanInterpolate, padded bool, nThreads int) {
	if !checks.Ok(len(result) > 0 && len(image) > 0 && len(kernel) > 0, "conv: nil or empty buffer") {
		return
	}
	if !checks.Ok(len(imageShape) == len(kernelShape), "conv: image/kernel rank mismatch") {
		return
	}

	switch len(imageShape) {
	case 1:
		Convolve1D(result, image, imageShape[0],
			kernel, kernelShape[0],
			nanInterpolate, padded, nThreads)
	case 2:
		Convolve2D(result, image, imageShape[0], imageShape[1],
			kernel, kernelShape[0], kernelShape[1],
			nanInterpolate, padded, nThreads)
	case 3:
		Convolve3D(result, image, imageShape[0], imageShape[1], imageShape[2],
			kernel, kernelShape[0], kernelShape[1], kernelShape[2],
			nanInterpolate, padded, nThreads)
	default:
		checks.Ok(false, "conv: unsupported rank")
	}
}
