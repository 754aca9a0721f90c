// Package conv provides direct (spatial-domain) N-dimensional convolution
// for dense float64 arrays of rank 1 to 3.
//
// The package has two layers:
//
//   - Convolve: a validated, allocating entry point that checks shapes,
//     allocates the result buffer, and returns errors for malformed input.
//   - ConvolveND / Convolve1D / Convolve2D / Convolve3D: raw kernels that
//     write into a caller-owned result buffer and trust their inputs.
//
// The raw kernels perform true convolution (kernel mirrored relative to the
// sliding window, not correlation) and never compute output cells whose
// window would extend past the image edge. Two output-indexing modes are
// supported via the padded flag:
//
//   - padded=true: the result buffer holds only the fully-computed interior,
//     with extent n - 2*(nk/2) per dimension and its origin at the first
//     valid image coordinate.
//   - padded=false: the result buffer has the image's extents and the border
//     region (within half a kernel width of any edge) is left untouched.
//
// With NaN interpolation enabled, NaN samples are excluded from both the
// weighted sum and the kernel weight total, renormalizing the kernel over
// the non-NaN support of each window. A window whose surviving weights sum
// to exactly zero falls back to the original input sample.
//
// # Usage
//
//	k, _ := kernel.Gaussian2D(1.5, 5)
//	opts := conv.DefaultOptions()
//	opts.NaNInterpolate = true
//	result, err := conv.Convolve(image, []int{ny, nx}, k, []int{5, 5}, opts)
//
// For repeated calls with caller-owned buffers, use the raw kernels directly:
//
//	conv.Convolve2D(result, image, nx, ny, k, nkx, nky, true, false, 4)
//
// # Preconditions
//
// The raw kernels require non-empty buffers and, per dimension, an image
// extent strictly greater than twice the kernel half-width. Violations
// panic when the package is built with the convdebug tag and silently
// return (result buffer unmodified) otherwise; callers are expected to have
// validated already, either themselves or through Convolve.
//
// # Concurrency
//
// Work is distributed over the outermost spatial index with dynamic chunk
// scheduling. Output cells derived from distinct outer indices never alias,
// so no synchronization is applied to the result buffer, and results are
// bit-identical for any thread count.
package conv
