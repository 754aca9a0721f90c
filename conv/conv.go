package conv

import (
	"errors"
	"fmt"
)

// Errors returned by the validated entry points.
var (
	ErrEmptyInput      = errors.New("conv: empty input")
	ErrEmptyKernel     = errors.New("conv: empty kernel")
	ErrShapeMismatch   = errors.New("conv: shape mismatch")
	ErrUnsupportedRank = errors.New("conv: unsupported rank")
	ErrEvenKernel      = errors.New("conv: kernel extent must be odd")
	ErrKernelTooLarge  = errors.New("conv: kernel too large for image")
)

// Options controls convolution behavior.
type Options struct {
	// NaNInterpolate excludes NaN samples from each window and renormalizes
	// the kernel over the remaining support. Requires a normalized kernel
	// for the no-NaN case to reduce to plain convolution.
	NaNInterpolate bool

	// Padded selects trimmed output indexing: the result holds only the
	// fully-computed interior, with extent n - 2*(nk/2) per dimension.
	// When false the result has the image's extents and border cells are
	// left untouched.
	Padded bool

	// Threads is the maximum number of worker goroutines for the outer
	// spatial loop. Values <= 1 run sequentially.
	Threads int
}

// DefaultOptions returns sequential, unpadded, non-interpolating settings.
func DefaultOptions() Options {
	return Options{
		NaNInterpolate: false,
		Padded:         false,
		Threads:        1,
	}
}

// OutputShape returns the result extents for the given image and kernel
// shapes under the chosen indexing mode.
func OutputShape(imageShape, kernelShape []int, padded bool) []int {
	out := make([]int, len(imageShape))
	for d := range imageShape {
		if padded && d < len(kernelShape) {
			out[d] = imageShape[d] - 2*(kernelShape[d]/2)
		} else {
			out[d] = imageShape[d]
		}
	}
	return out
}

// Convolve validates its inputs, allocates a result buffer of the shape
// reported by OutputShape, and performs direct convolution of image with
// kernel. Both buffers are flat row-major with the given per-dimension
// extents (rank 1 to 3).
//
// The result buffer is zero-initialized, so in unpadded mode the uncomputed
// border cells read as 0.
func Convolve(image []float64, imageShape []int, kernel []float64, kernelShape []int, opts Options) ([]float64, error) {
	if err := validate(image, imageShape, kernel, kernelShape); err != nil {
		return nil, err
	}

	outShape := OutputShape(imageShape, kernelShape, opts.Padded)
	result := make([]float64, product(outShape))

	ConvolveND(result, image, imageShape, kernel, kernelShape,
		opts.NaNInterpolate, opts.Padded, opts.Threads)
	return result, nil
}

// ConvolveTo is like Convolve but writes into a pre-allocated result buffer,
// which must have exactly the length implied by OutputShape. In unpadded
// mode the border cells of result are preserved as-is, so callers may
// pre-fill them with a value of their choosing.
func ConvolveTo(result, image []float64, imageShape []int, kernel []float64, kernelShape []int, opts Options) error {
	if err := validate(image, imageShape, kernel, kernelShape); err != nil {
		return err
	}

	want := product(OutputShape(imageShape, kernelShape, opts.Padded))
	if len(result) != want {
		return fmt.Errorf("%w: result length %d, want %d", ErrShapeMismatch, len(result), want)
	}

	ConvolveND(result, image, imageShape, kernel, kernelShape,
		opts.NaNInterpolate, opts.Padded, opts.Threads)
	return nil
}

func validate(image []float64, imageShape []int, kernel []float64, kernelShape []int) error {
	if len(image) == 0 {
		return ErrEmptyInput
	}
	if len(kernel) == 0 {
		return ErrEmptyKernel
	}

	rank := len(imageShape)
	if rank < 1 || rank > 3 {
		return fmt.Errorf("%w: rank %d", ErrUnsupportedRank, rank)
	}
	if len(kernelShape) != rank {
		return fmt.Errorf("%w: image rank %d, kernel rank %d", ErrShapeMismatch, rank, len(kernelShape))
	}

	if n := product(imageShape); n != len(image) {
		return fmt.Errorf("%w: image shape %v implies %d samples, buffer has %d", ErrShapeMismatch, imageShape, n, len(image))
	}
	if n := product(kernelShape); n != len(kernel) {
		return fmt.Errorf("%w: kernel shape %v implies %d samples, buffer has %d", ErrShapeMismatch, kernelShape, n, len(kernel))
	}

	for d := 0; d < rank; d++ {
		if kernelShape[d] < 1 || kernelShape[d]%2 == 0 {
			return fmt.Errorf("%w: dimension %d has extent %d", ErrEvenKernel, d, kernelShape[d])
		}
		if imageShape[d] <= 2*(kernelShape[d]/2) {
			return fmt.Errorf("%w: dimension %d: image extent %d, kernel extent %d", ErrKernelTooLarge, d, imageShape[d], kernelShape[d])
		}
	}
	return nil
}

func product(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}
