// Package kernel builds normalized convolution kernels for use with the
// conv package.
//
// All builders return flat row-major coefficient tables with odd extents,
// normalized to unit sum (except Ricker1D, whose continuous form integrates
// to zero). Use the conv package's shape slices to describe them, e.g. a
// Gaussian2D of size 5 has shape []int{5, 5}.
package kernel

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by kernel builders.
var (
	ErrInvalidSize   = errors.New("kernel: size must be positive")
	ErrEvenSize      = errors.New("kernel: size must be odd")
	ErrInvalidStdDev = errors.New("kernel: stddev must be positive")
	ErrZeroSum       = errors.New("kernel: cannot normalize zero-sum kernel")
)

// Sum returns the sum of all kernel coefficients.
func Sum(k []float64) float64 {
	s := 0.0
	for _, v := range k {
		s += v
	}
	return s
}

// Normalize scales k in place to unit sum. Returns ErrZeroSum if the
// coefficients sum to exactly zero.
func Normalize(k []float64) error {
	s := Sum(k)
	if s == 0 {
		return ErrZeroSum
	}
	vecmath.ScaleBlock(k, k, 1/s)
	return nil
}

// Validate reports whether shape describes a usable kernel: every extent
// positive and odd, so a symmetric half-width is well defined.
func Validate(shape []int) error {
	for _, s := range shape {
		if s < 1 {
			return ErrInvalidSize
		}
		if s%2 == 0 {
			return ErrEvenSize
		}
	}
	return nil
}

func validateSize(size int) error {
	if size < 1 {
		return ErrInvalidSize
	}
	if size%2 == 0 {
		return ErrEvenSize
	}
	return nil
}

// Box1D returns a normalized uniform kernel of the given odd width.
func Box1D(width int) ([]float64, error) {
	if err := validateSize(width); err != nil {
		return nil, err
	}
	k := make([]float64, width)
	v := 1 / float64(width)
	for i := range k {
		k[i] = v
	}
	return k, nil
}

// Box3D returns a normalized uniform cubic kernel of the given odd width,
// flat with shape [width, width, width].
func Box3D(width int) ([]float64, error) {
	if err := validateSize(width); err != nil {
		return nil, err
	}
	n := width * width * width
	k := make([]float64, n)
	v := 1 / float64(n)
	for i := range k {
		k[i] = v
	}
	return k, nil
}

// Tophat2D returns a normalized circular (disk) kernel of the given radius,
// flat with shape [2*radius+1, 2*radius+1].
func Tophat2D(radius int) ([]float64, error) {
	if radius < 1 {
		return nil, ErrInvalidSize
	}
	size := 2*radius + 1
	k := make([]float64, size*size)
	r2 := radius * radius
	for i := 0; i < size; i++ {
		di := i - radius
		for j := 0; j < size; j++ {
			dj := j - radius
			if di*di+dj*dj <= r2 {
				k[i*size+j] = 1
			}
		}
	}
	if err := Normalize(k); err != nil {
		return nil, err
	}
	return k, nil
}

// Gaussian1D returns a normalized sampled Gaussian of the given standard
// deviation (in samples) over an odd number of taps.
func Gaussian1D(stddev float64, size int) ([]float64, error) {
	if stddev <= 0 {
		return nil, ErrInvalidStdDev
	}
	if err := validateSize(size); err != nil {
		return nil, err
	}

	k := make([]float64, size)
	half := size / 2
	inv2s2 := 1 / (2 * stddev * stddev)
	for i := range k {
		d := float64(i - half)
		k[i] = math.Exp(-d * d * inv2s2)
	}
	if err := Normalize(k); err != nil {
		return nil, err
	}
	return k, nil
}

// Gaussian2D returns a normalized sampled 2D Gaussian, flat with shape
// [size, size]. Built as the separable product of the 1D row; separability
// is used only here at build time, the conv package always applies the
// full window.
func Gaussian2D(stddev float64, size int) ([]float64, error) {
	row, err := Gaussian1D(stddev, size)
	if err != nil {
		return nil, err
	}

	k := make([]float64, size*size)
	for i := 0; i < size; i++ {
		vecmath.ScaleBlock(k[i*size:(i+1)*size], row, row[i])
	}
	// Rows are unit-sum, so the product is already normalized up to
	// rounding; renormalize to make the unit sum exact.
	if err := Normalize(k); err != nil {
		return nil, err
	}
	return k, nil
}

// Gaussian3D returns a normalized sampled 3D Gaussian, flat with shape
// [size, size, size].
func Gaussian3D(stddev float64, size int) ([]float64, error) {
	row, err := Gaussian1D(stddev, size)
	if err != nil {
		return nil, err
	}

	k := make([]float64, size*size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			base := (i*size + j) * size
			vecmath.ScaleBlock(k[base:base+size], row, row[i]*row[j])
		}
	}
	if err := Normalize(k); err != nil {
		return nil, err
	}
	return k, nil
}

// Ricker1D returns a sampled Ricker ("Mexican hat") wavelet of the given
// width parameter over an odd number of taps. The continuous wavelet
// integrates to zero, so the result is not normalized; the discrete sum is
// close to, but not exactly, zero.
func Ricker1D(stddev float64, size int) ([]float64, error) {
	if stddev <= 0 {
		return nil, ErrInvalidStdDev
	}
	if err := validateSize(size); err != nil {
		return nil, err
	}

	k := make([]float64, size)
	half := size / 2
	s2 := stddev * stddev
	amp := 2 / (math.Sqrt(3*stddev) * math.Pow(math.Pi, 0.25))
	for i := range k {
		d := float64(i - half)
		x2 := d * d / s2
		k[i] = amp * (1 - x2) * math.Exp(-x2/2)
	}
	return k, nil
}
