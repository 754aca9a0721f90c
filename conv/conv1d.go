package conv

import (
	"math"

	"github.com/cwbudde/algo-convolve/internal/checks"
	"github.com/cwbudde/algo-convolve/internal/parallel"
)

// Convolve1D convolves image (extent nx) with kernel (extent nkx, odd) and
// writes into result. Raw entry point: inputs are trusted.
//
// Output cells whose window would cross the image edge are never computed.
// With padded=true the result has extent nx-2*(nkx/2) and index 0
// corresponds to image index nkx/2; with padded=false the result has
// extent nx and its border cells are left untouched.
func Convolve1D(result, image []float64, nx int, kernel []float64, nkx int, nanInterpolate, padded bool, nThreads int) {
	if !checks.Ok(len(result) > 0 && len(image) > 0 && len(kernel) > 0, "conv: nil or empty buffer") {
		return
	}

	wkx := nkx / 2
	if !checks.Ok(nx > 2*wkx, "conv: kernel too large for image") {
		return
	}

	// The padded/unpadded distinction is only an index shift, resolved here
	// so the loops below are identical in both modes.
	shiftX := 0
	if padded {
		shiftX = wkx
	}

	parallel.For(nx-2*wkx, nThreads, func(outer int) {
		i := outer + wkx
		wkxPlusI := wkx + i

		var top, bot float64
		if nanInterpolate {
			for ii := i - wkx; ii <= wkxPlusI; ii++ {
				val := image[ii]
				if !math.IsNaN(val) {
					ker := kernel[wkxPlusI-ii]
					top += val * ker
					bot += ker
				}
			}
			if bot == 0 {
				// All surviving weights cancelled (or every sample was
				// NaN): carry the input sample forward rather than divide.
				result[i-shiftX] = image[i]
			} else {
				result[i-shiftX] = top / bot
			}
			return
		}

		for ii := i - wkx; ii <= wkxPlusI; ii++ {
			top += image[ii] * kernel[wkxPlusI-ii]
		}
		result[i-shiftX] = top
	})
}
