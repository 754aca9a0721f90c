package conv

import (
	"math"

	"github.com/cwbudde/algo-convolve/internal/checks"
	"github.com/cwbudde/algo-convolve/internal/parallel"
)

// Index2 returns the flat row-major index of coordinate (i, j) in an array
// with inner extent ny.
func Index2(i, j, ny int) int {
	return i*ny + j
}

// Convolve2D convolves image (extents nx, ny; row-major, ny innermost)
// with kernel (extents nkx, nky; both odd) and writes into result. Raw
// entry point: inputs are trusted.
//
// Indexing modes match Convolve1D, applied per dimension: padded results
// have extents nx-2*(nkx/2) by ny-2*(nky/2).
func Convolve2D(result, image []float64, nx, ny int, kernel []float64, nkx, nky int, nanInterpolate, padded bool, nThreads int) {
	if !checks.Ok(len(result) > 0 && len(image) > 0 && len(kernel) > 0, "conv: nil or empty buffer") {
		return
	}

	wkx := nkx / 2
	wky := nky / 2
	if !checks.Ok(nx > 2*wkx && ny > 2*wky, "conv: kernel too large for image") {
		return
	}

	// Result strides and index shifts, hoisted so the loops are mode-free.
	shiftX, shiftY := 0, 0
	rny := ny
	if padded {
		shiftX, shiftY = wkx, wky
		rny = ny - 2*wky
	}

	nyMinusWky := ny - wky

	parallel.For(nx-2*wkx, nThreads, func(outer int) {
		i := outer + wkx
		wkxPlusI := wkx + i

		for j := wky; j < nyMinusWky; j++ {
			wkyPlusJ := wky + j

			var top, bot float64
			if nanInterpolate {
				for ii := i - wkx; ii <= wkxPlusI; ii++ {
					kerRow := (wkxPlusI - ii) * nky
					imgRow := ii * ny
					for jj := j - wky; jj <= wkyPlusJ; jj++ {
						val := image[imgRow+jj]
						if !math.IsNaN(val) {
							ker := kernel[kerRow+wkyPlusJ-jj]
							top += val * ker
							bot += ker
						}
					}
				}
				idx := (i-shiftX)*rny + (j - shiftY)
				if bot == 0 {
					result[idx] = image[i*ny+j]
				} else {
					result[idx] = top / bot
				}
				continue
			}

			for ii := i - wkx; ii <= wkxPlusI; ii++ {
				kerRow := (wkxPlusI - ii) * nky
				imgRow := ii * ny
				for jj := j - wky; jj <= wkyPlusJ; jj++ {
					top += image[imgRow+jj] * kernel[kerRow+wkyPlusJ-jj]
				}
			}
			result[(i-shiftX)*rny+(j-shiftY)] = top
		}
	})
}
