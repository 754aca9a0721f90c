package conv

import (
	"math"

	"github.com/cwbudde/algo-convolve/internal/checks"
	"github.com/cwbudde/algo-convolve/internal/parallel"
)

// Index3 returns the flat row-major index of coordinate (i, j, k) in an
// array with inner extents ny, nz.
func Index3(i, j, k, ny, nz int) int {
	return (i*ny+j)*nz + k
}

// Convolve3D convolves image (extents nx, ny, nz; row-major, nz innermost)
// with kernel (extents nkx, nky, nkz; all odd) and writes into result. Raw
// entry point: inputs are trusted.
//
// Indexing modes match Convolve1D, applied per dimension.
func Convolve3D(result, image []float64, nx, ny, nz int, kernel []float64, nkx, nky, nkz int, nanInterpolate, padded bool, nThreads int) {
	if !checks.Ok(len(result) > 0 && len(image) > 0 && len(kernel) > 0, "conv: nil or empty buffer") {
		return
	}

	wkx := nkx / 2
	wky := nky / 2
	wkz := nkz / 2
	if !checks.Ok(nx > 2*wkx && ny > 2*wky && nz > 2*wkz, "conv: kernel too large for image") {
		return
	}

	// Result strides and index shifts, hoisted so the loops are mode-free.
	shiftX, shiftY, shiftZ := 0, 0, 0
	rny, rnz := ny, nz
	if padded {
		shiftX, shiftY, shiftZ = wkx, wky, wkz
		rny = ny - 2*wky
		rnz = nz - 2*wkz
	}

	nyMinusWky := ny - wky
	nzMinusWkz := nz - wkz

	parallel.For(nx-2*wkx, nThreads, func(outer int) {
		i := outer + wkx
		wkxPlusI := wkx + i

		for j := wky; j < nyMinusWky; j++ {
			wkyPlusJ := wky + j

			for k := wkz; k < nzMinusWkz; k++ {
				wkzPlusK := wkz + k

				var top, bot float64
				if nanInterpolate {
					for ii := i - wkx; ii <= wkxPlusI; ii++ {
						for jj := j - wky; jj <= wkyPlusJ; jj++ {
							kerPlane := ((wkxPlusI-ii)*nky + (wkyPlusJ - jj)) * nkz
							imgPlane := (ii*ny + jj) * nz
							for kk := k - wkz; kk <= wkzPlusK; kk++ {
								val := image[imgPlane+kk]
								if !math.IsNaN(val) {
									ker := kernel[kerPlane+wkzPlusK-kk]
									top += val * ker
									bot += ker
								}
							}
						}
					}
					idx := ((i-shiftX)*rny+(j-shiftY))*rnz + (k - shiftZ)
					if bot == 0 {
						result[idx] = image[(i*ny+j)*nz+k]
					} else {
						result[idx] = top / bot
					}
					continue
				}

				for ii := i - wkx; ii <= wkxPlusI; ii++ {
					for jj := j - wky; jj <= wkyPlusJ; jj++ {
						kerPlane := ((wkxPlusI-ii)*nky + (wkyPlusJ - jj)) * nkz
						imgPlane := (ii*ny + jj) * nz
						for kk := k - wkz; kk <= wkzPlusK; kk++ {
							top += image[imgPlane+kk] * kernel[kerPlane+wkzPlusK-kk]
						}
					}
				}
				result[((i-shiftX)*rny+(j-shiftY))*rnz+(k-shiftZ)] = top
			}
		}
	})
}
