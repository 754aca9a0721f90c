// Command convinfo times direct N-dimensional convolution across thread
// counts.
//
// Usage:
//
//	convinfo [flags]
//
// Examples:
//
//	convinfo -dims 2 -size 512 -kernel 9
//	convinfo -dims 3 -size 64 -kernel 5 -threads 8 -nan
//	convinfo -dims 1 -size 100000 -kernel 31 -padded
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	vecmathcpu "github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-convolve/conv"
	"github.com/cwbudde/algo-convolve/kernel"
)

func main() {
	dims := flag.Int("dims", 2, "image rank (1, 2 or 3)")
	size := flag.Int("size", 256, "image extent per dimension")
	ksize := flag.Int("kernel", 5, "kernel extent per dimension (odd)")
	threads := flag.Int("threads", runtime.NumCPU(), "maximum thread count to time")
	runs := flag.Int("runs", 5, "timed repetitions per thread count (best is reported)")
	nanInterp := flag.Bool("nan", false, "enable NaN interpolation (10% of samples set to NaN)")
	padded := flag.Bool("padded", false, "use trimmed (padded) output indexing")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: convinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Times direct N-dimensional convolution across thread counts.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *dims < 1 || *dims > 3 {
		fmt.Fprintf(os.Stderr, "convinfo: -dims must be 1, 2 or 3\n")
		os.Exit(2)
	}
	if *ksize < 1 || *ksize%2 == 0 {
		fmt.Fprintf(os.Stderr, "convinfo: -kernel must be odd and positive\n")
		os.Exit(2)
	}
	if *size <= *ksize {
		fmt.Fprintf(os.Stderr, "convinfo: -size must exceed -kernel\n")
		os.Exit(2)
	}

	imageShape := make([]int, *dims)
	kernelShape := make([]int, *dims)
	for d := range imageShape {
		imageShape[d] = *size
		kernelShape[d] = *ksize
	}

	image := makeImage(imageShape, *nanInterp)
	k, err := makeKernel(*dims, *ksize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "convinfo: %v\n", err)
		os.Exit(1)
	}

	outLen := 1
	for _, e := range conv.OutputShape(imageShape, kernelShape, *padded) {
		outLen *= e
	}

	fmt.Printf("image %v, kernel %v, nan=%v, padded=%v\n", imageShape, kernelShape, *nanInterp, *padded)
	fmt.Printf("cpu: %s, features: %+v\n\n", runtime.GOARCH, vecmathcpu.DetectFeatures())

	var result []float64
	var baseline time.Duration

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "THREADS\tBEST\tSPEEDUP")
	for n := 1; n <= *threads; n *= 2 {
		result = conv.EnsureLen(result, outLen)

		best := time.Duration(0)
		for r := 0; r < *runs; r++ {
			conv.Zero(result)
			start := time.Now()
			conv.ConvolveND(result, image, imageShape, k, kernelShape, *nanInterp, *padded, n)
			elapsed := time.Since(start)
			if best == 0 || elapsed < best {
				best = elapsed
			}
		}
		if n == 1 {
			baseline = best
		}
		fmt.Fprintf(w, "%d\t%v\t%.2fx\n", n, best, float64(baseline)/float64(best))
	}
	w.Flush()
}

func makeImage(shape []int, withNaNs bool) []float64 {
	n := 1
	for _, e := range shape {
		n *= e
	}
	rng := rand.New(rand.NewSource(1))
	image := make([]float64, n)
	for i := range image {
		image[i] = rng.Float64()
	}
	if withNaNs {
		for i := 0; i < n; i += 10 {
			image[i] = math.NaN()
		}
	}
	return image
}

func makeKernel(dims, size int) ([]float64, error) {
	stddev := float64(size) / 4
	switch dims {
	case 1:
		return kernel.Gaussian1D(stddev, size)
	case 2:
		return kernel.Gaussian2D(stddev, size)
	default:
		return kernel.Gaussian3D(stddev, size)
	}
}
