package kernel_test

import (
	"fmt"

	"github.com/cwbudde/algo-convolve/kernel"
)

func ExampleBox1D() {
	k, _ := kernel.Box1D(5)
	fmt.Println(k)

	// Output:
	// [0.2 0.2 0.2 0.2 0.2]
}

func ExampleGaussian2D() {
	k, _ := kernel.Gaussian2D(1.5, 5)

	fmt.Printf("taps: %d\n", len(k))
	fmt.Printf("sum: %.1f\n", kernel.Sum(k))

	// Output:
	// taps: 25
	// sum: 1.0
}
