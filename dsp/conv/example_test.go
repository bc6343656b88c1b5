package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-plot/dsp/conv"
)

func ExampleDirect() {
	signal := []float64{1, 2, 3, 4, 5, 4, 3, 2, 1}
	kernel := []float64{0.25, 0.5, 0.25}

	result, _ := conv.Direct(signal, kernel)

	fmt.Printf("Output length: %d\n", len(result))
	fmt.Printf("First few values: %.2f, %.2f, %.2f\n", result[0], result[1], result[2])

	// Output:
	// Output length: 11
	// First few values: 0.25, 1.00, 2.00
}

func ExampleConvolveMode() {
	signal := []float64{0, 0, 3, 0, 0}
	kernel := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}

	valid, _ := conv.ConvolveMode(signal, kernel, conv.ModeValid)
	fmt.Printf("%.0f\n", valid)

	// Output:
	// [1 1 1]
}

func ExampleOverlapAdd() {
	kernel := make([]float64, 128)
	for i := range kernel {
		kernel[i] = 1.0 / 128
	}

	oa, _ := conv.NewOverlapAdd(kernel, 0)
	out, _ := oa.Process(make([]float64, 1000))

	fmt.Println(oa.BlockSize(), oa.FFTSize(), len(out))

	// Output:
	// 256 512 1127
}
