package autoscale

import "fmt"

func ExampleAutoScaler_MakeScale() {
	s := New(WithApproxTicks(7)).MakeScale(0.3, 9.7)
	fmt.Println(s.Start, s.Stop, s.Increment)
	// Output:
	// 0 10 1
}

func ExampleAutoScaler_Ticks() {
	for _, tick := range New(WithApproxTicks(4)).Ticks(0, 2e6) {
		fmt.Print(tick.Label, " ")
	}
	fmt.Println()
	// Output:
	// 0.0e6 0.5e6 1.0e6 1.5e6
}
