package projection_test

import (
	"fmt"

	"github.com/cwbudde/algo-plot/plot/projection"
)

func ExampleProjection_Map() {
	// Map a -1..1 amplitude onto a 200 pixel high surface, y growing down.
	p := projection.New()
	p.SetInRange(-1, 1)
	p.SetOutRange(200, 0)

	fmt.Println(p.Map(-1), p.Map(0), p.Map(1))

	// Output:
	// 200 100 0
}

func ExampleProjection_Clipped() {
	p := projection.New()
	p.SetInRange(0, 10)
	p.SetOutRange(0, 100)

	fmt.Println(p.Clipped(-3), p.Clipped(5), p.Clipped(30))

	// Output:
	// 0 50 100
}
