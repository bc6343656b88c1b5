package colormap

import "fmt"

func ExampleInterpolated_Map() {
	m, _ := NewInterpolated(Config{VMin: 0, VMax: 100})
	for _, v := range []float64{-20, 0, 50, 100, 150} {
		fmt.Print(m.Map(v).Hex(), " ")
	}
	fmt.Println()
	// Output:
	// #ff0000 #ff0000 #00ff00 #0000ff #0000ff
}

func ExampleTabulated_Index() {
	tab, _ := NewTabulated(Config{VMin: 0, VMax: 1}, 10)
	fmt.Println(tab.Index(-1), tab.Index(0.25), tab.Index(0.99), tab.Index(3))
	// Output:
	// 0 2 9 10
}
