package window

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	sizes := []int{11, 101, 1001}
	for _, n := range sizes {
		for _, name := range Names() {
			typ, _ := ParseType(name)
			b.Run(name+"/"+strconv.Itoa(n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_ = Generate(typ, n)
				}
			})
		}
	}
}

func BenchmarkApply(b *testing.B) {
	sizes := []int{256, 4096}
	for _, n := range sizes {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]float64, n)
			for i := 0; i < b.N; i++ {
				Apply(TypeHann, buf)
			}
		})
	}
}
