package decimate

import (
	"testing"

	"github.com/cwbudde/algo-plot/internal/testutil"
)

func BenchmarkMinMax(b *testing.B) {
	ys := testutil.DeterministicNoise(1, 1, 48000)
	b.ReportAllocs()
	b.SetBytes(int64(len(ys) * 8))

	for i := 0; i < b.N; i++ {
		_, _ = MinMax(ys, 60)
	}
}

func BenchmarkDecimateMean(b *testing.B) {
	s, _ := NewSeries(nil, testutil.DeterministicNoise(1, 1, 48000))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Decimate(s, 60, PolicyMean)
	}
}
