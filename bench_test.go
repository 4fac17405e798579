package flownoise

import "testing"

var sink float64

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink += New(float64(i)).Noise2D(0.5, 0.5)
	}
}

func BenchmarkNoise2D(b *testing.B) {
	n := New(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += n.Noise2D(float64(i)*0.013, float64(i)*0.007)
	}
}

func BenchmarkNoise3D(b *testing.B) {
	n := New(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += n.Noise3D(float64(i)*0.013, float64(i)*0.007, float64(i)*0.001)
	}
}

func BenchmarkSampleGrid(b *testing.B) {
	n := New(42)
	g := Grid{Width: 512, Height: 512, Scale: 0.01}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		values, err := SampleGrid(n, g)
		if err != nil {
			b.Fatalf("Failed sampling grid benchmark: %v", err)
		}
		sink += values[0]
	}
}
