package pict

import (
	"fmt"
	"testing"
)

// BenchmarkFillSpanVsSetPixel compares FillSpan performance against repeated
// SetPixel calls.
func BenchmarkFillSpanVsSetPixel(b *testing.B) {
	c, err := NewCanvas(1000, 1000)
	if err != nil {
		b.Fatal(err)
	}
	col := Red

	benchmarks := []struct {
		name   string
		pixels int
	}{
		{"10px", 10},
		{"50px", 50},
		{"100px", 100},
		{"500px", 500},
	}

	for _, bm := range benchmarks {
		b.Run("SetPixel_"+bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for x := 0; x < bm.pixels; x++ {
					c.SetPixel(x, 500, col.R, col.G, col.B, 255)
				}
			}
		})

		b.Run("FillSpan_"+bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c.FillSpan(0, bm.pixels, 500, col)
			}
		})
	}
}

// BenchmarkFillCircle measures disc rasterization across radii.
func BenchmarkFillCircle(b *testing.B) {
	c, err := NewCanvas(256, 256)
	if err != nil {
		b.Fatal(err)
	}

	for _, r := range []int{4, 16, 64} {
		b.Run(fmt.Sprintf("r%d", r), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c.FillCircle(128, 128, r, Blue)
			}
		})
	}
}

// BenchmarkRenderDefault renders the built-in badge end to end.
func BenchmarkRenderDefault(b *testing.B) {
	cfg := DefaultConfig()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cfg.Render(); err != nil {
			b.Fatal(err)
		}
	}
}
