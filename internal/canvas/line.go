package canvas

import (
	"image"
	"math"
)

// Rasterize samples the segment (x1,y1)-(x2,y2) at uniform parametric steps
// and calls fn once per sample. The sample count is ceil of the larger axis
// delta, so the far endpoint itself is not sampled; a zero-length segment
// yields exactly one sample. Shallow diagonals may skip or repeat pixels.
func Rasterize(x1, y1, x2, y2 float64, fn func(x, y int)) {
	RasterizeIn(image.Rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32), x1, y1, x2, y2, fn)
}

// RasterizeIn is Rasterize restricted to the samples that can land inside
// clip. Samples inside clip are the same as Rasterize produces, but the work
// is bounded by the clipped span rather than the segment length.
func RasterizeIn(clip image.Rectangle, x1, y1, x2, y2 float64, fn func(x, y int)) {
	dx, dy := x2-x1, y2-y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		fn(round(x1), round(y1))
		return
	}

	n := int(math.Ceil(steps))
	xInc, yInc := dx/steps, dy/steps

	xLo, xHi := span(x1, xInc, clip.Min.X, clip.Max.X, n)
	yLo, yHi := span(y1, yInc, clip.Min.Y, clip.Max.Y, n)
	lo, hi := max(xLo, yLo), min(xHi, yHi)

	for i := lo; i < hi; i++ {
		fn(round(x1+xInc*float64(i)), round(y1+yInc*float64(i)))
	}
}

// span returns the sample indices [lo, hi) of v0+inc*i, i in [0, n), that
// may round into [from, to). It errs on the wide side by one pixel.
func span(v0, inc float64, from, to, n int) (int, int) {
	a, b := float64(from)-1, float64(to)+1
	if inc == 0 {
		if v0 < a || v0 > b {
			return 0, 0
		}
		return 0, n
	}

	lo, hi := (a-v0)/inc, (b-v0)/inc
	if lo > hi {
		lo, hi = hi, lo
	}

	return clampIndex(math.Floor(lo), n), clampIndex(math.Ceil(hi)+1, n)
}

func clampIndex(v float64, n int) int {
	switch {
	case v < 0:
		return 0
	case v > float64(n):
		return n
	default:
		return int(v)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
