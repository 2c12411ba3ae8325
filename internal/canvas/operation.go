package canvas

import (
	"image"
	"image/color"
)

const (
	eraseRadiusX = 2
	eraseRadiusY = 1
)

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ink   = color.RGBA{B: 255, A: 255}
)

// Operation is a queued mutation of the raster buffer. The set is closed:
// Pixel, Line, Erase, EraseLine and Clear.
type Operation interface {
	apply(img *image.RGBA)
}

type Pixel struct {
	X, Y  int
	Color color.RGBA
}

type Line struct {
	X1, Y1, X2, Y2 int
	Color          color.RGBA
}

// Erase whitens a 5x3 brush centred on X, Y.
type Erase struct {
	X, Y int
}

type EraseLine struct {
	X1, Y1, X2, Y2 int
}

type Clear struct{}

func (op Pixel) apply(img *image.RGBA) {
	setPixel(img, op.X, op.Y, op.Color)
}

func (op Line) apply(img *image.RGBA) {
	RasterizeIn(img.Rect, float64(op.X1), float64(op.Y1), float64(op.X2), float64(op.Y2), func(x, y int) {
		setPixel(img, x, y, op.Color)
	})
}

func (op Erase) apply(img *image.RGBA) {
	erase(img, op.X, op.Y)
}

func (op EraseLine) apply(img *image.RGBA) {
	clip := image.Rect(
		img.Rect.Min.X-eraseRadiusX, img.Rect.Min.Y-eraseRadiusY,
		img.Rect.Max.X+eraseRadiusX, img.Rect.Max.Y+eraseRadiusY,
	)
	RasterizeIn(clip, float64(op.X1), float64(op.Y1), float64(op.X2), float64(op.Y2), func(x, y int) {
		erase(img, x, y)
	})
}

func (Clear) apply(img *image.RGBA) {
	fill(img, White)
}

// setPixel drops writes outside the buffer.
func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}

	img.SetRGBA(x, y, c)
}

func erase(img *image.RGBA, x, y int) {
	r := image.Rect(x-eraseRadiusX, y-eraseRadiusY, x+eraseRadiusX+1, y+eraseRadiusY+1).Intersect(img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.SetRGBA(px, py, White)
		}
	}
}

func fill(img *image.RGBA, c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
}
