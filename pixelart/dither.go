package pixelart

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand"

	xdraw "golang.org/x/image/draw"
)

// ditherLevels is the number of sub-pixels in one dithered cell.
const ditherLevels = 4

// Dither doubles src in both directions and replaces every pixel with a 2x2
// cell whose channels are each either off or fully on. The number of lit
// sub-pixels per channel approximates the source intensity and their
// placement inside the cell is shuffled with rng.
func Dither(src image.Image, rng *rand.Rand) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*2, b.Dy()*2))

	var lit [3][ditherLevels]uint8
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			for ch, v := range [3]uint8{c.R, c.G, c.B} {
				n := litCount(v)
				for i := range lit[ch] {
					lit[ch][i] = 0
					if i < n {
						lit[ch][i] = 255
					}
				}
				rng.Shuffle(ditherLevels, func(i, j int) {
					lit[ch][i], lit[ch][j] = lit[ch][j], lit[ch][i]
				})
			}

			ox, oy := (x-b.Min.X)*2, (y-b.Min.Y)*2
			for i := 0; i < ditherLevels; i++ {
				dst.SetRGBA(ox+i/2, oy+i%2, color.RGBA{R: lit[0][i], G: lit[1][i], B: lit[2][i], A: 255})
			}
		}
	}
	return dst
}

func litCount(v uint8) int {
	return int(math.Round(float64(v) / (255.0 / ditherLevels)))
}

// Upscale enlarges src by an integer factor, repeating each pixel.
func Upscale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Mirror flips src horizontally.
func Mirror(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(b.Max.X-1-x, y-b.Min.Y, src.At(x, y))
		}
	}
	return dst
}
