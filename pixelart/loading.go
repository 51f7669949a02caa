package pixelart

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// loadingFalloff is the distance from the centre at which lightness reaches 1.
const loadingFalloff = 115

// LoadingImage draws a size x size colour wheel, hue by angle and lightness
// by distance from the centre, and dithers it to twice its size.
func LoadingImage(size int, rng *rand.Rand) *image.RGBA {
	raw := image.NewRGBA(image.Rect(0, 0, size, size))
	mid := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-mid, float64(y)-mid
			hue := math.Atan2(dy, dx) * 180 / math.Pi
			if hue < 0 {
				hue += 360
			}
			dist := math.Hypot(dx, dy) / loadingFalloff
			sat := 1 - math.Abs(dist-0.5)*2

			r, g, b := colorful.Hsl(hue, sat, dist).Clamped().RGB255()
			raw.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return Dither(raw, rng)
}
