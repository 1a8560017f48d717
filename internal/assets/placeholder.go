package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters tuned for continent-scale blobs on a 2:1 equirectangular
// placeholder.
const (
	placeholderAlpha  = 2.0
	placeholderBeta   = 2.0
	placeholderOctave = 3
	placeholderSeed   = 1969
	landThreshold     = 0.08
)

var (
	oceanColor = color.RGBA{R: 18, G: 52, B: 120, A: 255}
	landColor  = color.RGBA{R: 52, G: 112, B: 60, A: 255}
	coastColor = color.RGBA{R: 194, G: 178, B: 128, A: 255}
)

// PlaceholderEarth draws a procedural stand-in globe texture: perlin-noise
// continents over ocean blue. Placeholder mode still reads as a planet
// instead of a bare colored ball.
func PlaceholderEarth(width, height int) *image.RGBA {
	noise := perlin.NewPerlin(placeholderAlpha, placeholderBeta, placeholderOctave, placeholderSeed)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		// Latitude weighting thins land toward the poles so the seam
		// pinching of the equirectangular mapping is less obvious.
		lat := float64(y)/float64(height)*math.Pi - math.Pi/2
		weight := math.Cos(lat)

		for x := 0; x < width; x++ {
			// Sample on a cylinder so the left and right edges tile
			lon := float64(x) / float64(width) * 2 * math.Pi
			nx := math.Cos(lon) * 1.5
			nz := math.Sin(lon) * 1.5
			ny := float64(y) / float64(height) * 3

			v := noise.Noise3D(nx, ny, nz) * weight

			switch {
			case v > landThreshold:
				img.SetRGBA(x, y, landColor)
			case v > landThreshold-0.03:
				img.SetRGBA(x, y, coastColor)
			default:
				img.SetRGBA(x, y, oceanColor)
			}
		}
	}
	return img
}
