package artwork

import (
	"image"
	"image/color"
)

// placeholderColor is the fill of the synthetic stand-in artwork.
// A muted slate tone that passes the brightness clamp untouched.
var placeholderColor = color.RGBA{R: 68, G: 74, B: 84, A: 255}

// placeholderImage builds the fixed default image used when a track has no
// embedded artwork.
func placeholderImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, artSize, artSize))
	for y := 0; y < artSize; y++ {
		for x := 0; x < artSize; x++ {
			img.SetRGBA(x, y, placeholderColor)
		}
	}
	return img
}
