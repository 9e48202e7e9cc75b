// Package artwork derives the UI background color from album art.
// The artwork (or a neutral placeholder) is normalized to a fixed-size
// pixel grid, averaged per channel, then clamped so a predominantly light
// image does not produce a glaring background.
package artwork

import (
	"bytes"
	"image"
	_ "image/jpeg" // JPEG decoder for embedded art
	_ "image/png"  // PNG decoder for embedded art

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// artSize is the fixed edge length artwork is normalized to before averaging.
const artSize = 340

// Brightness clamp constants: a channel above clampChannel is dimmed by
// clampDelta when the averaged channels together exceed clampSum.
const (
	clampChannel = 170
	clampSum     = 510
	clampDelta   = 50
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string for the UI layer.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// FromImageData decodes embedded artwork bytes and derives its background
// color. Undecodable or nil data falls back to the placeholder color.
func FromImageData(data []byte) RGB {
	if data == nil {
		return Default()
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Default()
	}
	return FromImage(img)
}

// FromImage normalizes an image to the fixed grid and averages it.
func FromImage(img image.Image) RGB {
	normalized := resize.Resize(artSize, artSize, img, resize.Lanczos3)
	return averageColor(normalized)
}

// Default returns the background color of the neutral placeholder image,
// used when a track has no embedded artwork.
func Default() RGB {
	return FromImage(placeholderImage())
}

// averageColor computes the per-channel integer average across every pixel.
func averageColor(img image.Image) RGB {
	bounds := img.Bounds()
	var rSum, gSum, bSum uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
		}
	}
	count := uint64(bounds.Dx() * bounds.Dy())
	if count == 0 {
		return RGB{}
	}
	r, g, b := clampBrightness(int(rSum/count), int(gSum/count), int(bSum/count))
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// clampBrightness dims each channel above the threshold when the combined
// averages indicate a predominantly light image.
func clampBrightness(r, g, b int) (int, int, int) {
	if r+g+b > clampSum {
		if r > clampChannel {
			r -= clampDelta
		}
		if g > clampChannel {
			g -= clampDelta
		}
		if b > clampChannel {
			b -= clampDelta
		}
	}
	return r, g, b
}
