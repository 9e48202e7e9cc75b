package artwork

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func uniformImage(c color.RGBA, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestClampBrightness(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		wantR   int
		wantG   int
		wantB   int
	}{
		{
			name: "sum at threshold not clamped",
			r:    200, g: 150, b: 100,
			wantR: 200, wantG: 150, wantB: 100,
		},
		{
			name: "all bright channels dimmed",
			r:    200, g: 200, b: 200,
			wantR: 150, wantG: 150, wantB: 150,
		},
		{
			name: "bright sum but channel below threshold untouched",
			r:    250, g: 250, b: 100,
			wantR: 200, wantG: 200, wantB: 100,
		},
		{
			name: "dark image untouched",
			r:    40, g: 50, b: 60,
			wantR: 40, wantG: 50, wantB: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := clampBrightness(tt.r, tt.g, tt.b)
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("clampBrightness(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
					tt.r, tt.g, tt.b, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestAverageColor_Uniform(t *testing.T) {
	img := uniformImage(color.RGBA{R: 200, G: 150, B: 100, A: 255}, 10, 10)

	got := averageColor(img)
	want := RGB{R: 200, G: 150, B: 100}
	if got != want {
		t.Errorf("averageColor() = %v, want %v", got, want)
	}
}

func TestFromImage_BrightUniformClamped(t *testing.T) {
	img := uniformImage(color.RGBA{R: 200, G: 200, B: 200, A: 255}, 16, 16)

	got := FromImage(img)
	want := RGB{R: 150, G: 150, B: 150}
	if got != want {
		t.Errorf("FromImage() = %v, want %v", got, want)
	}
}

func TestFromImageData_NilFallsBackToDefault(t *testing.T) {
	if got, want := FromImageData(nil), Default(); got != want {
		t.Errorf("FromImageData(nil) = %v, want default %v", got, want)
	}
}

func TestFromImageData_GarbageFallsBackToDefault(t *testing.T) {
	if got, want := FromImageData([]byte("not an image")), Default(); got != want {
		t.Errorf("FromImageData(garbage) = %v, want default %v", got, want)
	}
}

func TestFromImageData_DecodesPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, uniformImage(color.RGBA{R: 40, G: 50, B: 60, A: 255}, 8, 8)); err != nil {
		t.Fatal(err)
	}

	got := FromImageData(buf.Bytes())
	want := RGB{R: 40, G: 50, B: 60}
	if got != want {
		t.Errorf("FromImageData(png) = %v, want %v", got, want)
	}
}

func TestDefault_PassesClampUntouched(t *testing.T) {
	c := Default()
	if int(c.R)+int(c.G)+int(c.B) > clampSum {
		t.Errorf("default color %v brighter than the clamp threshold", c)
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{R: 255, G: 0, B: 128}).Hex(); got != "#ff0080" {
		t.Errorf("Hex() = %q, want #ff0080", got)
	}
}
