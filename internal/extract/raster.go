// Package extract derives a single representative colour from a decoded
// texture raster.
package extract

import (
	"fmt"
	"image"
	"image/color"
)

// Raster is a decoded row-major pixel buffer of 8-bit sRGB channels.
// Channels is 3 (RGB) or 4 (RGBA, non-premultiplied).
type Raster struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewRaster validates and wraps a pixel buffer.
func NewRaster(width, height, channels int, pix []byte) (Raster, error) {
	if width < 0 || height < 0 {
		return Raster{}, fmt.Errorf("invalid raster dimensions %dx%d", width, height)
	}
	if channels != 3 && channels != 4 {
		return Raster{}, fmt.Errorf("unsupported channel count %d (expected 3 or 4)", channels)
	}
	if want := width * height * channels; len(pix) != want {
		return Raster{}, fmt.Errorf("pixel buffer has %d bytes, want %d for %dx%dx%d", len(pix), want, width, height, channels)
	}
	return Raster{Width: width, Height: height, Channels: channels, Pix: pix}, nil
}

// FromImage converts any decoded image into an RGBA raster.
func FromImage(img image.Image) Raster {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 0, w*h*4)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix = append(pix, c.R, c.G, c.B, c.A)
		}
	}

	return Raster{Width: w, Height: h, Channels: 4, Pix: pix}
}

// At returns the channels of the pixel at (x, y). RGB rasters report alpha 255.
func (r Raster) At(x, y int) (red, green, blue, alpha uint8) {
	i := (y*r.Width + x) * r.Channels
	if r.Channels == 4 {
		return r.Pix[i], r.Pix[i+1], r.Pix[i+2], r.Pix[i+3]
	}
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2], 255
}

// Empty reports whether the raster has zero area.
func (r Raster) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// pixel is an opaque-enough sample with its coordinates.
type pixel struct {
	x, y    int
	r, g, b uint8
}

// visiblePixels returns every pixel that is not fully transparent, in
// row-major order.
func (r Raster) visiblePixels() []pixel {
	if r.Empty() {
		return nil
	}
	pixels := make([]pixel, 0, r.Width*r.Height)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			red, green, blue, alpha := r.At(x, y)
			if alpha == 0 {
				continue
			}
			pixels = append(pixels, pixel{x: x, y: y, r: red, g: green, b: blue})
		}
	}
	return pixels
}
