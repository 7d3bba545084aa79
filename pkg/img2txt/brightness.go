package img2txt

import (
	"image"
	"image/color"
)

/*
BrightnessMap stores one normalized brightness value per pixel, row-major
(index = y*width + x), each in [0, 1]. 0 is darkest, 1 is lightest; fully
transparent pixels count as lightest. The height is derived from the backing
length, which is always an exact multiple of the width.

NOTE: Do not mutate a BrightnessMap after construction. They are intended to
be immutable once produced by MapBrightness().
*/
type BrightnessMap struct {
	width  int
	values []float64
}

func (m *BrightnessMap) Width() int {
	return m.width
}

func (m *BrightnessMap) Height() int {
	if m.width == 0 {
		return 0
	}
	return len(m.values) / m.width
}

// At returns the brightness at some x, y pixel. It does not check that x
// and y are actually valid.
func (m *BrightnessMap) At(x, y int) float64 {
	return m.values[x+y*m.width]
}

// Values exposes the row-major backing array. Treat it as read only.
func (m *BrightnessMap) Values() []float64 {
	return m.values
}

/*
MapBrightness reduces img to a BrightnessMap by scanning every pixel in
row-major order. A fully transparent pixel maps to 1 (blank); everything
else maps to its HSL lightness, (max(r,g,b)+min(r,g,b))/2 of the
unpremultiplied channels, normalized to [0, 1].

When a Progress callback is configured it fires every ProgressEvery rows
and once more at the end of the scan. The callback never influences the
produced map.
*/
func (c *Converter) MapBrightness(img image.Image) *BrightnessMap {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	every := c.ProgressEvery
	if every < 1 {
		every = defaultProgressEvery
	}

	values := make([]float64, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			values[x+y*width] = brightnessOf(px)
		}

		if c.Progress != nil && (y+1)%every == 0 {
			c.Progress(y+1, height)
		}
	}

	if c.Progress != nil {
		c.Progress(height, height)
	}

	return &BrightnessMap{width: width, values: values}
}

func brightnessOf(px color.NRGBA) float64 {
	if px.A == 0 {
		return 1
	}

	maxc := max(px.R, px.G, px.B)
	minc := min(px.R, px.G, px.B)

	return (float64(maxc) + float64(minc)) / 2 / 255
}
