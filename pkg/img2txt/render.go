package img2txt

import "strings"

/*
Render quantizes m through the configured ramp and builds the final text.
Every brightness value f picks ramp[floor(f * (len(ramp)-1))], so 0 always
lands on the first (darkest) character and 1 on the last. The output is
Height() lines of Width() characters, top row first, every line terminated
by the line separator.

Render assumes the Converter was validated by Convert(): the ramp is
non-empty and every value of m lies in [0, 1].
*/
func (c *Converter) Render(m *BrightnessMap) string {
	ramp := []rune(c.Ramp)
	div := float64(len(ramp) - 1)

	sep := c.LineSeparator
	if sep == "" {
		sep = "\n"
	}

	width, height := m.Width(), m.Height()

	var sb strings.Builder
	sb.Grow((width + len(sep)) * height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sb.WriteRune(ramp[int(m.At(x, y)*div)])
		}
		sb.WriteString(sep)
	}

	return sb.String()
}
