package img2txt

import "github.com/disintegration/imaging"

type Option func(*Converter)

/*
WithBounds sets the maximum output width (in characters) and height (in
lines). Pass Unbounded for an axis that should not constrain the image.
Passing exactly 0 for either disables scaling altogether.
*/
func WithBounds(maxWidth, maxHeight int) Option {
	return func(c *Converter) {
		c.MaxWidth = maxWidth
		c.MaxHeight = maxHeight
	}
}

// WithMaxWidth sets only the width bound. See WithBounds.
func WithMaxWidth(maxWidth int) Option {
	return func(c *Converter) {
		c.MaxWidth = maxWidth
	}
}

// WithMaxHeight sets only the height bound. See WithBounds.
func WithMaxHeight(maxHeight int) Option {
	return func(c *Converter) {
		c.MaxHeight = maxHeight
	}
}

// WithCrop enables/disables removal of blank (fully transparent or pure
// white) borders before scaling.
func WithCrop(crop bool) Option {
	return func(c *Converter) {
		c.CropBorder = crop
	}
}

/*
WithRamp sets the character ramp used for quantization, ordered darkest to
lightest. The ramp must not be empty; Convert() rejects an empty ramp.
*/
func WithRamp(ramp string) Option {
	return func(c *Converter) {
		c.Ramp = ramp
	}
}

/*
WithFilter sets the resample filter used when a grid is redrawn at a new
size. Any imaging.ResampleFilter works; imaging.Linear is the default and
imaging.NearestNeighbor is the cheapest.
*/
func WithFilter(filter imaging.ResampleFilter) Option {
	return func(c *Converter) {
		c.Filter = filter
	}
}

// WithLineSeparator sets the string terminating every rendered line.
func WithLineSeparator(sep string) Option {
	return func(c *Converter) {
		c.LineSeparator = sep
	}
}

/*
WithProgress registers fn to be notified periodically while the brightness
map is scanned. fn receives the number of rows done so far and the total row
count. It is reporting only; the rendered output is identical with or
without it.
*/
func WithProgress(fn func(rowsDone, rowsTotal int)) Option {
	return func(c *Converter) {
		c.Progress = fn
	}
}

// WithProgressEvery sets the row interval between progress notifications.
func WithProgressEvery(rows int) Option {
	return func(c *Converter) {
		c.ProgressEvery = rows
	}
}
