package img2txt

import (
	"bytes"
	"errors"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Unbounded disables the constraint on a single axis. Pass it as maxWidth
// and/or maxHeight wherever a bound is expected.
const Unbounded = -1

/*
DefaultRamp is the default 12 character brightness ramp, ordered darkest to
lightest. Index len-1 (a space) is what fully transparent and pure white
pixels resolve to.
*/
const DefaultRamp = "@&%#*+=-:,. "

const defaultProgressEvery = 32

// ErrEmptyRamp is returned by Convert when the configured ramp has no
// characters to quantize into.
var ErrEmptyRamp = errors.New("img2txt: character ramp must not be empty")

type Converter struct {
	// MaxWidth is the maximum output width in characters. A value of
	// Unbounded (or any negative value) leaves the width unconstrained.
	// A value of exactly 0 disables scaling altogether.
	MaxWidth int
	// MaxHeight is the maximum output height in lines. Same sentinel rules
	// as MaxWidth.
	MaxHeight int

	// CropBorder enables removal of fully transparent / pure white borders
	// before scaling.
	CropBorder bool

	// Ramp is the ordered character ramp, index 0 = darkest. Must not be
	// empty; Convert() rejects an empty ramp before transforming anything.
	Ramp string

	// Filter is the resample filter handed to the imaging package when a
	// grid has to be redrawn at a new size. The zero value falls back to
	// nearest neighbour.
	Filter imaging.ResampleFilter

	// LineSeparator terminates every rendered line, the last one included.
	LineSeparator string

	// Progress, when set, is called every ProgressEvery rows during the
	// brightness scan and once more when the scan finishes. It must not be
	// used to alter the conversion; it only exists for reporting.
	Progress func(rowsDone, rowsTotal int)
	// ProgressEvery is the row interval between Progress calls. Values < 1
	// fall back to the package default of 32.
	ProgressEvery int
}

/*
NewDefault initializes a Converter with default parameters.

- MaxWidth: Unbounded
- MaxHeight: Unbounded
- CropBorder: false
- Ramp: DefaultRamp
- Filter: imaging.Linear (bilinear)
- LineSeparator: "\n"
- Progress: nil
- ProgressEvery: 32
*/
func NewDefault() *Converter {
	return &Converter{
		MaxWidth:      Unbounded,
		MaxHeight:     Unbounded,
		Ramp:          DefaultRamp,
		Filter:        imaging.Linear,
		LineSeparator: "\n",
		ProgressEvery: defaultProgressEvery,
	}
}

// New initializes a Converter with default parameters, then applies options
func New(opts ...Option) *Converter {
	conv := NewDefault()

	for _, o := range opts {
		o(conv)
	}

	return conv
}

/*
Convert renders img as text. The working grid is cropped first (when
CropBorder is set), then scaled to fit MaxWidth/MaxHeight, then reduced to a
brightness map and quantized through the ramp. Every stage produces a fresh
grid or map; img itself is never written to.

The only error conditions are an empty ramp, rejected before any transform
runs, and a crop geometry failure (see Crop).
*/
func (c *Converter) Convert(img image.Image) (string, error) {
	if len(c.Ramp) == 0 {
		return "", ErrEmptyRamp
	}

	work := img
	if c.CropBorder {
		var err error
		work, err = c.Crop(work)
		if err != nil {
			return "", err
		}
	}

	work = c.Scale(work, c.MaxWidth, c.MaxHeight)

	return c.Render(c.MapBrightness(work)), nil
}

/*
ConvertReader takes an io.Reader that can read the bytes of an image. Image
formats supported are jpeg, png, gif. If you want to support more formats,
initialize the decoder package at the top of any of your go files:

import (
	... <other imports>

	_ "golang.org/x/image/bmp"

	...
)

ConvertReader uses image.Decode() under the hood, so it is important to
register file formats so the image module knows how to decode the bytes.
*/
func (c *Converter) ConvertReader(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("img2txt: decoding image: %w", err)
	}

	return c.Convert(img)
}

// ConvertBytes takes a byte slice representing an image. It calls
// ConvertReader() under the hood; the same format registration rules apply.
func (c *Converter) ConvertBytes(b []byte) (string, error) {
	return c.ConvertReader(bytes.NewReader(b))
}
