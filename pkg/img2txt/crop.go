package img2txt

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

/*
CropBoundsError reports a crop box that could not be constructed. It carries
every computed bound so a failing image can be diagnosed from the message
alone. The condition is fatal for the running conversion.
*/
type CropBoundsError struct {
	Topmost, Bottommost int
	Leftmost, Rightmost int
	CroppedWidth        int
	CroppedHeight       int
}

func (e *CropBoundsError) Error() string {
	return fmt.Sprintf(
		"img2txt: invalid crop box (topmost=%d bottommost=%d leftmost=%d rightmost=%d croppedWidth=%d croppedHeight=%d)",
		e.Topmost, e.Bottommost, e.Leftmost, e.Rightmost, e.CroppedWidth, e.CroppedHeight)
}

// A pixel is croppable when it is fully transparent, or opaque pure white.
func croppable(px color.NRGBA) bool {
	return px.A == 0 || (px.R == 0xFF && px.G == 0xFF && px.B == 0xFF)
}

/*
Crop removes uniform blank borders (fully transparent or pure white rows and
columns) from the edges of src. src is never written to; when nothing is
cropped the result is an equivalent copy.

Each directional scan stops at the last croppable row/column before the
first non-blank one, so a border of n blank rows keeps exactly one of them
on the top and left sides while the bottom and right sides lose all of
theirs. A scan from the bottom or right that ends at index 0 is read as "no
border on that side"; the top and left scans have no such correction. Both
behaviours are observable in output and must stay as they are.
*/
func (c *Converter) Crop(src image.Image) (image.Image, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	at := func(x, y int) color.NRGBA {
		return color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
	}
	rowCroppable := func(y int) bool {
		for x := 0; x < w; x++ {
			if !croppable(at(x, y)) {
				return false
			}
		}
		return true
	}
	colCroppable := func(x int) bool {
		for y := 0; y < h; y++ {
			if !croppable(at(x, y)) {
				return false
			}
		}
		return true
	}

	var topmost, bottommost, leftmost, rightmost int

	for y := 0; y < h; y++ {
		if !rowCroppable(y) {
			break
		}
		topmost = y
	}
	for y := h - 1; y >= 0; y-- {
		if !rowCroppable(y) {
			break
		}
		bottommost = y
	}
	for x := 0; x < w; x++ {
		if !colCroppable(x) {
			break
		}
		leftmost = x
	}
	for x := w - 1; x >= 0; x-- {
		if !colCroppable(x) {
			break
		}
		rightmost = x
	}

	// A right/bottom scan ending on 0 means it never broke out; treat that
	// side as having no border at all.
	if rightmost == 0 {
		rightmost = w
	}
	if bottommost == 0 {
		bottommost = h
	}

	croppedWidth := rightmost - leftmost
	croppedHeight := bottommost - topmost

	// A collapsed axis disables cropping on that axis only.
	if croppedWidth == 0 {
		leftmost, croppedWidth = 0, w
	}
	if croppedHeight == 0 {
		topmost, croppedHeight = 0, h
	}

	if croppedWidth < 0 || croppedHeight < 0 ||
		leftmost+croppedWidth > w || topmost+croppedHeight > h {
		return nil, &CropBoundsError{
			Topmost:       topmost,
			Bottommost:    bottommost,
			Leftmost:      leftmost,
			Rightmost:     rightmost,
			CroppedWidth:  croppedWidth,
			CroppedHeight: croppedHeight,
		}
	}

	if leftmost == 0 && topmost == 0 && croppedWidth == w && croppedHeight == h {
		return imaging.Clone(src), nil
	}

	rect := image.Rect(
		bounds.Min.X+leftmost,
		bounds.Min.Y+topmost,
		bounds.Min.X+leftmost+croppedWidth,
		bounds.Min.Y+topmost+croppedHeight,
	)
	return imaging.Crop(src, rect), nil
}
