// The img2txt package implements the logic for rendering an image as plain
// text: every pixel becomes one character picked from an ordered brightness
// ramp (darkest first). By default, the package supports .png, .jpg, .jpeg
// and .gif. See ConvertBytes() and ConvertReader().
// To support other image formats, import your custom decoders like so:
/*
import (
	... <other imports>

	_ "golang.org/x/image/bmp" // Here is your extra file format

	...
)
*/
// Start by calling New() or NewDefault(). Pass the options into the
// constructors (see options.go). While all fields are public, treat the
// Converter struct as immutable (and thread unsafe).
package img2txt
