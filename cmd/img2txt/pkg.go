// This package implements the command line tool that uses the API.
// It renders an image on the filesystem as plain text, writing the result
// next to the input (or wherever told to, including the console).
//
// The converter understands .png, .jpg, .jpeg, .gif, .bmp, .webp and .tiff
// inputs (see github.com/nebbyJammin/img2txt/pkg/img2txt for how decoders
// are registered).
package main
