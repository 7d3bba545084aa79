package img2txt

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestConvertBlackWhitePattern(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			px := opaqueBlack
			if (x+y)%2 == 1 {
				px = opaqueWhite
			}
			img.SetNRGBA(x, y, px)
		}
	}

	c := New(WithRamp("AB"))
	got, err := c.Convert(img)
	if err != nil {
		t.Fatal(err)
	}
	if got != "ABAB\nBABA\n" {
		t.Fatalf("got %q, want %q", got, "ABAB\nBABA\n")
	}
}

func TestConvertRejectsEmptyRamp(t *testing.T) {
	c := New(WithRamp(""))

	_, err := c.Convert(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, ErrEmptyRamp) {
		t.Fatalf("got %v, want ErrEmptyRamp", err)
	}
}

func TestConvertCropThenScale(t *testing.T) {
	// 104x104 with a 2 pixel transparent border. Cropping keeps one blank
	// row/column on the top-left (101x101), then scaling fits to width 50:
	// 50*100/101 = 49, 49*101/100 = 49.
	src := borderedGrid(104, 104, 2, transparent)

	c := New(WithRamp("AB"), WithBounds(50, Unbounded), WithCrop(true))
	got, err := c.Convert(src)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 49 {
		t.Fatalf("got %d lines, want 49", len(lines))
	}
	if len(lines[0]) != 50 {
		t.Fatalf("got %d characters per line, want 50", len(lines[0]))
	}
}

func TestConvertReaderDecodesAndRenders(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, opaqueBlack)
	img.SetNRGBA(1, 0, opaqueWhite)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	c := New(WithRamp("AB"))
	got, err := c.ConvertBytes(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if got != "AB\n" {
		t.Fatalf("got %q, want %q", got, "AB\n")
	}
}

func TestConvertReaderRejectsGarbage(t *testing.T) {
	c := NewDefault()

	if _, err := c.ConvertBytes([]byte("this is not an image")); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestConvertOutputLengthInvariant(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 9, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 9; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 28), G: uint8(y * 42), B: 0x40, A: 0xFF})
		}
	}

	got, err := NewDefault().Convert(img)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(got) - strings.Count(got, "\n"); n != 9*6 {
		t.Fatalf("got %d characters excluding separators, want %d", n, 9*6)
	}
}
