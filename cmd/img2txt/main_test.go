package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func quietStatus() *status {
	return &status{w: io.Discard}
}

// writeTestPNG drops a small black/white checker png into dir and returns
// its path.
func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px := color.NRGBA{A: 0xFF}
			if (x+y)%2 == 1 {
				px = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
			}
			img.SetNRGBA(x, y, px)
		}
	}

	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesDerivedOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPNG(t, dir)

	if code := run([]string{in}, quietStatus(), io.Discard); code != exitSuccess {
		t.Fatalf("exit code %d, want %d", code, exitSuccess)
	}

	out, err := os.ReadFile(filepath.Join(dir, "in.txt"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if len(lines) != 4 || len(lines[0]) != 4 {
		t.Fatalf("got %d lines of %d characters, want 4x4", len(lines), len(lines[0]))
	}
}

func TestRunConsoleOutput(t *testing.T) {
	in := writeTestPNG(t, t.TempDir())

	var stdout bytes.Buffer
	if code := run([]string{in, "-"}, quietStatus(), &stdout); code != exitSuccess {
		t.Fatalf("exit code %d, want %d", code, exitSuccess)
	}
	if n := strings.Count(stdout.String(), "\n"); n != 4 {
		t.Fatalf("console output has %d lines, want 4", n)
	}
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPNG(t, dir)

	garbage := filepath.Join(dir, "garbage.bin")
	if err := os.WriteFile(garbage, []byte("not an image"), 0666); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"success", []string{"/W:2", in}, exitSuccess},
		{"help", []string{"--help"}, exitHelpShown},
		{"bad switch", []string{"/W:0", in}, exitBadArguments},
		{"no input", []string{"/C"}, exitBadArguments},
		{"missing input file", []string{filepath.Join(dir, "missing.png")}, exitInputNotFound},
		{"invalid image", []string{garbage, "-"}, exitImageInvalid},
	}

	for _, tc := range cases {
		if code := run(tc.args, quietStatus(), io.Discard); code != tc.want {
			t.Errorf("%s: exit code %d, want %d", tc.name, code, tc.want)
		}
	}
}

func TestRunHonoursConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPNG(t, dir)

	cfg := filepath.Join(dir, "defaults.toml")
	if err := os.WriteFile(cfg, []byte("max_width = 2\n"), 0666); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if code := run([]string{"/F:" + cfg, in, "-"}, quietStatus(), &stdout); code != exitSuccess {
		t.Fatalf("exit code %d, want %d", code, exitSuccess)
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines[0]) != 2 {
		t.Fatalf("config max_width ignored: got %d characters per line", len(lines[0]))
	}
}

func TestDerivedOutputPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"photo.png", "photo.txt"},
		{"dir/photo.jpeg", "dir/photo.txt"},
		{"noext", "noext.txt"},
		{"archive.tar.gz", "archive.tar.txt"},
	}

	for _, tc := range cases {
		if got := derivedOutputPath(tc.in); got != tc.want {
			t.Errorf("derivedOutputPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
