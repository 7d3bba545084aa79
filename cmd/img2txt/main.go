package main

import (
	"errors"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nebbyJammin/img2txt/cmd/internal/cliargs"
	"github.com/nebbyJammin/img2txt/pkg/img2txt"
)

const (
	exitSuccess       = 0
	exitInputNotFound = 1
	exitImageInvalid  = 2
	exitBadArguments  = 3
	exitWriteFailure  = 4
	exitHelpShown     = 5
)

func main() {
	os.Exit(run(os.Args[1:], newStatus(), os.Stdout))
}

// status writes diagnostics and progress to stderr, colored and animated
// only when stderr is an actual terminal.
type status struct {
	w     io.Writer
	isTTY bool
}

func newStatus() *status {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return &status{w: colorable.NewColorableStderr(), isTTY: true}
	}
	return &status{w: os.Stderr}
}

func (s *status) errorf(format string, v ...interface{}) {
	if s.isTTY {
		fmt.Fprintf(s.w, "\033[31merror:\033[0m "+format+"\n", v...)
	} else {
		fmt.Fprintf(s.w, "error: "+format+"\n", v...)
	}
}

// progress redraws an in-place row counter. Outside a terminal it stays
// silent; the scan itself is unaffected either way.
func (s *status) progress(rowsDone, rowsTotal int) {
	if !s.isTTY {
		return
	}
	fmt.Fprintf(s.w, "\rscanning row %d/%d", rowsDone, rowsTotal)
	if rowsDone == rowsTotal {
		fmt.Fprint(s.w, "\n")
	}
}

func run(args []string, st *status, stdout io.Writer) int {
	opts, err := cliargs.Parse(args)
	if errors.Is(err, cliargs.ErrHelp) {
		fmt.Fprint(stdout, cliargs.Usage)
		return exitHelpShown
	}
	if err != nil {
		st.errorf("%v", err)
		return exitBadArguments
	}

	maxWidth, maxHeight := img2txt.Unbounded, img2txt.Unbounded
	ramp := img2txt.DefaultRamp
	crop := opts.Crop

	if opts.ConfigPath != "" {
		fc, err := cliargs.LoadConfig(opts.ConfigPath)
		if err != nil {
			st.errorf("%v", err)
			return exitBadArguments
		}
		if fc.Ramp != "" {
			ramp = fc.Ramp
		}
		if fc.MaxWidth > 0 {
			maxWidth = fc.MaxWidth
		}
		if fc.MaxHeight > 0 {
			maxHeight = fc.MaxHeight
		}
		crop = crop || fc.Crop
	}
	if opts.MaxWidth > 0 {
		maxWidth = opts.MaxWidth
	}
	if opts.MaxHeight > 0 {
		maxHeight = opts.MaxHeight
	}

	conv := img2txt.New(
		img2txt.WithBounds(maxWidth, maxHeight),
		img2txt.WithCrop(crop),
		img2txt.WithRamp(ramp),
		img2txt.WithProgress(st.progress),
	)

	in, err := os.Open(opts.InputPath)
	if err != nil {
		st.errorf("cannot open %s: %v", opts.InputPath, err)
		return exitInputNotFound
	}

	text, err := conv.ConvertReader(in)
	in.Close()
	if err != nil {
		st.errorf("%v", err)
		return exitImageInvalid
	}

	if opts.Console {
		if _, err := io.WriteString(stdout, text); err != nil {
			st.errorf("cannot write to console: %v", err)
			return exitWriteFailure
		}
		return exitSuccess
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = derivedOutputPath(opts.InputPath)
	}
	if err := os.WriteFile(outPath, []byte(text), 0666); err != nil {
		st.errorf("cannot write %s: %v", outPath, err)
		return exitWriteFailure
	}

	return exitSuccess
}

// derivedOutputPath swaps the input extension for .txt, or appends .txt
// when the input has no extension.
func derivedOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".txt"
}
