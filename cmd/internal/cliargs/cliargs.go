// Package cliargs parses the img2txt command line. The switch grammar is
// deliberately DOS-flavoured (/W:120, /C, /?) and therefore hand-rolled:
// neither the flag package nor any common flag library speaks it.
package cliargs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrHelp is returned by Parse when any help switch is present. Help beats
// every other argument, valid or not.
var ErrHelp = errors.New("help requested")

type Options struct {
	// MaxWidth / MaxHeight are 0 when the matching switch was not given.
	MaxWidth  int
	MaxHeight int

	Crop    bool
	Console bool

	ConfigPath string
	InputPath  string
	OutputPath string
}

const Usage = `img2txt - renders an image as plain text

usage: img2txt [/W:width] [/H:height] [/C] [/F:config] input [output | -]

  /W:<n>    maximum output width in characters (n >= 1)
  /H:<n>    maximum output height in lines (n >= 1)
  /C        crop fully transparent / pure white borders first
  /F:<p>    read default settings from the TOML file p
  input     image to convert (png, jpg, gif, bmp, webp, tiff)
  output    output text file; defaults to the input path with a .txt
            extension, overwriting what is there
  -         write to the console instead of a file

  --help, -?, /?   show this message

Switch letters are case insensitive.
`

/*
Parse interprets args (without the program name) into Options. A help switch
anywhere short-circuits to ErrHelp. Any other error means the whole
invocation is rejected.
*/
func Parse(args []string) (Options, error) {
	for _, arg := range args {
		if arg == "--help" || arg == "-?" || arg == "/?" {
			return Options{}, ErrHelp
		}
	}

	var opts Options
	var positionals []string

	for _, arg := range args {
		switch {
		case arg == "-":
			opts.Console = true
		case hasSwitch(arg, "/W:"):
			n, err := switchInt(arg)
			if err != nil {
				return Options{}, err
			}
			opts.MaxWidth = n
		case hasSwitch(arg, "/H:"):
			n, err := switchInt(arg)
			if err != nil {
				return Options{}, err
			}
			opts.MaxHeight = n
		case strings.EqualFold(arg, "/C"):
			opts.Crop = true
		case hasSwitch(arg, "/F:"):
			opts.ConfigPath = arg[len("/F:"):]
			if opts.ConfigPath == "" {
				return Options{}, fmt.Errorf("switch %s needs a file path", arg[:2])
			}
		case strings.HasPrefix(arg, "/"):
			return Options{}, fmt.Errorf("unknown switch %q", arg)
		default:
			positionals = append(positionals, arg)
		}
	}

	switch len(positionals) {
	case 0:
		return Options{}, errors.New("no input file given")
	case 1:
		opts.InputPath = positionals[0]
	case 2:
		opts.InputPath = positionals[0]
		opts.OutputPath = positionals[1]
	default:
		return Options{}, fmt.Errorf("unexpected argument %q", positionals[2])
	}

	if opts.OutputPath != "" && opts.Console {
		return Options{}, errors.New("an output file and console output are mutually exclusive")
	}

	return opts, nil
}

func hasSwitch(arg, prefix string) bool {
	return len(arg) >= len(prefix) && strings.EqualFold(arg[:len(prefix)], prefix)
}

func switchInt(arg string) (int, error) {
	n, err := strconv.Atoi(arg[len("/W:"):])
	if err != nil {
		return 0, fmt.Errorf("switch %s does not carry a valid integer", arg[:2])
	}
	if n < 1 {
		return 0, fmt.Errorf("switch %s must be at least 1", arg[:2])
	}
	return n, nil
}
