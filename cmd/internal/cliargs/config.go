package cliargs

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

/*
FileConfig carries the defaults an optional /F: config file may provide.
Command line switches always win over the file. Zero values mean "not set";
an empty ramp keeps the built-in one.

	ramp = "@#+-. "
	max_width = 120
	max_height = 60
	crop = true
*/
type FileConfig struct {
	Ramp      string `toml:"ramp"`
	MaxWidth  int    `toml:"max_width"`
	MaxHeight int    `toml:"max_height"`
	Crop      bool   `toml:"crop"`
}

func LoadConfig(path string) (FileConfig, error) {
	var fc FileConfig

	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return FileConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if fc.MaxWidth < 0 || fc.MaxHeight < 0 {
		return FileConfig{}, fmt.Errorf("config %s: max_width and max_height must be at least 1", path)
	}

	return fc, nil
}
