package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/flarebyte/ixcalc/internal/present"
)

// Config holds the optional settings read from a config file. Has* flags
// record presence so command-line flags can tell defaults from values.
type Config struct {
	ConfigVersion string
	Output        Output
	Errors        Errors
	Log           Log
}

// Output controls what the presenter prints.
type Output struct {
	Format    string
	Echo      bool
	HasFormat bool
	HasEcho   bool
}

// Errors controls exit behaviour on logical errors.
type Errors struct {
	Strict    bool
	HasStrict bool
}

// Log controls diagnostic logging on stderr.
type Log struct {
	Verbose    bool
	HasVerbose bool
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Output:        Output{Format: string(present.FormatText), Echo: true},
	}
}

// Load reads path as CUE or TOML depending on its extension and validates it.
func Load(path string) (Config, error) {
	var (
		c   Config
		err error
	)
	switch filepath.Ext(path) {
	case ".cue":
		c, err = loadCUE(path)
	case ".toml":
		c, err = loadTOML(path)
	default:
		return Config{}, errors.New("unsupported config format: expected .cue or .toml")
	}
	if err != nil {
		return Config{}, err
	}
	return finalize(c)
}

func finalize(c Config) (Config, error) {
	if !IsSupportedConfigVersion(c.ConfigVersion) {
		return Config{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", c.ConfigVersion, SupportedConfigVersionsCSV())
	}
	if !c.Output.HasEcho {
		c.Output.Echo = true
	}
	if !c.Output.HasFormat {
		c.Output.Format = string(present.FormatText)
	}
	f, err := present.ParseFormat(c.Output.Format)
	if err != nil {
		return Config{}, fmt.Errorf("invalid output.format: %v", err)
	}
	c.Output.Format = string(f)
	return c, nil
}
