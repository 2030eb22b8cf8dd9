package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// tomlFile mirrors the CUE layout; pointers mark presence.
type tomlFile struct {
	ConfigVersion *string `toml:"configVersion"`
	Output        struct {
		Format *string `toml:"format"`
		Echo   *bool   `toml:"echo"`
	} `toml:"output"`
	Errors struct {
		Strict *bool `toml:"strict"`
	} `toml:"errors"`
	Log struct {
		Verbose *bool `toml:"verbose"`
	} `toml:"log"`
}

func loadTOML(path string) (Config, error) {
	data, err := readConfig(path)
	if err != nil {
		return Config{}, err
	}
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("invalid config: %v", err)
	}
	if f.ConfigVersion == nil {
		return Config{}, fmt.Errorf("missing required field: configVersion")
	}
	c := Config{ConfigVersion: *f.ConfigVersion}
	if f.Output.Format != nil {
		c.Output.Format, c.Output.HasFormat = *f.Output.Format, true
	}
	if f.Output.Echo != nil {
		c.Output.Echo, c.Output.HasEcho = *f.Output.Echo, true
	}
	if f.Errors.Strict != nil {
		c.Errors.Strict, c.Errors.HasStrict = *f.Errors.Strict, true
	}
	if f.Log.Verbose != nil {
		c.Log.Verbose, c.Log.HasVerbose = *f.Log.Verbose, true
	}
	return c, nil
}
