package config

import "cuelang.org/go/cue"

func loadCUE(path string) (Config, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	var c Config
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&c.ConfigVersion); err != nil {
		return Config{}, err
	}
	if c.Output.HasFormat, err = optionalField(v, "output.format", cue.StringKind, &c.Output.Format); err != nil {
		return Config{}, err
	}
	if c.Output.HasEcho, err = optionalField(v, "output.echo", cue.BoolKind, &c.Output.Echo); err != nil {
		return Config{}, err
	}
	if c.Errors.HasStrict, err = optionalField(v, "errors.strict", cue.BoolKind, &c.Errors.Strict); err != nil {
		return Config{}, err
	}
	if c.Log.HasVerbose, err = optionalField(v, "log.verbose", cue.BoolKind, &c.Log.Verbose); err != nil {
		return Config{}, err
	}
	return c, nil
}
