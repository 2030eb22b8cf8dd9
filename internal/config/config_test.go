package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCfg(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	return p
}

func TestLoad_CUE(t *testing.T) {
	cfg := writeCfg(t, "ok.cue", "{\n  configVersion: \"1\"\n  output: { format: \"json\", echo: false }\n  errors: { strict: true }\n  log: { verbose: true }\n}\n")
	c, err := Load(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Output.Format != "json" || !c.Output.HasFormat {
		t.Fatalf("format: %+v", c.Output)
	}
	if c.Output.Echo || !c.Output.HasEcho {
		t.Fatalf("echo: %+v", c.Output)
	}
	if !c.Errors.Strict || !c.Log.Verbose {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoad_CUEDefaults(t *testing.T) {
	c, err := Load(writeCfg(t, "min.cue", "configVersion: \"1\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Output.Format != "text" || !c.Output.Echo || c.Errors.Strict {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoad_TOML(t *testing.T) {
	cfg := writeCfg(t, "ok.toml", "configVersion = \"1\"\n\n[output]\nformat = \"yaml\"\n\n[errors]\nstrict = true\n")
	c, err := Load(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Output.Format != "yaml" || !c.Output.Echo || !c.Errors.Strict {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.Log.HasVerbose {
		t.Fatalf("verbose should be unset")
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name, file, content, want string
	}{
		{"unknown version", "v.cue", "{\n  configVersion: \"2\"\n}\n", "unsupported configVersion: \"2\" (supported: 1)"},
		{"missing version", "m.cue", "{ output: { echo: true } }\n", "missing required field: configVersion"},
		{"version type", "t.cue", "configVersion: 1\n", "invalid type for field: configVersion (expected string)"},
		{"echo type", "e.cue", "configVersion: \"1\"\noutput: { echo: \"yes\" }\n", "invalid type for field: output.echo (expected bool)"},
		{"bad format", "f.cue", "configVersion: \"1\"\noutput: { format: \"xml\" }\n", "invalid output.format: \"xml\" (expected one of: json, table, text, yaml)"},
		{"toml missing version", "m.toml", "[output]\necho = false\n", "missing required field: configVersion"},
		{"extension", "c.json", "{}", "unsupported config format: expected .cue or .toml"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeCfg(t, tc.file, tc.content))
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Error() != tc.want {
				t.Fatalf("unexpected error\nwant: %s\n got: %s", tc.want, err.Error())
			}
		})
	}
}

func TestLoad_InvalidSyntax(t *testing.T) {
	_, err := Load(writeCfg(t, "bad.toml", "configVersion = \n"))
	if err == nil || !strings.HasPrefix(err.Error(), "invalid config:") {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = Load(filepath.Join(t.TempDir(), "missing.cue"))
	if err == nil || !strings.HasPrefix(err.Error(), "failed to read config:") {
		t.Fatalf("unexpected error: %v", err)
	}
}
