package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/agbru/paracc/internal/errors"
)

// fileConfig mirrors the keys accepted in a TOML configuration file.
type fileConfig struct {
	N           int    `toml:"n"`
	Init        int64  `toml:"init"`
	Algo        string `toml:"algo"`
	MinChunk    int    `toml:"min_chunk"`
	Workers     int    `toml:"workers"`
	Checked     bool   `toml:"checked"`
	Materialize bool   `toml:"materialize"`
	Timeout     string `toml:"timeout"`
	Verbose     bool   `toml:"verbose"`
	Details     bool   `toml:"details"`
	Quiet       bool   `toml:"quiet"`
	NoColor     bool   `toml:"no_color"`
	MetricsAddr string `toml:"metrics_addr"`
}

// fileOverride binds one TOML key to the flags that take precedence over it.
type fileOverride struct {
	key   string
	flags []string
	apply func(*AppConfig, *fileConfig) error
}

var fileOverrides = []fileOverride{
	{"n", []string{"n"}, func(c *AppConfig, f *fileConfig) error { c.N = f.N; return nil }},
	{"init", []string{"init"}, func(c *AppConfig, f *fileConfig) error { c.Init = f.Init; return nil }},
	{"algo", []string{"algo"}, func(c *AppConfig, f *fileConfig) error {
		c.Algo = strings.TrimSpace(f.Algo)
		return nil
	}},
	{"min_chunk", []string{"min-chunk"}, func(c *AppConfig, f *fileConfig) error { c.MinChunk = f.MinChunk; return nil }},
	{"workers", []string{"workers"}, func(c *AppConfig, f *fileConfig) error { c.Workers = f.Workers; return nil }},
	{"checked", []string{"checked"}, func(c *AppConfig, f *fileConfig) error { c.Checked = f.Checked; return nil }},
	{"materialize", []string{"materialize"}, func(c *AppConfig, f *fileConfig) error {
		c.Materialize = f.Materialize
		return nil
	}},
	{"timeout", []string{"timeout"}, func(c *AppConfig, f *fileConfig) error {
		d, err := time.ParseDuration(strings.TrimSpace(f.Timeout))
		if err != nil {
			return apperrors.WrapError(err, "parse timeout")
		}
		c.Timeout = d
		return nil
	}},
	{"verbose", []string{"v", "verbose"}, func(c *AppConfig, f *fileConfig) error { c.Verbose = f.Verbose; return nil }},
	{"details", []string{"d", "details"}, func(c *AppConfig, f *fileConfig) error { c.Details = f.Details; return nil }},
	{"quiet", []string{"q", "quiet"}, func(c *AppConfig, f *fileConfig) error { c.Quiet = f.Quiet; return nil }},
	{"no_color", []string{"no-color"}, func(c *AppConfig, f *fileConfig) error { c.NoColor = f.NoColor; return nil }},
	{"metrics_addr", []string{"metrics-addr"}, func(c *AppConfig, f *fileConfig) error {
		c.MetricsAddr = strings.TrimSpace(f.MetricsAddr)
		return nil
	}},
}

// applyFileConfig overlays the keys defined in the TOML file at path onto
// config, skipping values whose flag was given on the command line.
func applyFileConfig(config *AppConfig, path string, fs *flag.FlagSet) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return apperrors.WrapError(err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	for _, o := range fileOverrides {
		if !meta.IsDefined(o.key) || isFlagSetAny(fs, o.flags...) {
			continue
		}
		if err := o.apply(config, &raw); err != nil {
			return apperrors.WrapError(err, "load config %s", path)
		}
	}
	return nil
}
