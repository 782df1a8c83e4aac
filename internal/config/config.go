// Package config loads hext settings from a TOML file.
//
// A config file only sets defaults; command-line flags take precedence.
//
//	[input]
//	format = "nquads"
//	base = "http://example.org/"
//	max_line_bytes = 1048576
//
//	[output]
//	path = "out.hext"
//	encoding = "utf-8"
//	escape = true
//
//	[log]
//	level = "warn"
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/geoknoesis/rdf-hext/rdf"
)

// Config holds all settings of the hext CLI.
type Config struct {
	Input  Input  `toml:"input"`
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
}

// Input controls how source documents are read.
type Input struct {
	Format       string `toml:"format"` // empty means extension, then content sniffing
	Base         string `toml:"base"`
	MaxLineBytes int    `toml:"max_line_bytes"`
}

// Output controls where and how Hextuples are written.
type Output struct {
	Path     string `toml:"path"` // empty means stdout
	Encoding string `toml:"encoding"`
	Escape   bool   `toml:"escape"`
}

// Log controls the CLI logger.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Input: Input{MaxLineBytes: rdf.DefaultMaxLineBytes},
		Log:   Log{Level: "info"},
	}
}

// Load reads a TOML file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return finish(cfg, md)
}

// Parse decodes TOML text on top of Default.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that named formats and levels are known.
func (c Config) Validate() error {
	var errs []error
	if c.Input.Format != "" {
		if f, ok := rdf.ParseFormat(c.Input.Format); !ok || f == rdf.FormatHextuples {
			errs = append(errs, fmt.Errorf("config: unsupported input format %q", c.Input.Format))
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("config: log level: %w", err))
	}
	return errors.Join(errs...)
}

// LogLevel returns the configured level, defaulting to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// LoadOptions returns the loader options implied by the input section.
func (c Config) LoadOptions() []rdf.Option {
	opts := []rdf.Option{rdf.OptMaxLineBytes(c.Input.MaxLineBytes)}
	if c.Input.Base != "" {
		opts = append(opts, rdf.OptBase(c.Input.Base))
	}
	return opts
}

// WriteOptions returns the serializer options implied by the output section.
// The input base only resolves JSON-LD; it never reaches the writer.
func (c Config) WriteOptions() []rdf.Option {
	opts := []rdf.Option{rdf.OptEncoding(c.Output.Encoding)}
	if c.Output.Escape {
		opts = append(opts, rdf.OptEscapeStrings())
	}
	return opts
}
