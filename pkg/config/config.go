package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is looked up in the working directory before the user config dir.
const FileName = "linus.toml"

// Config holds the complete interpreter configuration
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	Debug  DebugConfig  `toml:"debug"`
	Repl   ReplConfig   `toml:"repl"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Timestamps bool   `toml:"timestamps"`
}

// OutputConfig holds terminal output settings
type OutputConfig struct {
	Color bool `toml:"color"`
}

// DebugConfig selects the dumps printed before evaluation
type DebugConfig struct {
	DumpTokens bool   `toml:"dump_tokens"`
	DumpAST    bool   `toml:"dump_ast"`
	DumpFormat string `toml:"dump_format"`
}

// ReplConfig holds interactive session settings
type ReplConfig struct {
	Prompt string `toml:"prompt"`
}

var (
	logLevels   = []string{"debug", "info", "warn", "error"}
	logFormats  = []string{"text", "json", "logfmt"}
	dumpFormats = []string{"tree", "sexpr", "yaml"}
)

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Color: true,
		},
		Debug: DebugConfig{
			DumpFormat: "tree",
		},
		Repl: ReplConfig{
			Prompt: "> ",
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	var errs []error
	if !oneOf(c.Log.Level, logLevels) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s, got %q", strings.Join(logLevels, "|"), c.Log.Level))
	}
	if !oneOf(c.Log.Format, logFormats) {
		errs = append(errs, fmt.Errorf("log.format must be one of %s, got %q", strings.Join(logFormats, "|"), c.Log.Format))
	}
	if !oneOf(c.Debug.DumpFormat, dumpFormats) {
		errs = append(errs, fmt.Errorf("debug.dump_format must be one of %s, got %q", strings.Join(dumpFormats, "|"), c.Debug.DumpFormat))
	}
	return errors.Join(errs...)
}

// Discover returns the first config file that exists, or "" when there is none.
func Discover() string {
	candidates := []string{FileName}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "linus", "config.toml"))
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func oneOf(val string, allowed []string) bool {
	for _, a := range allowed {
		if val == a {
			return true
		}
	}
	return false
}
