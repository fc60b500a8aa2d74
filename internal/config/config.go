package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/termpick/internal/app"
	"github.com/atomicstack/termpick/internal/theme"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration shared by every command.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the YAML config file. Unset keys fall through to the
// built-in defaults.
type fileConfig struct {
	Title    *string `yaml:"title"`
	Exitable *bool   `yaml:"exitable"`
	Debug    *bool   `yaml:"debug"`
	Scroll   *bool   `yaml:"scroll"`
	Footer   *bool   `yaml:"footer"`
	Scheme   *string `yaml:"scheme"`
	Width    *int    `yaml:"width"`
	Height   *int    `yaml:"height"`
	LogFile  *string `yaml:"logFile"`
	Trace    *bool   `yaml:"trace"`
}

const (
	envConfig   = "TERMPICK_CONFIG"
	envTitle    = "TERMPICK_TITLE"
	envExitable = "TERMPICK_EXITABLE"
	envDebug    = "TERMPICK_DEBUG"
	envScroll   = "TERMPICK_SCROLL"
	envFooter   = "TERMPICK_FOOTER"
	envScheme   = "TERMPICK_SCHEME"
	envWidth    = "TERMPICK_WIDTH"
	envHeight   = "TERMPICK_HEIGHT"
	envLogFile  = "TERMPICK_LOG_FILE"
	envTrace    = "TERMPICK_TRACE"

	envXDGConfig = "XDG_CONFIG_HOME"
)

// Register adds the shared flags to fs.
func Register(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("title", "", "banner shown above the widget")
	fs.Bool("exitable", true, "allow esc to cancel the widget")
	fs.Bool("debug", false, "render internal state diagnostics")
	fs.Bool("scroll", false, "let the terminal scroll instead of windowing the list")
	fs.Bool("footer", false, "show a key help row below the widget")
	fs.String("scheme", theme.DefaultScheme, "colour scheme ("+strings.Join(theme.Schemes(), ", ")+")")
	fs.Int("width", 0, "surface width in cells (0 uses terminal width)")
	fs.Int("height", 0, "surface height in rows (0 uses terminal height)")
	fs.String("log-file", "", "path to the log file")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
}

// LoadArgs parses args against a fresh flag set and resolves the result.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("termpick", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	Register(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := FromFlags(fs, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// FromFlags resolves configuration from a parsed flag set. An explicitly set
// flag wins over the environment, which wins over the config file, which wins
// over the flag default.
func FromFlags(fs *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)
	path := configPath(fs, env)
	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	r := resolver{fs: fs, env: env, flags: map[string]string{}}

	cfg := Config{
		App: app.Config{
			Title:    resolve(&r, "title", envTitle, file.Title, parseString, fs.GetString),
			Exitable: resolve(&r, "exitable", envExitable, file.Exitable, strconv.ParseBool, fs.GetBool),
			Debug:    resolve(&r, "debug", envDebug, file.Debug, strconv.ParseBool, fs.GetBool),
			Scroll:   resolve(&r, "scroll", envScroll, file.Scroll, strconv.ParseBool, fs.GetBool),
			Footer:   resolve(&r, "footer", envFooter, file.Footer, strconv.ParseBool, fs.GetBool),
			Scheme:   resolve(&r, "scheme", envScheme, file.Scheme, parseString, fs.GetString),
			Width:    resolve(&r, "width", envWidth, file.Width, strconv.Atoi, fs.GetInt),
			Height:   resolve(&r, "height", envHeight, file.Height, strconv.Atoi, fs.GetInt),
		},
		Logging: Logging{
			FilePath: resolve(&r, "log-file", envLogFile, file.LogFile, parseString, fs.GetString),
			Trace:    resolve(&r, "trace", envTrace, file.Trace, strconv.ParseBool, fs.GetBool),
		},
		File:  path,
		Flags: r.flags,
		Args:  fs.Args(),
	}
	return cfg, nil
}

type resolver struct {
	fs    *pflag.FlagSet
	env   map[string]string
	flags map[string]string
}

// resolve picks the value of one setting by precedence and records it in
// r.flags for the startup trace. Unparseable environment values are
// ignored.
func resolve[T any](r *resolver, name, envKey string, fromFile *T, parse func(string) (T, error), get func(string) (T, error)) T {
	value, _ := get(name)
	switch {
	case r.fs.Changed(name):
	case hasEnv(r.env, envKey):
		if parsed, err := parse(strings.TrimSpace(r.env[envKey])); err == nil {
			value = parsed
		} else if fromFile != nil {
			value = *fromFile
		}
	case fromFile != nil:
		value = *fromFile
	}
	r.flags[name] = fmt.Sprint(value)
	return value
}

func parseString(s string) (string, error) { return s, nil }

func hasEnv(env map[string]string, key string) bool {
	v, ok := env[key]
	return ok && strings.TrimSpace(v) != ""
}

// configPath returns the config file to read: --config, then
// TERMPICK_CONFIG, then $XDG_CONFIG_HOME/termpick/config.yaml if it exists.
func configPath(fs *pflag.FlagSet, env map[string]string) string {
	if path, _ := fs.GetString("config"); path != "" {
		return path
	}
	if hasEnv(env, envConfig) {
		return env[envConfig]
	}
	if hasEnv(env, envXDGConfig) {
		path := filepath.Join(env[envXDGConfig], "termpick", "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func readFile(path string) (fileConfig, error) {
	var file fileConfig
	if path == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return file, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// Validate rejects settings no widget can run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if _, err := theme.New(cfg.App.Scheme); err != nil {
		return err
	}
	return nil
}
