// Package config resolves ventflow run settings from, in increasing priority:
// built-in defaults, an optional YAML file, a .env file, VENTFLOW_* environment
// variables and finally command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "VENTFLOW_"

var (
	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrFile wraps YAML read and decode failures.
	ErrFile = errors.New("config: cannot load file")
)

// Config holds one run's settings.
type Config struct {
	Input            string `yaml:"input"`
	Format           string `yaml:"format" validate:"oneof=text dot"`
	Start            string `yaml:"start" validate:"required,len=2,alphanum"`
	Budget           int64  `yaml:"budget" validate:"gte=0"`
	Workers          int    `yaml:"workers" validate:"gte=1,lte=256"`
	Memo             int    `yaml:"memo" validate:"gte=0"`
	Bound            string `yaml:"bound" validate:"oneof=none optimistic"`
	Method           string `yaml:"method" validate:"oneof=dijkstra floyd-warshall"`
	RequireConnected bool   `yaml:"require_connected"`
	LogLevel         string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat        string `yaml:"log_format" validate:"oneof=json console"`
	DotOut           string `yaml:"dot_out"`
	MetricsFile      string `yaml:"metrics_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:    "text",
		Start:     "AA",
		Budget:    30,
		Workers:   1,
		Memo:      1 << 16,
		Bound:     "optimistic",
		Method:    "dijkstra",
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Load applies the file, .env and environment layers over the defaults.
// path may be empty. A missing .env file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadFile decodes YAML from path over cfg. Unknown keys are rejected.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFile, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFile, path, err)
	}

	return nil
}

// LoadDotEnv exports variables from the given files (default ".env") into the
// process environment without overriding variables already set.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	present := files[:0:0]
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("config: dotenv: %w", err)
	}

	return nil
}

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// MapLookup adapts a map (e.g. from godotenv.Read) to a LookupFunc.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// ApplyEnv overrides cfg with VENTFLOW_* variables found through lookup.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	strs := map[string]*string{
		"INPUT":        &cfg.Input,
		"FORMAT":       &cfg.Format,
		"START":        &cfg.Start,
		"BOUND":        &cfg.Bound,
		"METHOD":       &cfg.Method,
		"LOG_LEVEL":    &cfg.LogLevel,
		"LOG_FORMAT":   &cfg.LogFormat,
		"DOT_OUT":      &cfg.DotOut,
		"METRICS_FILE": &cfg.MetricsFile,
	}
	for name, dst := range strs {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	if v, ok := get("BUDGET"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sBUDGET=%q", ErrInvalid, EnvPrefix, v)
		}
		cfg.Budget = n
	}
	ints := map[string]*int{"WORKERS": &cfg.Workers, "MEMO": &cfg.Memo}
	for name, dst := range ints {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, name, v)
			}
			*dst = n
		}
	}
	if v, ok := get("REQUIRE_CONNECTED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sREQUIRE_CONNECTED=%q", ErrInvalid, EnvPrefix, v)
		}
		cfg.RequireConnected = b
	}

	return nil
}
