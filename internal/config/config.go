// Package config resolves run settings from defaults, a YAML file, the
// environment and command-line overrides, in increasing priority.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultTargetCount = 1_000_000
	DefaultSeed        = 123456789
	DefaultOutputPath  = "hellfloat64.txt"
	DefaultLogLevel    = "warn"
)

// Environment variables.
const (
	EnvConfig   = "HELLFLOAT_CONFIG"
	EnvCount    = "HELLFLOAT_COUNT"
	EnvSeed     = "HELLFLOAT_SEED"
	EnvOutput   = "HELLFLOAT_OUTPUT"
	EnvLogLevel = "HELLFLOAT_LOG_LEVEL"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of one run.
type Config struct {
	TargetCount int    `yaml:"target_count"`
	Seed        uint64 `yaml:"seed"`
	OutputPath  string `yaml:"output_path"`
	LogLevel    string `yaml:"log_level"`
	Parallel    int    `yaml:"parallel"`
	Manifest    bool   `yaml:"manifest"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TargetCount: DefaultTargetCount,
		Seed:        DefaultSeed,
		OutputPath:  DefaultOutputPath,
		LogLevel:    DefaultLogLevel,
		Parallel:    runtime.NumCPU(),
		Manifest:    true,
	}
}

// Options control where Load looks for settings.
type Options struct {
	// File is a YAML config path. When empty, EnvConfig is consulted.
	File string
	// Lookup reads the environment. Defaults to os.LookupEnv.
	Lookup func(key string) (string, bool)
	// Override applies explicitly set command-line flags last.
	Override func(cfg *Config)
}

// Load layers defaults, file, environment and overrides and validates the result.
func Load(opts Options) (Config, error) {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := Default()

	file := opts.File
	if file == "" {
		file, _ = lookup(EnvConfig)
	}

	if file != "" {
		if err := loadFile(file, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	if opts.Override != nil {
		opts.Override(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports settings that cannot run. A negative target count is
// accepted here and treated as zero by the planner.
func (c Config) Validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	if c.Parallel < 1 {
		return fmt.Errorf("%w: parallel must be at least 1, got %d", ErrInvalidConfig, c.Parallel)
	}

	return nil
}

func loadFile(path string, cfg *Config) error {
	// #nosec G304 - path is supplied by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCount); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvCount, v)
		}

		cfg.TargetCount = n
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}

		cfg.Seed = n
	}

	if v, ok := lookup(EnvOutput); ok && v != "" {
		cfg.OutputPath = v
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}

	return nil
}
