// Package config holds run settings for the socialgraph CLI.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional YAML file, an optional .env file and SOCIALGRAPH_* environment
// variables. The merged result is validated before use.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SOCIALGRAPH_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	Eigen   EigenConfig   `yaml:"eigen"`
	Paths   PathsConfig   `yaml:"paths"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
	Run     RunConfig     `yaml:"run"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// EigenConfig tunes eigenvector power iteration.
type EigenConfig struct {
	Iterations int     `yaml:"iterations" validate:"gte=1"`
	Tolerance  float64 `yaml:"tolerance" validate:"gte=0"`
}

// PathsConfig bounds simple-path enumeration.
type PathsConfig struct {
	MaxPaths int `yaml:"max_paths" validate:"gte=0"`
}

// OutputConfig selects the report renderer.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json yaml"`
	Top    int    `yaml:"top" validate:"gte=0"`
}

// LogConfig configures slog.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// RunConfig bounds a single computation.
type RunConfig struct {
	// Timeout of 0 disables the deadline.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Eigen:  EigenConfig{Iterations: 100},
		Output: OutputConfig{Format: "text", Top: 10},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

var validate = validator.New()

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Load builds a Config. path may be empty to skip the YAML file; envFile may
// be empty to skip .env loading, and a missing envFile is not an error.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	var fileEnv map[string]string
	if envFile != "" {
		var err error
		if fileEnv, err = godotenv.Read(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env %s: %w", envFile, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overlays SOCIALGRAPH_* variables. The process environment wins
// over values read from the .env file.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var err error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok && err == nil {
			if *dst, err = strconv.Atoi(v); err != nil {
				err = fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, key, v)
			}
		}
	}

	num("EIGEN_ITERATIONS", &cfg.Eigen.Iterations)
	num("PATHS_MAX_PATHS", &cfg.Paths.MaxPaths)
	num("OUTPUT_TOP", &cfg.Output.Top)
	str("OUTPUT_FORMAT", &cfg.Output.Format)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("METRICS_TEXTFILE", &cfg.Metrics.Textfile)
	if v, ok := lookup(EnvPrefix + "EIGEN_TOLERANCE"); ok && err == nil {
		if cfg.Eigen.Tolerance, err = strconv.ParseFloat(v, 64); err != nil {
			err = fmt.Errorf("%w: %sEIGEN_TOLERANCE=%q", ErrInvalid, EnvPrefix, v)
		}
	}
	if v, ok := lookup(EnvPrefix + "RUN_TIMEOUT"); ok && err == nil {
		if cfg.Run.Timeout, err = time.ParseDuration(v); err != nil {
			err = fmt.Errorf("%w: %sRUN_TIMEOUT=%q", ErrInvalid, EnvPrefix, v)
		}
	}

	return err
}
