// Package config resolves the settings of the vrg command from defaults, an
// optional vrg.toml, VRG_* environment variables and command-line flags, in
// increasing order of priority.
package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/vrg/extract"
	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/rule"
)

// FileName is the optional config file read from the working directory.
const FileName = "vrg.toml"

const envPrefix = "VRG_"

// Algorithms.
const (
	AlgorithmGreedy = "greedy"
	AlgorithmMDL    = "mdl"
)

// Clusterings.
const (
	ClusteringLouvain = "louvain"
	ClusteringRandom  = "random"
	ClusteringFile    = "file"
)

// ErrInvalid indicates a setting outside its domain.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all settings of one run.
type Config struct {
	Graph      string  `koanf:"graph"`
	Tree       string  `koanf:"tree"`
	Clustering string  `koanf:"clustering"`
	Resolution float64 `koanf:"resolution"`
	Lambda     int     `koanf:"lambda"`
	Selection  string  `koanf:"selection"`
	Mode       string  `koanf:"mode"`
	Algorithm  string  `koanf:"algorithm"`
	Name       string  `koanf:"name"`
	Seed       int64   `koanf:"seed"`
	Output     string  `koanf:"output"`
	Store      string  `koanf:"store"`
	Verbose    int     `koanf:"verbose"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"graph":      "",
		"tree":       "",
		"clustering": ClusteringLouvain,
		"resolution": 1.0,
		"lambda":     extract.DefaultLambda,
		"selection":  grammar.SelectLevelMDL.String(),
		"mode":       rule.ModePart.String(),
		"algorithm":  AlgorithmGreedy,
		"name":       "",
		"seed":       int64(1),
		"output":     "",
		"store":      "",
		"verbose":    0,
	}
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	return load(f, FileName)
}

func load(f *pflag.FlagSet, path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, errors.Wrap(err, "loading defaults")
	}

	// The file is optional.
	_ = k.Load(file.Provider(path), toml.Parser())

	// VRG_LAMBDA=6 sets "lambda".
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, "loading env vars")
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, errors.Wrap(err, "loading flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if _, err := c.ParsedMode(); err != nil {
		return errors.Wrap(err, "mode")
	}
	if _, err := c.ParsedSelection(); err != nil {
		return errors.Wrap(err, "selection")
	}
	if c.Lambda < 1 {
		return errors.Wrapf(ErrInvalid, "lambda=%d", c.Lambda)
	}
	switch c.Algorithm {
	case AlgorithmGreedy, AlgorithmMDL:
	default:
		return errors.Wrapf(ErrInvalid, "algorithm=%q", c.Algorithm)
	}
	switch c.Clustering {
	case ClusteringLouvain, ClusteringRandom, ClusteringFile:
	default:
		return errors.Wrapf(ErrInvalid, "clustering=%q", c.Clustering)
	}
	if c.Clustering == ClusteringFile && c.Tree == "" {
		return errors.Wrap(ErrInvalid, "clustering=file needs a tree")
	}

	return nil
}

// ParsedMode returns Mode as a rule.Mode.
func (c *Config) ParsedMode() (rule.Mode, error) { return rule.ParseMode(c.Mode) }

// ParsedSelection returns Selection as a grammar.Selection.
func (c *Config) ParsedSelection() (grammar.Selection, error) {
	return grammar.ParseSelection(c.Selection)
}

// mapProvider serves a fixed map to koanf.
type mapProvider map[string]interface{}

func (p mapProvider) Read() (map[string]interface{}, error) { return p, nil }

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider does not support ReadBytes")
}
