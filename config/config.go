// SPDX-License-Identifier: MIT

// Package config loads alexdata job files.
//
// A job file is YAML:
//
//	workers: 4
//	log_level: info
//	jobs:
//	  - name: plain-weave
//	    strands: 5
//	    caps: 1
//	    word: [3, 2, 2, -4, -1, -1, -2, -3, -4]
//	  - name: trefoil-pair
//	    strands: 4
//	    caps: 1
//	    generate:
//	      torus: 3
//	      random: 6
//	      seed: 42
//
// A generate block appends builder constructors after the literal word.
// ALEXDATA_WORKERS and ALEXDATA_LOG_LEVEL override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/alexdata/batch"
	"github.com/katalvlaran/alexdata/braid"
	"github.com/katalvlaran/alexdata/builder"
)

// Environment variables consulted by Load.
const (
	EnvWorkers  = "ALEXDATA_WORKERS"
	EnvLogLevel = "ALEXDATA_LOG_LEVEL"
)

var (
	// ErrNoJobs is returned by Validate for a config without jobs.
	ErrNoJobs = errors.New("config: no jobs")

	// ErrInvalidJob wraps the braid error of a job that cannot be built.
	ErrInvalidJob = errors.New("config: invalid job")

	// ErrInvalidSetting flags a bad worker count or log level.
	ErrInvalidSetting = errors.New("config: invalid setting")
)

// Job is one kernel to evaluate.
type Job struct {
	Name     string    `yaml:"name"`
	Strands  int       `yaml:"strands"`
	Caps     int       `yaml:"caps"`
	Word     []int     `yaml:"word"`
	Generate *Generate `yaml:"generate,omitempty"`
}

// Generate describes generated word material. Non-zero fields append, in
// field order, HalfTwists Δ, FullTwists Δ², the (n, Torus) torus cycle,
// Plait weave rows and Random generators drawn with Seed. Mirror negates
// the finished word, literal prefix included.
type Generate struct {
	HalfTwists int   `yaml:"half_twists,omitempty"`
	FullTwists int   `yaml:"full_twists,omitempty"`
	Torus      int   `yaml:"torus,omitempty"`
	Plait      int   `yaml:"plait,omitempty"`
	Random     int   `yaml:"random,omitempty"`
	Seed       int64 `yaml:"seed,omitempty"`
	Mirror     bool  `yaml:"mirror,omitempty"`
}

func (g *Generate) options() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithSeed(g.Seed)}
	if g.Mirror {
		opts = append(opts, builder.WithMirror())
	}

	return opts
}

func (g *Generate) constructors(prefix []int) []builder.Constructor {
	cons := []builder.Constructor{builder.Generators(prefix...)}
	if g.HalfTwists != 0 {
		cons = append(cons, builder.Repeat(g.HalfTwists, builder.HalfTwist()))
	}
	if g.FullTwists != 0 {
		cons = append(cons, builder.Repeat(g.FullTwists, builder.FullTwist()))
	}
	if g.Torus != 0 {
		cons = append(cons, builder.Torus(g.Torus))
	}
	if g.Plait != 0 {
		cons = append(cons, builder.Plait(g.Plait))
	}
	if g.Random != 0 {
		cons = append(cons, builder.RandomWord(g.Random))
	}

	return cons
}

// Kernel builds the job's kernel. Without a generate block the word is
// taken literally; otherwise it goes through builder.BuildKernel.
func (j Job) Kernel() (*braid.Kernel, error) {
	if j.Generate == nil {
		return braid.NewKernel(j.Strands, j.Caps, j.Word...)
	}

	return builder.BuildKernel(j.Strands, j.Caps, j.Generate.options(), j.Generate.constructors(j.Word)...)
}

// Config is the root of a job file.
type Config struct {
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
	Jobs     []Job  `yaml:"jobs"`
}

// Default returns a config with GOMAXPROCS workers, info logging and no jobs.
func Default() *Config {
	return &Config{
		Workers:  runtime.GOMAXPROCS(0),
		LogLevel: "info",
	}
}

// Load reads path over Default(). A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, ErrInvalidSetting)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidSetting)
	}

	return lvl, nil
}

// Validate checks the settings and that every job builds a kernel.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalidSetting)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if len(c.Jobs) == 0 {
		return ErrNoJobs
	}
	for i, j := range c.Jobs {
		if _, err := j.Kernel(); err != nil {
			return fmt.Errorf("job %d (%s): %w: %w", i, j.Name, ErrInvalidJob, err)
		}
	}

	return nil
}

// BatchJobs converts the jobs for batch.Evaluate, expanding generate
// blocks into literal words. Unnamed jobs are named by their position.
func (c *Config) BatchJobs() ([]batch.Job, error) {
	out := make([]batch.Job, len(c.Jobs))
	for i, j := range c.Jobs {
		name := j.Name
		if name == "" {
			name = "job-" + strconv.Itoa(i+1)
		}
		word := j.Word
		if j.Generate != nil {
			k, err := j.Kernel()
			if err != nil {
				return nil, fmt.Errorf("job %d (%s): %w: %w", i, name, ErrInvalidJob, err)
			}
			word = k.Word().Ints()
		}
		out[i] = batch.Job{Name: name, Strands: j.Strands, Caps: j.Caps, Word: word}
	}

	return out, nil
}
