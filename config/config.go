// Package config declares lvsignal blocks in YAML and builds them.
//
// A document names a log level, the kernel policy for package matrix, and a
// list of blocks:
//
//	log_level: debug
//	kernel:
//	  grain: 4096
//	  workers: 4
//	blocks:
//	  - name: position
//	    kind: integrator
//	    init: 0
//	    strict: true
//	  - name: limiter
//	    kind: saturation
//	    top: 1
//	    bottom: -1
//
// Parse reads a document from memory; Load reads a file through viper and
// lets LVSIGNAL_* environment variables override scalar keys
// (e.g. LVSIGNAL_KERNEL_WORKERS=2). Both validate before returning.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsignal/logging"
	"github.com/katalvlaran/lvsignal/matrix"
)

// EnvPrefix is the environment prefix honoured by Load.
const EnvPrefix = "LVSIGNAL"

// DefaultLogLevel applies when log_level is omitted.
const DefaultLogLevel = "info"

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownBlock indicates a lookup of an undeclared block name.
	ErrUnknownBlock = errors.New("config: unknown block")

	// ErrWrongRole indicates a source requested as a transfer or vice versa.
	ErrWrongRole = errors.New("config: block kind does not fit the requested role")
)

// Kind names a block type.
type Kind string

// Transfer kinds.
const (
	KindIntegrator     Kind = "integrator"     // continuous.Integrator
	KindDifferentiator Kind = "differentiator" // continuous.Differentiator
	KindSaturation     Kind = "saturation"     // discontinuous.Saturation
)

// Source kinds.
const (
	KindStep     Kind = "step"     // source.Step
	KindConstant Kind = "constant" // source.Constant[float64]
	KindRamp     Kind = "ramp"     // source.Ramp
	KindSine     Kind = "sine"     // source.Sine
)

// IsSource reports whether k produces values without input.
func (k Kind) IsSource() bool {
	switch k {
	case KindStep, KindConstant, KindRamp, KindSine:
		return true
	}

	return false
}

// IsTransfer reports whether k maps an input to an output.
func (k Kind) IsTransfer() bool {
	switch k {
	case KindIntegrator, KindDifferentiator, KindSaturation:
		return true
	}

	return false
}

// Config is one parsed document.
type Config struct {
	LogLevel string        `yaml:"log_level" mapstructure:"log_level"`
	Kernel   KernelConfig  `yaml:"kernel" mapstructure:"kernel"`
	Blocks   []BlockConfig `yaml:"blocks" mapstructure:"blocks"`
}

// KernelConfig mirrors the matrix kernel options; zero means default.
type KernelConfig struct {
	Grain   int `yaml:"grain" mapstructure:"grain"`
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// BlockConfig declares one block. Only the fields of its Kind are read.
type BlockConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	Kind Kind   `yaml:"kind" mapstructure:"kind"`

	// integrator, differentiator
	Init       float64 `yaml:"init,omitempty" mapstructure:"init"`
	Derivative bool    `yaml:"derivative,omitempty" mapstructure:"derivative"`
	StartTime  float64 `yaml:"start_time,omitempty" mapstructure:"start_time"`
	Strict     bool    `yaml:"strict,omitempty" mapstructure:"strict"`

	// saturation
	Top    float64 `yaml:"top,omitempty" mapstructure:"top"`
	Bottom float64 `yaml:"bottom,omitempty" mapstructure:"bottom"`

	// step (Init is the value before StepTime)
	End      float64 `yaml:"end,omitempty" mapstructure:"end"`
	StepTime float64 `yaml:"step_time,omitempty" mapstructure:"step_time"`

	// constant
	Value float64 `yaml:"value,omitempty" mapstructure:"value"`

	// ramp (start_time is where the ramp begins)
	Slope   float64 `yaml:"slope,omitempty" mapstructure:"slope"`
	Initial float64 `yaml:"initial,omitempty" mapstructure:"initial"`

	// sine
	Amplitude float64 `yaml:"amplitude,omitempty" mapstructure:"amplitude"`
	Frequency float64 `yaml:"frequency,omitempty" mapstructure:"frequency"`
	Phase     float64 `yaml:"phase,omitempty" mapstructure:"phase"`
	Bias      float64 `yaml:"bias,omitempty" mapstructure:"bias"`
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{LogLevel: DefaultLogLevel}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads the file at path (any format viper understands), applies
// LVSIGNAL_* environment overrides and validates the result. As with Parse,
// unknown keys are rejected.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("kernel.grain", 0)
	v.SetDefault("kernel.workers", 0)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := &Config{}
	if err := v.UnmarshalExact(cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the log level, kernel bounds and every block declaration.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Kernel.Grain < 0 {
		return fmt.Errorf("%w: kernel.grain must be >= 0, got %d", ErrInvalidConfig, c.Kernel.Grain)
	}
	if c.Kernel.Workers < 0 {
		return fmt.Errorf("%w: kernel.workers must be >= 0, got %d", ErrInvalidConfig, c.Kernel.Workers)
	}
	seen := make(map[string]struct{}, len(c.Blocks))
	for i := range c.Blocks {
		b := &c.Blocks[i]
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: blocks[%d]: %w", ErrInvalidConfig, i, err)
		}
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("%w: duplicate block name %q", ErrInvalidConfig, b.Name)
		}
		seen[b.Name] = struct{}{}
	}

	return nil
}

// Validate checks one declaration in isolation.
func (b *BlockConfig) Validate() error {
	if b.Name == "" {
		return errors.New("name is required")
	}
	if !b.Kind.IsSource() && !b.Kind.IsTransfer() {
		return fmt.Errorf("block %q: unknown kind %q", b.Name, b.Kind)
	}
	if b.Kind == KindSaturation && b.Top < b.Bottom {
		return fmt.Errorf("block %q: top (%g) must be >= bottom (%g)", b.Name, b.Top, b.Bottom)
	}
	if b.Kind == KindSine && b.Frequency < 0 {
		return fmt.Errorf("block %q: frequency must be >= 0, got %g", b.Name, b.Frequency)
	}

	return nil
}

// Block returns the declaration named name.
func (c *Config) Block(name string) (BlockConfig, error) {
	for _, b := range c.Blocks {
		if b.Name == name {
			return b, nil
		}
	}

	return BlockConfig{}, fmt.Errorf("%w: %q", ErrUnknownBlock, name)
}

// KernelOptions converts the kernel section into matrix options.
func (c *Config) KernelOptions() []matrix.Option {
	var opts []matrix.Option
	if c.Kernel.Grain > 0 {
		opts = append(opts, matrix.WithGrain(c.Kernel.Grain))
	}
	if c.Kernel.Workers > 0 {
		opts = append(opts, matrix.WithWorkers(c.Kernel.Workers))
	}

	return opts
}

// ApplyKernel installs the kernel section as the matrix policy and returns
// the previous policy.
func (c *Config) ApplyKernel() matrix.Options {
	return matrix.Configure(c.KernelOptions()...)
}

// Logger builds a zap-backed logger at the configured level.
func (c *Config) Logger() (logr.Logger, error) {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logr.Discard(), fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return logging.New(lvl)
}
