package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file the bcq command looks for in the
// working directory.
const DefaultFileName = "bcq.yaml"

// File is the on-disk configuration for the bcq command.
type File struct {
	BCPath         string `yaml:"bc_path"`
	TimeoutPath    string `yaml:"timeout_path"`
	Timeout        string `yaml:"timeout"`
	TimeoutMode    string `yaml:"timeout_mode"`
	MaxOutputBytes int    `yaml:"max_output_bytes"`
	Concurrency    int    `yaml:"concurrency"`

	Env map[string]string `yaml:"env"`
}

// LoadFile reads a YAML config file. A missing file yields an empty config
// and no error.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}

		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return f, nil
}

// Apply copies the values set in f onto o.
func (f *File) Apply(o *Options) error {
	if f.BCPath != "" {
		o.BCPath = f.BCPath
	}

	if f.TimeoutPath != "" {
		o.TimeoutPath = f.TimeoutPath
	}

	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("timeout %q: %w", f.Timeout, err)
		}

		o.Timeout = d
	}

	if f.TimeoutMode != "" {
		mode := TimeoutMode(f.TimeoutMode)
		if !mode.Valid() {
			return fmt.Errorf("unknown timeout_mode %q", f.TimeoutMode)
		}

		o.TimeoutMode = mode
	}

	if f.MaxOutputBytes != 0 {
		o.MaxOutputBytes = f.MaxOutputBytes
	}

	if f.Concurrency > 0 {
		o.Concurrency = f.Concurrency
	}

	if len(f.Env) > 0 {
		o.Env = f.Env
	}

	return nil
}
