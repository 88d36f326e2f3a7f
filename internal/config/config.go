// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the shell settings from an optional YAML or HCL file.
package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/spf13/afero"
)

// End of input policies.
const (
	EndOfInputExit  = "exit"
	EndOfInputRetry = "retry"
)

// Single digit recall policies.
const (
	RecallLegacy    = "legacy"
	RecallInclusive = "inclusive"
)

// Line editing modes.
const (
	LineEditingAuto = "auto"
	LineEditingOn   = "on"
	LineEditingOff  = "off"
)

// Upper bounds of the numeric settings.
const (
	// maxRecallable is the largest position the two digit recall form can address.
	maxRecallable = 99
	maxPidSize    = 999
	maxArguments  = 255
	maxLineMax    = 65536
)

var (
	// ErrReadFile is returned when the configuration file cannot be read.
	ErrReadFile = errors.New("failed to read config file")
	// ErrInvalidYaml is returned when a YAML configuration cannot be decoded.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrInvalidHCL is returned when an HCL configuration cannot be decoded.
	ErrInvalidHCL = errors.New("invalid HCL")
	// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml and .hcl.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Config holds the shell settings.
type Config struct {
	Prompt            string `yaml:"prompt"`
	HistorySize       int    `yaml:"history_size"`
	PidSize           int    `yaml:"pid_size"`
	MaxArguments      int    `yaml:"max_arguments"`
	LineMax           int    `yaml:"line_max"`
	EndOfInput        string `yaml:"end_of_input"`
	SingleDigitRecall string `yaml:"single_digit_recall"`
	LineEditing       string `yaml:"line_editing"`
}

// Default returns the built in settings.
func Default() *Config {
	return &Config{
		Prompt:            "msh> ",
		HistorySize:       15,
		PidSize:           15,
		MaxArguments:      10,
		LineMax:           255,
		EndOfInput:        EndOfInputExit,
		SingleDigitRecall: RecallLegacy,
		LineEditing:       LineEditingAuto,
	}
}

// Load reads and validates the file at path on top of the defaults.
// An empty path returns the defaults.
func Load(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "configuration loaded", "path", path, "config", *cfg)

	return cfg, nil
}

// Parse decodes data according to the extension of name. Fields absent from
// data keep their default values. The result is not validated.
func Parse(name string, data []byte) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
		}
	case ".hcl":
		if err := decodeHCL(name, data, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	return cfg, nil
}
