// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msgdoc

// Package config loads msgdoc project settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/msgdoc"
)

// DefaultPath is the project config file looked up in the working directory.
const DefaultPath = "msgdoc.yaml"

// Config describes the documentation tree layout of one project.
type Config struct {
	InputDir      string `yaml:"input_dir"`
	OutputDir     string `yaml:"output_dir"`
	RootIndex     string `yaml:"root_index"`
	MessagesIndex string `yaml:"messages_index"`
	RootTitle     string `yaml:"root_title"`
	MessagesTitle string `yaml:"messages_title"`
	MaxDepth      int    `yaml:"max_depth"`
	Workers       int    `yaml:"workers"`
}

// Default returns the layout used when no config file is present.
func Default() Config {
	return Config{
		InputDir:      msgdoc.DefaultInputDir,
		OutputDir:     msgdoc.DefaultOutputDir,
		RootIndex:     msgdoc.DefaultRootIndexPath,
		MessagesIndex: msgdoc.DefaultMessagesIndexPath,
		RootTitle:     msgdoc.DefaultRootTitle,
		MessagesTitle: msgdoc.DefaultMessagesTitle,
		MaxDepth:      2,
		Workers:       1,
	}
}

// Load reads config from path on top of defaults.
// An empty path looks up DefaultPath and tolerates its absence; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML config on top of defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (cfg Config) Validate() error {
	var problems []error

	required := []struct {
		key   string
		value string
	}{
		{"input_dir", cfg.InputDir},
		{"output_dir", cfg.OutputDir},
		{"root_index", cfg.RootIndex},
		{"messages_index", cfg.MessagesIndex},
		{"root_title", cfg.RootTitle},
		{"messages_title", cfg.MessagesTitle},
	}
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			problems = append(problems, fmt.Errorf("%s is required", item.key))
		}
	}

	if cfg.MaxDepth < 1 {
		problems = append(problems, errors.New("max_depth must be greater than 0"))
	}

	if cfg.Workers < 0 {
		problems = append(problems, errors.New("workers must not be negative"))
	}

	return errors.Join(problems...)
}

// BuildOptions converts config into build options.
func (cfg Config) BuildOptions() msgdoc.BuildOptions {
	return msgdoc.BuildOptions{
		InputDir:          cfg.InputDir,
		OutputDir:         cfg.OutputDir,
		RootIndexPath:     cfg.RootIndex,
		MessagesIndexPath: cfg.MessagesIndex,
		RootTitle:         cfg.RootTitle,
		MessagesTitle:     cfg.MessagesTitle,
		MaxDepth:          cfg.MaxDepth,
		Workers:           cfg.Workers,
	}
}
