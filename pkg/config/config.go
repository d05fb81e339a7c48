// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/alertmigrate/pkg/alert"
	"gitlab.com/tozd/go/errors"
)

// 📁 DefaultFile is the config file looked up when none is given
const DefaultFile = ".alertmigrate.yaml"

// DefaultConcurrency is the number of files processed at once
const DefaultConcurrency = 4

// DefaultInclude selects Objective-C sources
var DefaultInclude = []string{"**/*.m", "**/*.mm"}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	Include     []string `json:"include,omitempty" yaml:"include,omitempty"`         // doublestar patterns selecting files
	Exclude     []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`         // doublestar patterns removed from the selection
	Presenter   string   `json:"presenter,omitempty" yaml:"presenter,omitempty"`     // view controller passed to the modern call
	Strict      bool     `json:"strict,omitempty" yaml:"strict,omitempty"`           // fail on unterminated callback blocks
	Backup      bool     `json:"backup,omitempty" yaml:"backup,omitempty"`           // keep a .bak copy of rewritten files
	DryRun      bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`         // report without writing
	Concurrency int      `json:"concurrency,omitempty" yaml:"concurrency,omitempty"` // files processed at once
}

// 🏭 Default returns a config with every default applied
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults
func LoadOptional(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		return Default(), nil
	}
	return Load(ctx, path)
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	for _, pattern := range append(append([]string{}, cfg.Include...), cfg.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid pattern %q", pattern)
		}
	}
	if cfg.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}

	// Set defaults
	if len(cfg.Include) == 0 {
		cfg.Include = append([]string(nil), DefaultInclude...)
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	cfg.Presenter = strings.TrimSpace(cfg.Presenter)
	if cfg.Presenter == "" {
		cfg.Presenter = alert.DefaultPresenter
	}

	return nil
}

// EditorOptions returns the options for the alert editor
func (cfg *Config) EditorOptions() alert.Options {
	return alert.Options{
		Presenter: cfg.Presenter,
		Strict:    cfg.Strict,
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("include=%s exclude=%s presenter=%s strict=%t",
		strings.Join(cfg.Include, ","), strings.Join(cfg.Exclude, ","), cfg.Presenter, cfg.Strict)
}
