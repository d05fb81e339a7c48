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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestParserRegistration tests the parser registration system
func TestParserRegistration(t *testing.T) {
	// Save original parsers
	originalParsers := parsers
	defer func() {
		parsers = originalParsers
	}()

	// Reset parsers
	parsers = nil

	// Create mock parser
	mockParser := &struct {
		Parser
		canParse bool
	}{
		canParse: true,
	}

	// Test registration
	Register(mockParser)
	assert.Len(t, parsers, 1, "should have 1 parser registered")
	assert.Equal(t, mockParser, parsers[0], "registered parser should match")
}

// 🧪 TestParserSelection tests parser selection by file extension
func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{
			name:     "yaml_file",
			filename: ".alertmigrate.yaml",
			want:     &YAMLParser{},
		},
		{
			name:     "yml_file",
			filename: "config.yml",
			want:     &YAMLParser{},
		},
		{
			name:     "hcl_file",
			filename: "config.hcl",
			want:     &HCLParser{},
		},
		{
			name:     "json_file",
			filename: "Config.JSON",
			want:     &JSONParser{},
		},
		{
			name:     "unknown_extension",
			filename: "config.txt",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "should return nil for unknown extension")
				return
			}
			require.NotNil(t, got, "should return a parser")
			assert.IsType(t, tt.want, got, "should return correct parser type")
		})
	}
}

// 🧪 TestHCLParsing tests HCL config parsing
func TestHCLParsing(t *testing.T) {
	t.Setenv("ALERTMIGRATE_TEST_PRESENTER", "rootViewController")

	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_hcl",
			config: `
include     = ["**/*.m", "**/*.mm"]
exclude     = ["Pods/**"]
backup      = true
dry_run     = true
concurrency = 8
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"**/*.m", "**/*.mm"}, cfg.Include)
				assert.Equal(t, []string{"Pods/**"}, cfg.Exclude)
				assert.True(t, cfg.Backup)
				assert.True(t, cfg.DryRun)
				assert.Equal(t, 8, cfg.Concurrency)
			},
		},
		{
			name:   "env_interpolation",
			config: `presenter = "self.${env.ALERTMIGRATE_TEST_PRESENTER}"`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "self.rootViewController", cfg.Presenter)
			},
		},
		{
			name: "invalid_hcl_syntax",
			config: `
strict =
`,
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name: "invalid_block_type",
			config: `
unknown_block {
  foo = "bar"
}`,
			wantErr:     true,
			errContains: "decoding HCL",
		},
	}

	parser := &HCLParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(ctx, []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
