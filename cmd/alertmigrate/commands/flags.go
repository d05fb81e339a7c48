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
package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/walteh/alertmigrate/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// overrides holds the flags that can replace config file values
type overrides struct {
	dryRun      bool
	backup      bool
	strict      bool
	presenter   string
	concurrency int
}

// apply copies every flag the user set onto cfg and validates the result
func (o *overrides) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("dry-run") {
		cfg.DryRun = o.dryRun
	}
	if flags.Changed("backup") {
		cfg.Backup = o.backup
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if flags.Changed("presenter") {
		cfg.Presenter = o.presenter
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}
	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating flags: %w", err)
	}
	return nil
}

// absPaths resolves command line paths against the working directory
func absPaths(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, errors.Errorf("resolving %s: %w", arg, err)
		}
		paths = append(paths, abs)
	}
	return paths, nil
}
