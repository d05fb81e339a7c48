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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/alertmigrate/cmd/alertmigrate/opts"
	"github.com/walteh/alertmigrate/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRewriteCmd creates the rewrite command
func NewRewriteCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		o        overrides
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "rewrite [paths...]",
		Short: "Rewrite UIAlertView block calls to UIAlertController",
		Long: `Rewrite replaces every legacy UIAlertView showWithTitle:...tapBlock: call
in the selected files with the equivalent UIAlertController call.
It will:
1. Select files from the include and exclude patterns (or the given paths)
2. Rewrite each invocation, carrying any callback block over verbatim
3. Write changed files back atomically, optionally keeping a .bak copy
4. Report invocations whose callback block never closes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "rewrite").Logger().WithContext(cmd.Context())

			if err := o.apply(cmd, opts.Config); err != nil {
				return err
			}
			paths, err := absPaths(args)
			if err != nil {
				return err
			}

			op, err := operation.NewRewriteOperation(opts.OperationOptions(ctx, paths, showDiff))
			if err != nil {
				return errors.Errorf("creating rewrite operation: %w", err)
			}

			if err := operation.NewRunner(zerolog.Ctx(ctx), opts.Async).Run(ctx, op); err != nil {
				return errors.Errorf("rewriting files: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "report what would change without writing")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a diff for every changed file")
	cmd.Flags().BoolVar(&o.backup, "backup", false, "keep a .bak copy of every rewritten file")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail a file when a callback block never closes")
	cmd.Flags().StringVar(&o.presenter, "presenter", "", "view controller expression passed to the new call (default self)")
	cmd.Flags().IntVar(&o.concurrency, "concurrency", 0, "files processed at once")

	return cmd
}
