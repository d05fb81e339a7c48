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

// NewCheckCmd creates the check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		o        overrides
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report files that still use UIAlertView block calls",
		Long: `Check runs the same rewrite as the rewrite command but never writes.
It exits non-zero when any selected file still contains a legacy
invocation, including ones whose callback block never closes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())

			if err := o.apply(cmd, opts.Config); err != nil {
				return err
			}
			paths, err := absPaths(args)
			if err != nil {
				return err
			}

			op, err := operation.NewCheckOperation(opts.OperationOptions(ctx, paths, showDiff))
			if err != nil {
				return errors.Errorf("creating check operation: %w", err)
			}

			return operation.NewRunner(zerolog.Ctx(ctx), opts.Async).Run(ctx, op)
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "print the diff a rewrite would apply")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail a file when a callback block never closes")
	cmd.Flags().IntVar(&o.concurrency, "concurrency", 0, "files processed at once")

	return cmd
}
