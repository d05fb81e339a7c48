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
package main

import (
	"context"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/alertmigrate/cmd/alertmigrate/commands"
	"github.com/walteh/alertmigrate/cmd/alertmigrate/opts"
	"github.com/walteh/alertmigrate/pkg/config"
	"github.com/walteh/alertmigrate/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are shared by every command
type rootFlags struct {
	configFile string
	root       string
	debug      bool
	async      bool
}

// newRootCmd creates the root command with every subcommand attached
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "alertmigrate",
		Short: "Migrate UIAlertView block calls to UIAlertController",
		Long: `alertmigrate finds UIAlertView showWithTitle:...tapBlock: calls in
Objective-C sources and rewrites them into the equivalent UIAlertController
showAlertInViewController: calls, carrying callback blocks over verbatim.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cmd.ErrOrStderr(), flags.debug)
			ctx, err := newRootOpts(ctx, cmd, flags, rootOpts)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewRewriteCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		newVersionCmd(),
	)

	return cmd
}

// newRootOpts loads the config into rootOpts and returns ctx carrying the
// console logger
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags, rootOpts *opts.RootOpts) (context.Context, error) {
	// A missing file is fine only when the user did not ask for one
	load := config.LoadOptional
	if cmd.Flags().Changed("config") {
		load = config.Load
	}
	cfg, err := load(ctx, flags.configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("loaded config")

	root, err := filepath.Abs(flags.root)
	if err != nil {
		return nil, errors.Errorf("resolving root: %w", err)
	}

	// the console logger mirrors its lines to zerolog only when debugging
	level := zerolog.Disabled
	if flags.debug {
		level = zerolog.DebugLevel
	}

	rootOpts.Config = cfg
	rootOpts.Root = root
	rootOpts.Async = flags.async
	rootOpts.UserLogger = log.NewUserLogger(ctx, cmd.OutOrStdout())
	return log.NewContext(ctx, log.New(cmd.OutOrStdout(), level)), nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultFile, "config file path (.yaml, .yml, .json or .hcl)")
	cmd.PersistentFlags().StringVarP(&flags.root, "root", "C", ".", "directory files are selected from")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.async, "async", false, "return as soon as the run is interrupted")
}

// setupLogging configures zerolog based on flags and returns a context carrying the logger
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx)
}

