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
package operation

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/alertmigrate/pkg/config"
	"github.com/walteh/alertmigrate/pkg/log"
	"github.com/walteh/alertmigrate/pkg/status"
	"github.com/walteh/alertmigrate/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrNeedsMigration is returned by the check operation when legacy invocations remain
var ErrNeedsMigration = errors.Base("files need migration")

// 🎯 Operation is a single command run over a source tree
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains everything an operation needs
type Options struct {
	// Config is the validated alertmigrate configuration
	Config *config.Config
	// Root is the directory files are selected from
	Root string
	// Paths narrows selection to these files or directories, either absolute
	// or relative to Root
	Paths []string
	// ShowDiff prints a line diff for every changed file
	ShowDiff bool
	// Files reads, writes, backs up and restores source files
	Files status.FileManager
	// StatusMgr tracks file outcomes and progress
	StatusMgr status.StatusReporter
	// Rewriter turns legacy content into modern content
	Rewriter text.TextRewriter
	// Logger prints per-file console lines
	Logger *log.Logger
	// UserLogger prints diffs and the run summary
	UserLogger *log.UserLogger
}

// 📦 BaseOperation holds the shared state of every operation
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation checks opts and fills in defaults
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Root == "" {
		return BaseOperation{}, errors.Errorf("root is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return BaseOperation{}, errors.Errorf("validating config: %w", err)
	}
	if opts.Files == nil || opts.StatusMgr == nil {
		mgr := status.New(opts.Root, nil)
		if opts.Files == nil {
			opts.Files = mgr
		}
		if opts.StatusMgr == nil {
			opts.StatusMgr = mgr
		}
	}
	if opts.Rewriter == nil {
		opts.Rewriter = text.NewAlertRewriter(opts.Config.EditorOptions())
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, zerolog.Disabled)
	}
	if opts.UserLogger == nil {
		opts.UserLogger = log.NewUserLogger(context.Background(), io.Discard)
	}
	return BaseOperation{Options: opts}, nil
}

// summary converts the tracked totals for the user logger
func (op *BaseOperation) summary() log.Summary {
	t := op.StatusMgr.Totals()
	return log.Summary{
		Files:        t.Files,
		Rewritten:    t.Rewritten,
		Pending:      t.Pending,
		Unchanged:    t.Unchanged,
		Failed:       t.Failed,
		Rewrites:     t.Rewrites,
		Unterminated: t.Unterminated,
	}
}
