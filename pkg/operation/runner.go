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
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	logger *zerolog.Logger
	async  bool
}

// 🏗️ NewRunner creates a new runner. An async runner returns as soon as ctx
// is cancelled instead of waiting for the operation to notice.
func NewRunner(logger *zerolog.Logger, async bool) *OperationRunner {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &OperationRunner{
		logger: logger,
		async:  async,
	}
}

// 🏃 Run executes an operation
func (r *OperationRunner) Run(ctx context.Context, op Operation) error {
	start := time.Now()
	r.logger.Debug().Str("operation", op.Name()).Bool("async", r.async).Msg("running operation")

	var err error
	if r.async {
		err = r.runAsync(ctx, op)
	} else {
		err = r.runSync(ctx, op)
	}

	r.logger.Debug().
		Str("operation", op.Name()).
		Dur("elapsed", time.Since(start)).
		Bool("ok", err == nil).
		Msg("operation finished")
	return err
}

// 🔄 runSync runs an operation synchronously
func (r *OperationRunner) runSync(ctx context.Context, op Operation) error {
	if err := op.Execute(ctx); err != nil {
		return errors.Errorf("%s: %w", op.Name(), err)
	}
	return nil
}

// ⚡ runAsync runs an operation asynchronously
func (r *OperationRunner) runAsync(ctx context.Context, op Operation) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- op.Execute(ctx)
	}()

	select {
	case <-ctx.Done():
		return errors.Errorf("%s cancelled: %w", op.Name(), ctx.Err())
	case err := <-errCh:
		if err != nil {
			return errors.Errorf("%s: %w", op.Name(), err)
		}
		return nil
	}
}
