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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// 🔍 NewCheckOperation creates the operation that reports files still using
// the legacy API without touching them
func NewCheckOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &checkOperation{BaseOperation: base}, nil
}

// 🔍 checkOperation never writes
type checkOperation struct {
	BaseOperation
}

func (op *checkOperation) Name() string {
	return "check"
}

// 🏃 Execute returns ErrNeedsMigration when any file still holds a legacy
// invocation, rewritable or not. Other errors are left for the caller to report.
func (op *checkOperation) Execute(ctx context.Context) error {
	if err := op.run(ctx, op.Name(), false); err != nil {
		return err
	}

	files := op.StatusMgr.ListFiles(ctx)
	remaining := 0
	for _, info := range files {
		if info.Legacy > 0 {
			remaining++
		}
	}

	if remaining == 0 {
		op.Logger.Success("no legacy alert invocations found")
		return nil
	}

	msg := fmt.Sprintf("%d of %d files need migration", remaining, len(files))
	op.Logger.Error(msg)
	return errors.Errorf("%s: %w", msg, ErrNeedsMigration)
}
