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
)

// ✏️ NewRewriteOperation creates the operation that rewrites files in place
func NewRewriteOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &rewriteOperation{BaseOperation: base}, nil
}

// ✏️ rewriteOperation rewrites every selected file, or only reports with DryRun
type rewriteOperation struct {
	BaseOperation
}

func (op *rewriteOperation) Name() string {
	return "rewrite"
}

// 🏃 Execute runs the rewrite operation
func (op *rewriteOperation) Execute(ctx context.Context) error {
	if err := op.run(ctx, op.Name(), !op.Config.DryRun); err != nil {
		return err
	}

	t := op.StatusMgr.Totals()
	if op.Config.DryRun {
		op.Logger.Successf("dry run: %d invocations in %d files would be rewritten", t.Rewrites, t.Pending)
		return nil
	}
	op.Logger.Successf("rewrote %d invocations in %d files", t.Rewrites, t.Rewritten)
	return nil
}
