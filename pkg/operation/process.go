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
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/alertmigrate/pkg/log"
	"github.com/walteh/alertmigrate/pkg/status"
	"github.com/walteh/alertmigrate/pkg/text"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📄 fileResult is the outcome of processing one file
type fileResult struct {
	info status.FileInfo
	diff string
}

// 🏃 run processes every selected file, writing changes back when write is set.
// Files are processed concurrently but reported in path order; outcomes end
// up in StatusMgr.
func (op *BaseOperation) run(ctx context.Context, name string, write bool) error {
	files, err := SelectFiles(ctx, op.Root, op.Config, op.Paths)
	if err != nil {
		return errors.Errorf("selecting files: %w", err)
	}

	op.Logger.Header(fmt.Sprintf("%s • %d files", name, len(files)))
	if len(files) == 0 {
		op.Logger.Infof("no files under %s match %s", op.Root, strings.Join(op.Config.Include, ", "))
	}

	op.Logger.StartRunOperation(ctx, log.RunOperation{Name: name, Root: op.Root, DryRun: !write})
	defer op.Logger.EndRunOperation(ctx)

	op.StatusMgr.StartOperation(ctx, len(files))
	defer op.StatusMgr.FinishOperation(ctx)

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(op.Config.Concurrency)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = op.processFile(gctx, path, write)
			op.StatusMgr.UpdateProgress(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Errorf("processing files: %w", err)
	}

	var firstErr error
	failed := 0
	for _, r := range results {
		op.StatusMgr.TrackFile(ctx, r.info)
		op.Logger.LogFileOperation(ctx, log.FileOperation{
			Path:         r.info.Path,
			Status:       r.info.Status.String(),
			Rewrites:     r.info.Rewrites,
			Unterminated: r.info.Unterminated,
			IsRewritten:  r.info.Status == status.StatusRewritten,
			IsPending:    r.info.Status == status.StatusPending,
			IsFailed:     r.info.Status == status.StatusFailed,
		})
		if len(r.info.Unterminated) > 0 {
			op.Logger.Warningf("%s: callback block never closes, invocation at line %s left untouched",
				r.info.Path, joinInts(r.info.Unterminated))
		}
		if op.ShowDiff {
			op.UserLogger.LogDiff(r.info.Path, r.diff)
		}
		if r.info.Error != nil {
			failed++
			if firstErr == nil {
				firstErr = r.info.Error
			}
		}
	}

	op.Logger.LogNewline()
	if err := op.UserLogger.LogSummary(op.summary()); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("printing summary")
	}

	if failed > 0 {
		return errors.Errorf("%d of %d files failed: %w", failed, len(files), firstErr)
	}
	return nil
}

// 📄 processFile rewrites one file and, when write is set, replaces it on disk
func (op *BaseOperation) processFile(ctx context.Context, path string, write bool) fileResult {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()
	ctx = logger.WithContext(ctx)

	fail := func(err error) fileResult {
		logger.Debug().Err(err).Msg("file failed")
		return fileResult{info: status.FileInfo{Path: path, Status: status.StatusFailed, Error: err}}
	}

	content, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		return fail(errors.Errorf("%s: %w", path, err))
	}

	res, err := op.Rewriter.RewriteText(ctx, bytes.NewReader(content))
	if err != nil {
		return fail(errors.Errorf("%s: %w", path, err))
	}

	info := status.FileInfo{
		Path:         path,
		Status:       status.StatusUnchanged,
		Legacy:       text.CountInvocations(content),
		Rewrites:     res.ReplacementCount,
		Unterminated: res.Unterminated,
		Checksum:     status.Checksum(res.ModifiedContent),
	}
	if !res.WasModified {
		return fileResult{info: info}
	}

	var diff string
	if op.ShowDiff {
		diff = lineDiff(path, string(res.OriginalContent), string(res.ModifiedContent))
	}

	if !write {
		info.Status = status.StatusPending
		return fileResult{info: info, diff: diff}
	}

	if op.Config.Backup {
		if err := op.Files.BackupFile(ctx, path); err != nil {
			return fail(errors.Errorf("%s: %w", path, err))
		}
	}
	if err := op.writeVerified(ctx, path, res.ModifiedContent, info.Checksum); err != nil {
		return fail(errors.Errorf("%s: %w", path, op.rollback(ctx, path, err)))
	}

	info.Status = status.StatusRewritten
	logger.Debug().Int("rewrites", info.Rewrites).Int("callbacks", res.CallbackCount).Msg("rewrote file")
	return fileResult{info: info, diff: diff}
}

// writeVerified writes content and reads it back, failing unless the file
// on disk hashes to checksum
func (op *BaseOperation) writeVerified(ctx context.Context, path string, content []byte, checksum string) error {
	if err := op.Files.WriteFileAtomic(ctx, path, content); err != nil {
		return err
	}
	written, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		return errors.Errorf("verifying write: %w", err)
	}
	if got := status.Checksum(written); got != checksum {
		return errors.Errorf("verifying write: checksum %s, want %s", got, checksum)
	}
	return nil
}

// rollback puts the backup back after a failed write. Without a backup there
// is nothing to restore and cause is returned as is.
func (op *BaseOperation) rollback(ctx context.Context, path string, cause error) error {
	if !op.Config.Backup {
		return cause
	}
	if err := op.Files.RestoreFile(ctx, path); err != nil {
		return errors.Errorf("%w (restoring backup: %v)", cause, err)
	}
	zerolog.Ctx(ctx).Debug().Msg("restored backup after failed write")
	return errors.Errorf("%w (original restored)", cause)
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
