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

package alert

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures an Editor.
type Options struct {
	Presenter string // view controller expression, defaults to DefaultPresenter
	Strict    bool   // fail the pass on an unterminated block instead of skipping it
}

// ✏️ Rewrite records one applied replacement, in buffer indices at the time it was applied.
type Rewrite struct {
	StartLine   int
	EndLine     int
	HasCallback bool
}

// 📊 Result summarizes a completed pass.
type Result struct {
	Rewrites     []Rewrite
	Unterminated []int // opening lines left untouched because their block never closed
	Passes       int
}

// Changed reports whether any line was rewritten.
func (r *Result) Changed() bool {
	return len(r.Rewrites) > 0
}

// OriginalLine maps a buffer index from the finished pass back to the index
// the same line had before any rewrite.
func (r *Result) OriginalLine(i int) int {
	orig := i
	for _, rw := range r.Rewrites {
		if rw.StartLine < i {
			orig += rw.EndLine - rw.StartLine
		}
	}
	return orig
}

// CompletionFunc receives the outcome of Apply exactly once.
type CompletionFunc func(*Result, error)

// 🏭 Editor rewrites every legacy alert invocation in a buffer.
type Editor struct {
	opts     Options
	rewriter Rewriter
}

// NewEditor creates an editor with the given options.
func NewEditor(opts Options) *Editor {
	return &Editor{
		opts:     opts,
		rewriter: Rewriter{Presenter: opts.Presenter},
	}
}

// Apply runs the editor over buf and reports the outcome to done.
func (e *Editor) Apply(ctx context.Context, buf *Buffer, done CompletionFunc) {
	done(e.Run(ctx, buf))
}

// Run rewrites buf in place until a full scan finds nothing left to rewrite.
// Every replacement shifts the indices below it, so the scan restarts from
// the first line after each one.
func (e *Editor) Run(ctx context.Context, buf *Buffer) (*Result, error) {
	res := &Result{}

	// Lines already rewritten or skipped as unterminated. Each pass matches
	// strictly below every visited index, so edits never shift these.
	visited := map[int]bool{}

	for {
		res.Passes++
		applied, err := e.pass(ctx, buf, visited, res)
		if err != nil {
			return nil, err
		}
		if !applied {
			zerolog.Ctx(ctx).Debug().
				Int("rewrites", len(res.Rewrites)).
				Int("unterminated", len(res.Unterminated)).
				Int("passes", res.Passes).
				Msg("alert rewrite reached fixed point")
			return res, nil
		}
	}
}

// pass scans from the top and applies the first rewrite it finds.
func (e *Editor) pass(ctx context.Context, buf *Buffer, visited map[int]bool, res *Result) (bool, error) {
	logger := zerolog.Ctx(ctx)

	for i := 0; i < buf.Len(); i++ {
		if visited[i] {
			continue
		}
		line := buf.Line(i)
		match := Classify(line)
		if !match.IsAlertInvocation {
			continue
		}

		leading := LeadingWhitespace(line)
		fields := ExtractFields(line)
		end := i
		var body *string

		if match.HasInlineCallback {
			span, err := ScanBlock(buf, i)
			if errors.Is(err, ErrUnterminatedBlock) {
				if e.opts.Strict {
					return false, errors.Errorf("rewriting alert: %w", err)
				}
				logger.Warn().Int("line", i+1).Msg("callback block never closes, leaving invocation untouched")
				visited[i] = true
				res.Unterminated = append(res.Unterminated, i)
				continue
			}
			if err != nil {
				return false, errors.Errorf("scanning callback block at line %d: %w", i+1, err)
			}
			end = span.EndLine
			body = &span.CapturedBody
		}

		replacement := e.rewriter.build(leading, fields, body, carriageReturn(line), carriageReturn(buf.Line(end)))
		if err := buf.Replace(i, end, replacement); err != nil {
			return false, errors.Errorf("replacing alert at line %d: %w", i+1, err)
		}
		visited[i] = true
		res.Rewrites = append(res.Rewrites, Rewrite{StartLine: i, EndLine: end, HasCallback: body != nil})

		logger.Debug().
			Int("start", i+1).
			Int("end", end+1).
			Bool("callback", body != nil).
			Msg("rewrote alert invocation")
		return true, nil
	}
	return false, nil
}

// carriageReturn returns the "\r" a CRLF line keeps after splitting on "\n".
func carriageReturn(line string) string {
	if strings.HasSuffix(line, "\r") {
		return "\r"
	}
	return ""
}
