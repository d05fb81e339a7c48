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

package text

import (
	"context"
	"io"

	"github.com/walteh/alertmigrate/pkg/alert"
	"gitlab.com/tozd/go/errors"
)

// AlertRewriter implements TextRewriter on top of the alert editor
type AlertRewriter struct {
	opts alert.Options
}

// NewAlertRewriter creates a new AlertRewriter
func NewAlertRewriter(opts alert.Options) *AlertRewriter {
	return &AlertRewriter{opts: opts}
}

// RewriteText implements TextRewriter.RewriteText
func (r *AlertRewriter) RewriteText(ctx context.Context, content io.Reader) (*RewriteResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &RewriteResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	buf := alert.SplitLines(string(originalContent))
	res, err := alert.NewEditor(r.opts).Run(ctx, buf)
	if err != nil {
		return nil, errors.Errorf("rewriting alerts: %w", err)
	}

	for _, rw := range res.Rewrites {
		if rw.HasCallback {
			result.CallbackCount++
		}
	}
	for _, line := range res.Unterminated {
		result.Unterminated = append(result.Unterminated, res.OriginalLine(line)+1)
	}

	if !res.Changed() {
		return result, nil
	}

	result.WasModified = true
	result.ReplacementCount = len(res.Rewrites)
	result.ModifiedContent = []byte(buf.String())
	return result, nil
}

// CountInvocations reports how many lines of content open a legacy invocation
func CountInvocations(content []byte) int {
	count := 0
	buf := alert.SplitLines(string(content))
	for i := 0; i < buf.Len(); i++ {
		if alert.Classify(buf.Line(i)).IsAlertInvocation {
			count++
		}
	}
	return count
}
