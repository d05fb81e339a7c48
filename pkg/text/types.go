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
)

// RewriteResult contains the results of rewriting one piece of content
type RewriteResult struct {
	// WasModified indicates if any invocation was rewritten
	WasModified bool

	// ReplacementCount is the number of invocations rewritten
	ReplacementCount int

	// CallbackCount is how many of those carried a callback block
	CallbackCount int

	// Unterminated holds the 1-based lines of invocations left untouched
	// because their callback block never closed
	Unterminated []int

	// OriginalContent is the content before rewriting
	OriginalContent []byte

	// ModifiedContent is the content after rewriting
	ModifiedContent []byte
}

// TextRewriter defines the interface for content rewriting
type TextRewriter interface {
	// RewriteText rewrites every legacy invocation in content
	RewriteText(ctx context.Context, content io.Reader) (*RewriteResult, error)
}
