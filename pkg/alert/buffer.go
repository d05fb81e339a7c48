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
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📄 Buffer is an ordered, mutable sequence of source lines. An element may
// hold embedded newlines once a multi-line block has been collapsed into it.
//
// A Buffer is owned by a single editing pass and is not safe for concurrent use.
type Buffer struct {
	lines []string
}

// NewBuffer creates a buffer holding a copy of lines.
func NewBuffer(lines []string) *Buffer {
	return &Buffer{lines: append([]string(nil), lines...)}
}

// SplitLines creates a buffer from text split on "\n". A trailing newline
// yields a final empty line, so String round-trips the input.
func SplitLines(text string) *Buffer {
	return &Buffer{lines: strings.Split(text, "\n")}
}

func (b *Buffer) Len() int {
	return len(b.lines)
}

func (b *Buffer) Line(i int) string {
	return b.lines[i]
}

// Lines returns a copy of the current lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String joins the lines with "\n".
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// Replace deletes lines start through end inclusive and inserts line at start.
// The buffer shrinks by end-start.
func (b *Buffer) Replace(start, end int, line string) error {
	if start < 0 || end < start || end >= len(b.lines) {
		return errors.Errorf("replace range [%d, %d] out of bounds for %d lines", start, end, len(b.lines))
	}
	b.lines[start] = line
	b.lines = append(b.lines[:start+1], b.lines[end+1:]...)
	return nil
}
