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

// ErrUnterminatedBlock is returned when no closing line is found for a callback block.
var ErrUnterminatedBlock = errors.Base("unterminated callback block")

// 🧱 BlockSpan is a callback block found after an opening line.
type BlockSpan struct {
	StartLine    int    // opening line
	EndLine      int    // closing line, always > StartLine
	CapturedBody string // lines strictly between the two, each ending in "\n"
}

// FindBlockEnd scans the lines after start for the first non-empty line made
// of exactly indentWidth whitespace characters followed by "}];".
//
// The match is a heuristic: a line at the same indentation that happens to
// close a nested call with identical formatting ends the block early.
func FindBlockEnd(buf *Buffer, start, indentWidth int) (int, error) {
	closer, err := closePattern(indentWidth)
	if err != nil {
		return 0, err
	}
	for i := start + 1; i < buf.Len(); i++ {
		line := buf.Line(i)
		if strings.TrimSpace(line) == "" {
			continue
		}
		if closer.MatchString(line) {
			return i, nil
		}
	}
	return 0, errors.Errorf("line %d: %w", start+1, ErrUnterminatedBlock)
}

// CaptureBody concatenates the lines strictly between start and end, each
// followed by a newline.
func CaptureBody(buf *Buffer, start, end int) string {
	var sb strings.Builder
	for i := start + 1; i < end; i++ {
		sb.WriteString(buf.Line(i))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ScanBlock locates the callback block opened at start and captures its body.
func ScanBlock(buf *Buffer, start int) (BlockSpan, error) {
	indent := len(LeadingWhitespace(buf.Line(start)))
	end, err := FindBlockEnd(buf, start, indent)
	if err != nil {
		return BlockSpan{}, err
	}
	return BlockSpan{
		StartLine:    start,
		EndLine:      end,
		CapturedBody: CaptureBody(buf, start, end),
	}, nil
}
