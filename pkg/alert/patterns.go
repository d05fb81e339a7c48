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
	"fmt"
	"regexp"
	"sync"
)

// 🔤 Markers of the legacy invocation, in the order they appear on the opening line.
const (
	LegacyType     = "UIAlertView"
	LegacySelector = "showWithTitle:"
	MarkerMessage  = "message:"
	MarkerCancel   = "cancelButtonTitle:"
	MarkerOther    = "otherButtonTitles:"
	MarkerTapBlock = "tapBlock:"

	// CallbackMarker flags an opening line whose tap block continues on later lines.
	CallbackMarker = "{"

	// BlockCloseToken ends a callback block: closing brace, closing bracket, terminator.
	BlockCloseToken = "}];"
)

// whitespace is the set matched by `\s` in RE2. Indentation is measured with
// the same set so widths agree with the patterns below.
const whitespace = " \t\n\f\r"

// invocationPattern matches the opening line of a legacy alert call. The
// patterns are a closed set tuned to the legacy code base, not a grammar.
const invocationPattern = `^(\s*)\[.*` + LegacyType + `.*` + LegacySelector +
	`.*` + MarkerMessage + `.*` + MarkerCancel + `.*` + MarkerOther + `.*` + MarkerTapBlock

// closePatternFormat is formatted with the indentation width of the opening line.
const closePatternFormat = `^\s{%d}\}\];`

var (
	invocationRe = mustCompile(invocationPattern)

	// closers caches compiled close patterns by indentation width
	closers sync.Map
)

// ⚠️ PatternError reports a structural pattern that failed to compile.
// It is a programming error and ends the pass it occurs in.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("compiling pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

func mustCompile(pattern string) *regexp.Regexp {
	re, err := compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// closePattern returns the pattern for a block close at exactly indentWidth
// leading whitespace characters.
func closePattern(indentWidth int) (*regexp.Regexp, error) {
	if re, ok := closers.Load(indentWidth); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := compile(fmt.Sprintf(closePatternFormat, indentWidth))
	if err != nil {
		return nil, err
	}
	actual, _ := closers.LoadOrStore(indentWidth, re)
	return actual.(*regexp.Regexp), nil
}
