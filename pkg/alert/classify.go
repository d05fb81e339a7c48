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

import "strings"

// 🔍 MatchResult describes a single classified line.
type MatchResult struct {
	IsAlertInvocation bool // line opens a legacy alert call
	HasInlineCallback bool // the call's tap block continues on later lines
}

// Classify decides whether line opens a legacy alert invocation and whether
// that invocation carries an inline callback.
func Classify(line string) MatchResult {
	if strings.TrimSpace(line) == "" {
		return MatchResult{}
	}
	if !invocationRe.MatchString(line) {
		return MatchResult{}
	}
	return MatchResult{
		IsAlertInvocation: true,
		HasInlineCallback: strings.Contains(line, CallbackMarker),
	}
}

// LeadingWhitespace returns the indentation prefix of line.
func LeadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, whitespace))]
}
