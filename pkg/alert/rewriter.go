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

// 🎯 Target invocation tokens.
const (
	ModernInvocation = "[UIAlertController showAlertInViewController:"

	// DefaultPresenter is the view controller expression passed to the modern call.
	DefaultPresenter = "self"

	modernCallback = "^(UIAlertController *controller, UIAlertAction *action, NSInteger buttonIndex) {"
)

// 🔄 Rewriter builds the modern replacement for a legacy invocation.
type Rewriter struct {
	Presenter string // defaults to DefaultPresenter
}

// BuildReplacement renders the replacement with the default presenter.
func BuildReplacement(leading string, fields ExtractedFields, callbackBody *string) string {
	return Rewriter{}.BuildReplacement(leading, fields, callbackBody)
}

// BuildReplacement renders the modern call indented by leading. A nil
// callbackBody produces a nil tap block; otherwise the body is wrapped
// verbatim in a new block literal closed at the same indentation.
func (r Rewriter) BuildReplacement(leading string, fields ExtractedFields, callbackBody *string) string {
	return r.build(leading, fields, callbackBody, "", "")
}

// build is BuildReplacement with openEnd appended to the opening line and
// closeEnd to the closing line, so a "\r" carried by the legacy lines survives.
func (r Rewriter) build(leading string, fields ExtractedFields, callbackBody *string, openEnd, closeEnd string) string {
	presenter := r.Presenter
	if presenter == "" {
		presenter = DefaultPresenter
	}

	var sb strings.Builder
	sb.WriteString(leading)
	sb.WriteString(ModernInvocation)
	sb.WriteString(presenter)
	sb.WriteString(" withTitle:")
	sb.WriteString(fields.Title)
	sb.WriteString(MarkerMessage)
	sb.WriteString(fields.Message)
	sb.WriteString(MarkerCancel)
	sb.WriteString(fields.CancelLabel)
	// the legacy call has no destructive button
	sb.WriteString("destructiveButtonTitle:nil ")
	sb.WriteString(MarkerOther)
	sb.WriteString(fields.OtherLabels)
	sb.WriteString(MarkerTapBlock)

	if callbackBody == nil {
		sb.WriteString("nil];")
		sb.WriteString(openEnd)
		return sb.String()
	}

	sb.WriteString(modernCallback)
	sb.WriteString(openEnd)
	sb.WriteByte('\n')
	sb.WriteString(*callbackBody)
	sb.WriteString(leading)
	sb.WriteString(BlockCloseToken)
	sb.WriteString(closeEnd)
	return sb.String()
}
