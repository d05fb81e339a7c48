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
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	simpleAlert   = `  [UIAlertView showWithTitle:@"T" message:@"M" cancelButtonTitle:@"C" otherButtonTitles:@"O" tapBlock:nil];`
	callbackAlert = `  [UIAlertView showWithTitle:@"T" message:@"M" cancelButtonTitle:@"C" otherButtonTitles:@[@"O"] tapBlock:^(UIAlertView *alertView, NSInteger buttonIndex) {`
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want MatchResult
	}{
		{
			name: "empty_line",
			line: "",
		},
		{
			name: "whitespace_only",
			line: " \t  ",
		},
		{
			name: "unrelated_code",
			line: `    NSLog(@"hello");`,
		},
		{
			name: "simple_invocation",
			line: simpleAlert,
			want: MatchResult{IsAlertInvocation: true},
		},
		{
			name: "invocation_with_callback",
			line: callbackAlert,
			want: MatchResult{IsAlertInvocation: true, HasInlineCallback: true},
		},
		{
			name: "tab_indented",
			line: "\t\t" + `[UIAlertView showWithTitle:nil message:@"M" cancelButtonTitle:@"OK" otherButtonTitles:nil tapBlock:nil];`,
			want: MatchResult{IsAlertInvocation: true},
		},
		{
			name: "missing_tap_block",
			line: `[UIAlertView showWithTitle:@"T" message:@"M" cancelButtonTitle:@"C" otherButtonTitles:@"O"];`,
		},
		{
			name: "markers_out_of_order",
			line: `[UIAlertView showWithTitle:@"T" cancelButtonTitle:@"C" message:@"M" otherButtonTitles:@"O" tapBlock:nil];`,
		},
		{
			name: "not_at_line_start",
			line: `id x = [UIAlertView showWithTitle:@"T" message:@"M" cancelButtonTitle:@"C" otherButtonTitles:@"O" tapBlock:nil];`,
		},
		{
			name: "already_modern",
			line: `  [UIAlertController showAlertInViewController:self withTitle:@"T" message:@"M" cancelButtonTitle:@"C" destructiveButtonTitle:nil otherButtonTitles:@"O" tapBlock:nil];`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestLeadingWhitespace(t *testing.T) {
	assert.Equal(t, "", LeadingWhitespace("foo"))
	assert.Equal(t, "  ", LeadingWhitespace("  foo"))
	assert.Equal(t, "\t \t", LeadingWhitespace("\t \tfoo  "))
	assert.Equal(t, "   ", LeadingWhitespace("   "))
}
