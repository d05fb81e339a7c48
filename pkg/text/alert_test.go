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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/alertmigrate/pkg/alert"
)

const (
	legacyLine = `[UIAlertView showWithTitle:@"T" message:@"M" cancelButtonTitle:@"C" otherButtonTitles:nil tapBlock:nil];`
	modernLine = `[UIAlertController showAlertInViewController:self withTitle:@"T" message:@"M" cancelButtonTitle:@"C" destructiveButtonTitle:nil otherButtonTitles:nil tapBlock:nil];`
	legacyOpen = `[UIAlertView showWithTitle:@"T" message:@"M" cancelButtonTitle:@"C" otherButtonTitles:nil tapBlock:^(UIAlertView *alertView, NSInteger buttonIndex) {`
	modernOpen = `[UIAlertController showAlertInViewController:self withTitle:@"T" message:@"M" cancelButtonTitle:@"C" destructiveButtonTitle:nil otherButtonTitles:nil tapBlock:^(UIAlertController *controller, UIAlertAction *action, NSInteger buttonIndex) {`
)

func TestAlertRewriter_RewriteText(t *testing.T) {
	tests := []struct {
		name             string
		opts             alert.Options
		content          string
		want             string
		wantCount        int
		wantCallbacks    int
		wantUnterminated []int
		wantError        string
		wantModified     bool
	}{
		{
			name:         "single_line",
			content:      "    " + legacyLine + "\n",
			want:         "    " + modernLine + "\n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name: "callback_block",
			content: "- (void)f {\n" +
				"    " + legacyOpen + "\n" +
				"        if (buttonIndex == 1) {\n" +
				"            [self go];\n" +
				"        }\n" +
				"    }];\n" +
				"}\n",
			want: "- (void)f {\n" +
				"    " + modernOpen + "\n" +
				"        if (buttonIndex == 1) {\n" +
				"            [self go];\n" +
				"        }\n" +
				"    }];\n" +
				"}\n",
			wantCount:     1,
			wantCallbacks: 1,
			wantModified:  true,
		},
		{
			name:          "crlf_callback_block",
			content:       "  " + legacyOpen + "\r\n    x();\r\n  }];\r\n",
			want:          "  " + modernOpen + "\r\n    x();\r\n  }];\r\n",
			wantCount:     1,
			wantCallbacks: 1,
			wantModified:  true,
		},
		{
			name:         "crlf_single_line",
			content:      "a\r\n  " + legacyLine + "\r\nb\r\n",
			want:         "a\r\n  " + modernLine + "\r\nb\r\n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:             "unterminated_reported",
			content:          legacyLine + "\n\n  " + legacyOpen + "\n    x();\n",
			want:             modernLine + "\n\n  " + legacyOpen + "\n    x();\n",
			wantCount:        1,
			wantUnterminated: []int{3},
			wantModified:     true,
		},
		{
			name:      "strict_unterminated",
			opts:      alert.Options{Strict: true},
			content:   legacyOpen + "\n",
			wantError: "unterminated callback block",
		},
		{
			name:    "no_match",
			content: "int main() { return 0; }\n",
			want:    "int main() { return 0; }\n",
		},
		{
			name:    "empty_content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewriter := NewAlertRewriter(tt.opts)
			result, err := rewriter.RewriteText(context.Background(), strings.NewReader(tt.content))

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantCallbacks, result.CallbackCount)
			assert.Equal(t, tt.wantUnterminated, result.Unterminated)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestCountInvocations(t *testing.T) {
	content := legacyLine + "\n" + modernLine + "\n  " + legacyOpen + "\n  }];\n"
	assert.Equal(t, 2, CountInvocations([]byte(content)))
	assert.Equal(t, 0, CountInvocations(nil))
}
