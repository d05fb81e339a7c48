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
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestFindBlockEnd(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		start     int
		indent    int
		want      int
		wantError error
	}{
		{
			name: "closes_at_same_indent",
			lines: []string{
				callbackAlert,
				`      NSLog(@"tapped");`,
				`  }];`,
			},
			indent: 2,
			want:   2,
		},
		{
			name: "skips_deeper_closers",
			lines: []string{
				callbackAlert,
				`      [foo bar:^{`,
				`      }];`,
				`  }];`,
			},
			indent: 2,
			want:   3,
		},
		{
			name: "skips_shallower_closers",
			lines: []string{
				callbackAlert,
				`}];`,
				`  }];`,
			},
			indent: 2,
			want:   2,
		},
		{
			name: "skips_empty_lines",
			lines: []string{
				callbackAlert,
				``,
				`   `,
				`  }];  // done`,
			},
			indent: 2,
			want:   3,
		},
		{
			name: "starts_after_start_line",
			lines: []string{
				`}];`,
				`[UIAlertView showWithTitle:@"T" message:@"M" cancelButtonTitle:@"C" otherButtonTitles:nil tapBlock:^(UIAlertView *a, NSInteger i) {`,
				`}];`,
			},
			start:  1,
			indent: 0,
			want:   2,
		},
		{
			name: "unterminated",
			lines: []string{
				callbackAlert,
				`      NSLog(@"tapped");`,
				`    }];`,
			},
			indent:    2,
			wantError: ErrUnterminatedBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindBlockEnd(NewBuffer(tt.lines), tt.start, tt.indent)
			if tt.wantError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Greater(t, got, tt.start, "end should be strictly after start")
		})
	}
}

func TestFindBlockEndPatternError(t *testing.T) {
	buf := NewBuffer([]string{callbackAlert, `  }];`})

	// RE2 caps repeat counts at 1000
	_, err := FindBlockEnd(buf, 0, 1001)
	require.Error(t, err)

	var perr *PatternError
	require.True(t, errors.As(err, &perr), "error should be a PatternError")
	assert.Contains(t, perr.Pattern, "1001")
}

func TestScanBlock(t *testing.T) {
	buf := NewBuffer([]string{
		`x`,
		callbackAlert,
		`      NSLog(@"tapped");`,
		``,
		`      [self dismiss];`,
		`  }];`,
		`y`,
	})

	span, err := ScanBlock(buf, 1)
	require.NoError(t, err)
	assert.Equal(t, BlockSpan{
		StartLine:    1,
		EndLine:      5,
		CapturedBody: "      NSLog(@\"tapped\");\n\n      [self dismiss];\n",
	}, span)
}
