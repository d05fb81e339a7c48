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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	simpleModern   = `  [UIAlertController showAlertInViewController:self withTitle:@"T" message:@"M" cancelButtonTitle:@"C" destructiveButtonTitle:nil otherButtonTitles:@"O" tapBlock:nil];`
	callbackModern = `  [UIAlertController showAlertInViewController:self withTitle:@"T" message:@"M" cancelButtonTitle:@"C" destructiveButtonTitle:nil otherButtonTitles:@[@"O"] tapBlock:^(UIAlertController *controller, UIAlertAction *action, NSInteger buttonIndex) {`
)

func TestEditorRun(t *testing.T) {
	tests := []struct {
		name             string
		opts             Options
		lines            []string
		want             []string
		wantRewrites     []Rewrite
		wantUnterminated []int
		wantError        string
	}{
		{
			name:  "single_line_invocation",
			lines: []string{`- (void)show {`, simpleAlert, `}`},
			want:  []string{`- (void)show {`, simpleModern, `}`},
			wantRewrites: []Rewrite{
				{StartLine: 1, EndLine: 1},
			},
		},
		{
			name: "callback_block_collapses",
			lines: []string{
				callbackAlert,
				`      NSLog(@"tapped %ld", (long)buttonIndex);`,
				`      [self dismiss];`,
				`  }];`,
			},
			want: []string{
				callbackModern + "\n" +
					`      NSLog(@"tapped %ld", (long)buttonIndex);` + "\n" +
					`      [self dismiss];` + "\n" +
					`  }];`,
			},
			wantRewrites: []Rewrite{
				{StartLine: 0, EndLine: 3, HasCallback: true},
			},
		},
		{
			name:  "three_independent_invocations",
			lines: []string{simpleAlert, `x`, simpleAlert, `y`, simpleAlert},
			want:  []string{simpleModern, `x`, simpleModern, `y`, simpleModern},
			wantRewrites: []Rewrite{
				{StartLine: 0, EndLine: 0},
				{StartLine: 2, EndLine: 2},
				{StartLine: 4, EndLine: 4},
			},
		},
		{
			name: "indices_shift_after_block",
			lines: []string{
				callbackAlert,
				`      a();`,
				`  }];`,
				simpleAlert,
			},
			want: []string{
				callbackModern + "\n      a();\n  }];",
				simpleModern,
			},
			wantRewrites: []Rewrite{
				{StartLine: 0, EndLine: 2, HasCallback: true},
				{StartLine: 1, EndLine: 1},
			},
		},
		{
			name: "unterminated_block_left_untouched",
			lines: []string{
				callbackAlert,
				`      a();`,
				`    }];`,
				simpleAlert,
			},
			want: []string{
				callbackAlert,
				`      a();`,
				`    }];`,
				simpleModern,
			},
			wantRewrites: []Rewrite{
				{StartLine: 3, EndLine: 3},
			},
			wantUnterminated: []int{0},
		},
		{
			name: "strict_fails_on_unterminated",
			opts: Options{Strict: true},
			lines: []string{
				callbackAlert,
				`      a();`,
			},
			wantError: "unterminated callback block",
		},
		{
			name:  "crlf_single_line_keeps_carriage_return",
			lines: []string{"a\r", simpleAlert + "\r", "b\r"},
			want:  []string{"a\r", simpleModern + "\r", "b\r"},
			wantRewrites: []Rewrite{
				{StartLine: 1, EndLine: 1},
			},
		},
		{
			name: "crlf_callback_keeps_carriage_returns",
			lines: []string{
				callbackAlert + "\r",
				"      a();\r",
				"  }];\r",
			},
			want: []string{
				callbackModern + "\r\n      a();\r\n  }];\r",
			},
			wantRewrites: []Rewrite{
				{StartLine: 0, EndLine: 2, HasCallback: true},
			},
		},
		{
			name:  "no_matches",
			lines: []string{`int main() {`, `  return 0;`, `}`, ``},
			want:  []string{`int main() {`, `  return 0;`, `}`, ``},
		},
		{
			name:  "custom_presenter",
			opts:  Options{Presenter: "vc"},
			lines: []string{simpleAlert},
			want:  []string{`  [UIAlertController showAlertInViewController:vc withTitle:@"T" message:@"M" cancelButtonTitle:@"C" destructiveButtonTitle:nil otherButtonTitles:@"O" tapBlock:nil];`},
			wantRewrites: []Rewrite{
				{StartLine: 0, EndLine: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer(tt.lines)
			res, err := NewEditor(tt.opts).Run(context.Background(), buf)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tt.want, buf.Lines())
			assert.Equal(t, tt.wantRewrites, res.Rewrites)
			assert.Equal(t, tt.wantUnterminated, res.Unterminated)
			assert.Equal(t, len(tt.wantRewrites) > 0, res.Changed())
		})
	}
}

func TestEditorRunBufferShrinks(t *testing.T) {
	lines := []string{
		`before`,
		callbackAlert,
		`      a();`,
		``,
		`      b();`,
		`  }];`,
		`after`,
	}
	buf := NewBuffer(lines)

	res, err := NewEditor(Options{}).Run(context.Background(), buf)
	require.NoError(t, err)
	require.Len(t, res.Rewrites, 1)

	rw := res.Rewrites[0]
	assert.Equal(t, len(lines)-(rw.EndLine-rw.StartLine), buf.Len())
	assert.Equal(t, `before`, buf.Line(0))
	assert.Equal(t, callbackModern+"\n      a();\n\n      b();\n  }];", buf.Line(1))
	assert.Equal(t, `after`, buf.Line(2))
}

func TestEditorRunIdempotent(t *testing.T) {
	buf := NewBuffer([]string{simpleAlert, callbackAlert, `    x();`, `  }];`})
	editor := NewEditor(Options{})

	_, err := editor.Run(context.Background(), buf)
	require.NoError(t, err)
	first := buf.Lines()

	res, err := editor.Run(context.Background(), buf)
	require.NoError(t, err)
	assert.False(t, res.Changed(), "second run should not rewrite anything")
	assert.Equal(t, 1, res.Passes)
	assert.Equal(t, first, buf.Lines())
}

func TestEditorApply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		buf := NewBuffer([]string{simpleAlert})
		calls := 0

		NewEditor(Options{}).Apply(context.Background(), buf, func(res *Result, err error) {
			calls++
			require.NoError(t, err)
			assert.Len(t, res.Rewrites, 1)
		})

		assert.Equal(t, 1, calls, "completion should be called exactly once")
		assert.Equal(t, []string{simpleModern}, buf.Lines())
	})

	t.Run("error", func(t *testing.T) {
		buf := NewBuffer([]string{callbackAlert})
		calls := 0

		NewEditor(Options{Strict: true}).Apply(context.Background(), buf, func(res *Result, err error) {
			calls++
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrUnterminatedBlock)
		})

		assert.Equal(t, 1, calls, "completion should be called exactly once")
	})

	t.Run("no_matches", func(t *testing.T) {
		buf := NewBuffer([]string{`a`, `b`})
		calls := 0

		NewEditor(Options{}).Apply(context.Background(), buf, func(res *Result, err error) {
			calls++
			require.NoError(t, err)
			assert.False(t, res.Changed())
		})

		assert.Equal(t, 1, calls)
		assert.Equal(t, []string{`a`, `b`}, buf.Lines())
	})
}

func TestResultOriginalLine(t *testing.T) {
	buf := NewBuffer([]string{
		callbackAlert, // 0
		`      a();`,  // 1
		`      b();`,  // 2
		`  }];`,       // 3
		`x`,           // 4
		callbackAlert, // 5, never closes
		`    }];`,     // 6
	})

	res, err := NewEditor(Options{}).Run(context.Background(), buf)
	require.NoError(t, err)
	require.Equal(t, []int{2}, res.Unterminated)
	assert.Equal(t, 5, res.OriginalLine(res.Unterminated[0]))
	assert.Equal(t, 0, res.OriginalLine(0))
}
