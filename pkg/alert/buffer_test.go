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
)

func TestBufferReplace(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		end       int
		want      []string
		wantError string
	}{
		{
			name:  "single_line",
			start: 1,
			end:   1,
			want:  []string{"a", "X", "c", "d"},
		},
		{
			name:  "range",
			start: 1,
			end:   3,
			want:  []string{"a", "X"},
		},
		{
			name:  "whole_buffer",
			start: 0,
			end:   3,
			want:  []string{"X"},
		},
		{
			name:      "end_before_start",
			start:     2,
			end:       1,
			wantError: "out of bounds",
		},
		{
			name:      "past_end",
			start:     3,
			end:       4,
			wantError: "out of bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer([]string{"a", "b", "c", "d"})
			err := buf.Replace(tt.start, tt.end, "X")

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				assert.Equal(t, []string{"a", "b", "c", "d"}, buf.Lines(), "buffer should be unchanged")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.Lines())
		})
	}
}

func TestSplitLinesRoundTrip(t *testing.T) {
	for _, text := range []string{"", "a", "a\n", "a\r\nb\r\n", "\n\n"} {
		assert.Equal(t, text, SplitLines(text).String())
	}
}

func TestNewBufferCopies(t *testing.T) {
	lines := []string{"a", "b"}
	buf := NewBuffer(lines)
	require.NoError(t, buf.Replace(0, 0, "X"))
	assert.Equal(t, []string{"a", "b"}, lines)
}
