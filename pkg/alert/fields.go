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

// 📦 ExtractedFields holds the raw argument text of a legacy invocation.
// Values are verbatim substrings, including any trailing space before the
// next keyword.
type ExtractedFields struct {
	Title       string
	Message     string
	CancelLabel string
	OtherLabels string
}

// fieldMarkers lists the keyword delimiters in line order. Field i spans from
// the end of marker i to the start of the next marker found after it.
var fieldMarkers = []struct {
	marker string
	set    func(f *ExtractedFields, v string)
}{
	{LegacySelector, func(f *ExtractedFields, v string) { f.Title = v }},
	{MarkerMessage, func(f *ExtractedFields, v string) { f.Message = v }},
	{MarkerCancel, func(f *ExtractedFields, v string) { f.CancelLabel = v }},
	{MarkerOther, func(f *ExtractedFields, v string) { f.OtherLabels = v }},
	{MarkerTapBlock, nil},
}

// ExtractFields pulls the title, message, cancel and other-button arguments
// out of an opening line. A field whose marker is missing is left empty.
func ExtractFields(line string) ExtractedFields {
	var f ExtractedFields
	for i, fm := range fieldMarkers {
		if fm.set == nil {
			continue
		}
		fm.set(&f, fieldAt(line, i))
	}
	return f
}

func fieldAt(line string, i int) string {
	open := strings.Index(line, fieldMarkers[i].marker)
	if open < 0 {
		return ""
	}
	rest := line[open+len(fieldMarkers[i].marker):]
	for _, next := range fieldMarkers[i+1:] {
		if end := strings.Index(rest, next.marker); end >= 0 {
			return rest[:end]
		}
	}
	return ""
}
