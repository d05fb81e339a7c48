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

/*
Package alert rewrites legacy UIAlertView block invocations into
UIAlertController calls, line by line, without parsing the source.

	+-------------+     +---------------+
	|  Classify   | --> | ExtractFields |
	| (open line) |     |  (arguments)  |
	+------+------+     +-------+-------+
	       |                    |
	+------+------+     +-------+-------+
	|  ScanBlock  | --> |   Rewriter    |
	| (callback)  |     | (replacement) |
	+------+------+     +-------+-------+
	       |                    |
	       +------ Editor ------+
	          (Buffer, in place)

🎯 Matching:
An opening line must start, after indentation, with "[" and contain in order
UIAlertView, showWithTitle:, message:, cancelButtonTitle:, otherButtonTitles:
and tapBlock:. A "{" anywhere on it means the tap block continues below.

🧱 Blocks:
The block ends at the first later non-empty line indented exactly like the
opening line and starting with "}];". Everything in between is carried into
the new block literal verbatim. A block that never closes is reported and
its opening line is left alone.

🔄 Editing:
Editor restarts from the top after each replacement and stops once a full
scan rewrites nothing. The result is not guaranteed to compile; review the
diff.

🔍 Example:

	buf := alert.SplitLines(src)
	res, err := alert.NewEditor(alert.Options{}).Run(ctx, buf)
	out := buf.String()
*/
package alert
