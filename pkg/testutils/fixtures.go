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
package testutils

// 🧪 Objective-C fixtures shared by the operation and command tests.
const (
	// LegacySource holds one single-line legacy invocation
	LegacySource = "- (void)fail {\n" +
		"    [UIAlertView showWithTitle:@\"Oops\" message:@\"Try again\" cancelButtonTitle:@\"OK\" otherButtonTitles:nil tapBlock:nil];\n" +
		"}\n"

	// ModernSource is LegacySource after a rewrite with the default presenter
	ModernSource = "- (void)fail {\n" +
		"    [UIAlertController showAlertInViewController:self withTitle:@\"Oops\" message:@\"Try again\" cancelButtonTitle:@\"OK\" destructiveButtonTitle:nil otherButtonTitles:nil tapBlock:nil];\n" +
		"}\n"

	// PresentedSource is LegacySource rewritten with presenter self.host
	PresentedSource = "- (void)fail {\n" +
		"    [UIAlertController showAlertInViewController:self.host withTitle:@\"Oops\" message:@\"Try again\" cancelButtonTitle:@\"OK\" destructiveButtonTitle:nil otherButtonTitles:nil tapBlock:nil];\n" +
		"}\n"

	// UnterminatedSource opens a callback block at line 2 that never closes at its indentation
	UnterminatedSource = "- (void)ask {\n" +
		"    [UIAlertView showWithTitle:@\"Q\" message:@\"?\" cancelButtonTitle:@\"No\" otherButtonTitles:@[@\"Yes\"] tapBlock:^(UIAlertView *alertView, NSInteger buttonIndex) {\n" +
		"        go();\n" +
		"}\n"

	// PlainSource has nothing to rewrite
	PlainSource = "int main() {\n    return 0;\n}\n"
)
