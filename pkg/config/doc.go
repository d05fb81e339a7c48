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
Package config manages configuration parsing and validation for alertmigrate.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |   HCL   |   |  JSON   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Chooses which files are rewritten (include / exclude doublestar patterns)
- Carries editor options (presenter expression, strict mode)
- Carries write options (backup, dry run, concurrency)

🔄 Flow:
1. Picks a parser from the file extension
2. Decodes, rejecting unknown fields
3. Validates patterns and fills in defaults

📝 Defaults:
- include: every .m and .mm file below the working directory
- presenter: self
- concurrency: 4

HCL files may reference environment variables through env, for example
presenter = "${env.PRESENTER}".

🔍 Example:

	cfg, err := config.LoadOptional(ctx, ".alertmigrate.yaml")
	if err != nil {
		return err
	}
	editor := alert.NewEditor(cfg.EditorOptions())
*/
package config
