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
package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/alertmigrate/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🔍 SelectFiles lists the files under root a run should process, as sorted
// slash-separated paths relative to root. Directories in paths are searched
// with the include patterns; files in paths are taken as given. Exclude
// patterns apply to both.
func SelectFiles(ctx context.Context, root string, cfg *config.Config, paths []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	fsys := os.DirFS(root)

	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(rel string) error {
		if seen[rel] {
			return nil
		}
		for _, pattern := range cfg.Exclude {
			excluded, err := doublestar.Match(pattern, rel)
			if err != nil {
				return errors.Errorf("matching exclude pattern %q: %w", pattern, err)
			}
			if excluded {
				logger.Debug().Str("path", rel).Str("pattern", pattern).Msg("excluded")
				return nil
			}
		}
		seen[rel] = true
		files = append(files, rel)
		return nil
	}

	for _, p := range paths {
		rel, err := relativePath(root, p)
		if err != nil {
			return nil, err
		}

		fi, err := fs.Stat(fsys, rel)
		if err != nil {
			return nil, errors.Errorf("checking %s: %w", p, err)
		}

		if !fi.IsDir() {
			if err := add(rel); err != nil {
				return nil, err
			}
			continue
		}

		sub, err := fs.Sub(fsys, rel)
		if err != nil {
			return nil, errors.Errorf("opening %s: %w", p, err)
		}
		for _, pattern := range cfg.Include {
			matches, err := doublestar.Glob(sub, pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, errors.Errorf("globbing %q in %s: %w", pattern, p, err)
			}
			for _, m := range matches {
				if rel != "." {
					m = rel + "/" + m
				}
				if err := add(m); err != nil {
					return nil, err
				}
			}
		}
	}

	sort.Strings(files)
	logger.Debug().Int("files", len(files)).Str("root", root).Msg("selected files")
	return files, nil
}

// relativePath turns p into a clean fs.FS path below root
func relativePath(root, p string) (string, error) {
	rel := p
	if filepath.IsAbs(p) {
		r, err := filepath.Rel(root, p)
		if err != nil {
			return "", errors.Errorf("resolving %s: %w", p, err)
		}
		rel = r
	}
	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == ".." || strings.HasPrefix(rel, "../") || !fs.ValidPath(rel) {
		return "", errors.Errorf("path %s is outside %s", p, root)
	}
	return rel, nil
}
