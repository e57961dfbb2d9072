// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io/fs"
	"path/filepath"

	"fillmore-labs.com/noclosures/internal/jssource"
)

// skipDirs are directory names never descended into.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
}

// collect expands paths into the list of supported source files. Files named explicitly are
// kept regardless of their extension, so unsupported files surface as errors.
func collect(paths, exclude []string) ([]string, error) {
	var files []string

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root && excluded(d.Name(), path, exclude) {
				if d.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if d.IsDir() {
				if _, ok := skipDirs[d.Name()]; ok && path != root {
					return filepath.SkipDir
				}

				return nil
			}

			if path == root || jssource.Supported(path) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func excluded(name, path string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}

		if ok, _ := filepath.Match(pattern, filepath.ToSlash(path)); ok {
			return true
		}
	}

	return false
}
