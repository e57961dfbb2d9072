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
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/noclosures/internal/closures"
	"fillmore-labs.com/noclosures/internal/jssource"
)

// Result is the outcome of checking one file.
type Result struct {
	// Path is the file path as given.
	Path string

	// File is the converted source, nil when Err is set.
	File *jssource.File

	// Diagnostics are the findings in source order.
	Diagnostics []closures.Diagnostic

	// Err is the read or parse error of this file.
	Err error
}

// Checker analyzes source files concurrently.
type Checker struct {
	// Variant selects the closure rule.
	Variant closures.Variant

	// Jobs limits the number of files analyzed at the same time.
	Jobs int

	// Strict rejects sources with syntax errors.
	Strict bool

	// Logger receives per-file progress.
	Logger *slog.Logger
}

// Check analyzes all files and returns results in input order. Per-file failures are recorded in
// [Result.Err] and do not stop other files. The error is non-nil only when ctx is canceled.
func (c Checker) Check(ctx context.Context, paths []string) ([]Result, error) {
	ctx, task := trace.NewTask(ctx, "CheckFiles")
	defer task.End()

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	results := make([]Result, len(paths))
	checker := closures.Checker{Variant: c.Variant}
	parser := jssource.Parser{Strict: c.Strict}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Jobs, 1))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = checkFile(ctx, parser, checker, path)

			if err := results[i].Err; err != nil {
				logger.Warn("Skipping file", slog.String("file", path), slog.Any("error", err))
			} else {
				logger.Debug("Checked file", slog.String("file", path), slog.Int("diagnostics", len(results[i].Diagnostics)))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func checkFile(ctx context.Context, parser jssource.Parser, checker closures.Checker, path string) Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	file, err := parser.Parse(ctx, path, src)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("can't parse: %w", err)}
	}

	return Result{
		Path:        path,
		File:        file,
		Diagnostics: checker.Check(ctx, file.Tree, file),
	}
}
