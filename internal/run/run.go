// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/noclosures/internal/astutil"
	"fillmore-labs.com/noclosures/internal/closures"
	"fillmore-labs.com/noclosures/internal/config"
	"fillmore-labs.com/noclosures/internal/gosource"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the noclosures analyzer on every file of the package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("noclosures: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "NoClosures")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	checker := closures.Checker{Variant: r.Variant}
	honorNoLint := r.Behavior.Enabled(config.HonorNoLint)

	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if honorNoLint && currentFile.NoLint() {
			continue
		}

		converted, err := gosource.Build(file, p.TypesInfo)
		if err != nil {
			astutil.InternalError(p, file, "Can't convert file %s: %v", file.Name.Name, err)

			continue
		}

		for _, d := range checker.Check(ctx, converted.Tree, converted) {
			pos, end := token.Pos(d.Span.Start), token.Pos(d.Span.End)

			if honorNoLint && currentFile.Suppressed(pos) {
				continue
			}

			p.Report(analysis.Diagnostic{
				Pos:      pos,
				End:      end,
				Category: d.Category.String(),
				Message:  d.Message,
			})
		}
	}

	return nil, nil
}
