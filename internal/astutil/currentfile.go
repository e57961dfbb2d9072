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

// Package astutil holds helpers for the Go analysis pass: per-file state, nolint handling and internal
// error reporting.
package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

const linterName = "noclosures"

// CurrentFile caches per-file information during an analysis pass.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
	nolint    []span
}

type span struct{ pos, end token.Pos }

// NewCurrentFile returns file information, or an invalid [CurrentFile] if the file is not in fset.
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	var nolint []span

	for _, decl := range file.Decls {
		fun, ok := decl.(*ast.FuncDecl)
		if !ok || fun.Doc == nil || !CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
			continue
		}

		nolint = append(nolint, span{fun.Pos(), fun.End()})
	}

	return CurrentFile{file, handle, generated, nolint}
}

// Valid reports whether the file has position information.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated reports whether the file is generated code.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint reports whether the whole file is excluded by a nolint package comment.
func (c CurrentFile) NoLint() bool {
	if c.file == nil || c.file.Doc == nil {
		return false
	}

	return CommentHasNoLint(c.file.Doc.List[len(c.file.Doc.List)-1])
}

// Suppressed reports whether a diagnostic at pos is excluded, either by a nolint comment on the
// enclosing function declaration or on the same line.
func (c CurrentFile) Suppressed(pos token.Pos) bool {
	for _, s := range c.nolint {
		if s.pos <= pos && pos < s.end {
			return true
		}
	}

	return c.noLintComment(pos)
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

func (c CurrentFile) noLintComment(pos token.Pos) bool {
	if c.file == nil || c.handle == nil {
		return false
	}

	// find the first comment starting after the position
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.line(comment.Pos()) != c.line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint reports whether comment is a nolint directive naming this linter or all linters.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == linterName || l == "all" {
			return true
		}
	}

	return false
}
