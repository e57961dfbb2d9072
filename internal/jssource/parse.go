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

// Package jssource converts JavaScript and TypeScript source into the tree the closure analysis walks.
//
// Sources are parsed with tree-sitter. Identifiers are resolved with a lexical scope chain: function
// scopes hold parameters, var declarations and function declarations, block scopes hold let, const and
// class declarations, and catch clauses bind their parameter. Names are resolved after the whole file
// has been converted, so hoisted declarations are visible before their declaration site.
package jssource

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"runtime/trace"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"fillmore-labs.com/noclosures/internal/tree"
)

var (
	// ErrUnsupported is returned for files with an unknown extension.
	ErrUnsupported = errors.New("unsupported file type")

	// ErrSyntax is returned by a strict [Parser] for sources with syntax errors.
	ErrSyntax = errors.New("syntax error")
)

// File is a converted JavaScript or TypeScript source file.
type File struct {
	// Tree is the syntax tree, with byte offset spans.
	Tree *tree.Tree

	file *token.File

	resolver
}

// Name returns the file name.
func (f *File) Name() string {
	return f.file.Name()
}

// Position converts a byte offset into a source position.
func (f *File) Position(offset int) token.Position {
	return f.file.PositionFor(f.file.Pos(offset), false)
}

// Parser converts source files.
type Parser struct {
	// Strict rejects sources containing syntax errors.
	Strict bool
}

// Parse converts a source file with a non-strict [Parser].
func Parse(ctx context.Context, filename string, src []byte) (*File, error) {
	return Parser{}.Parse(ctx, filename, src)
}

// Supported reports whether the file name has a JavaScript or TypeScript extension.
func Supported(filename string) bool {
	return language(filename) != nil
}

func language(filename string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".js", ".mjs", ".cjs", ".jsx":
		return javascript.GetLanguage()

	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()

	case ".tsx":
		return tsx.GetLanguage()

	default:
		return nil
	}
}

// Parse converts a source file, selecting the grammar by file extension.
func (p Parser) Parse(ctx context.Context, filename string, src []byte) (*File, error) {
	lang := language(filename)
	if lang == nil {
		return nil, fmt.Errorf("%s: %w", filename, ErrUnsupported)
	}

	defer trace.StartRegion(ctx, "ParseSource").End()

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang)

	cst, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: tree-sitter parse failed: %w", filename, err)
	}
	defer cst.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: parse canceled: %w", filename, err)
	}

	file := token.NewFileSet().AddFile(filename, -1, len(src))
	file.SetLinesForContent(src)

	root := cst.RootNode()

	if p.Strict && root.HasError() {
		pos := file.PositionFor(file.Pos(firstError(root)), false)

		return nil, fmt.Errorf("%s: %w", pos, ErrSyntax)
	}

	t, r, err := convert(root, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &File{Tree: t, file: file, resolver: r}, nil
}

// firstError returns the byte offset of the first error or missing node.
func firstError(n *sitter.Node) int {
	if n.IsMissing() || n.Type() == "ERROR" {
		return int(n.StartByte())
	}

	for child := range children(n) {
		if child.HasError() {
			return firstError(child)
		}
	}

	return int(n.StartByte())
}
