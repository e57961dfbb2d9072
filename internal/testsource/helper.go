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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the noclosures frontends by handling common
// boilerplate code for parsing and type-checking Go source files.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

const testpkg = "test"

// Parse parses Go source code into an AST.
// The provided source `src` is automatically prefixed with the package clause `package test`.
// This allows testing declarations without manually writing the surrounding file.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()
	srcFile := wrapSource(src)

	f, err := parser.ParseFile(fset, filename, srcFile, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info,
// including the implicit objects of type switch clauses.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:     make(map[ast.Expr]types.TypeAndValue),
		Defs:      make(map[*ast.Ident]types.Object),
		Uses:      make(map[*ast.Ident]types.Object),
		Implicits: make(map[ast.Node]types.Object),
		Scopes:    make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

func wrapSource(src string) *bytes.Buffer {
	const header = "package " + testpkg + "\n\n"

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error

	return &srcFile
}
