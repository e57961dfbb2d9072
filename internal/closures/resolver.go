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

package closures

import "fillmore-labs.com/noclosures/internal/tree"

// Resolver is the host's symbol resolution service.
type Resolver interface {
	// SymbolAt returns the declaration a name reference refers to.
	SymbolAt(n tree.Node) (Declaration, bool)

	// ExportTargetOf returns the local declaration an export specifier re-exports.
	ExportTargetOf(n tree.Node) (Declaration, bool)
}

// Declaration is the result of symbol resolution.
type Declaration struct {
	// Kind is the syntactic kind of the declaration.
	Kind DeclKind

	// Node is the binding identifier of the declaration, or [tree.None] when the host has no node for it.
	Node tree.Node

	// Name is the declared name.
	Name string
}

// DeclKind classifies declarations.
type DeclKind uint8

//go:generate go tool stringer -type DeclKind -linecomment
const (
	// DeclOther is any declaration that is not checked: functions, classes, imports, constants, types.
	DeclOther DeclKind = iota // other

	// DeclVariable is a variable declaration.
	DeclVariable // variable

	// DeclParameter is a function parameter.
	DeclParameter // parameter
)

// checked reports whether references to declarations of this kind are subject to the rule.
func (k DeclKind) checked() bool {
	return k == DeclVariable || k == DeclParameter
}

// NoResolver resolves nothing. Every reference is treated as global.
type NoResolver struct{}

// SymbolAt implements [Resolver].
func (NoResolver) SymbolAt(tree.Node) (Declaration, bool) { return Declaration{}, false }

// ExportTargetOf implements [Resolver].
func (NoResolver) ExportTargetOf(tree.Node) (Declaration, bool) { return Declaration{}, false }
