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

package tree

// Kind is the syntactic form of a node.
//
// The enumeration is closed: host syntax that does not matter for reference analysis maps to [Other].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Other is any node that is only descended into.
	Other Kind = iota

	// File is the root of a source file.
	File

	// Identifier is a name reference or a binding name.
	Identifier

	// PropertyName is the member name in a property access. It never refers to a variable.
	PropertyName

	// PropertyAccess is a member access. Its first child is the base expression.
	PropertyAccess

	// ExportSpecifier re-exports a local binding. Its text is the local name.
	ExportSpecifier

	// TypeReference is a subtree in type position. It carries no runtime variable semantics.
	TypeReference

	// Receiver is the receiver keyword (this, self or a method receiver).
	Receiver

	// VariableDeclaration binds one or more variable names.
	VariableDeclaration

	// Parameter binds one or more parameter names.
	Parameter

	// FunctionDeclaration is a named function.
	FunctionDeclaration

	// MethodDeclaration is a method.
	MethodDeclaration

	// Constructor is a class constructor.
	Constructor

	// ArrowFunction is an arrow function.
	ArrowFunction

	// FunctionExpression is an anonymous function or function literal.
	FunctionExpression
)

// Declaration reports whether nodes of this kind bind names.
func (k Kind) Declaration() bool {
	return k == VariableDeclaration || k == Parameter
}
