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

// Category is the kind of violation a [Diagnostic] reports.
type Category uint8

//go:generate go tool stringer -type Category -linecomment
const (
	// UseBefore is a reference to a variable declared outside every function.
	UseBefore Category = iota // use-before-declaration

	// Capture is a reference to a variable declared in an enclosing function.
	Capture // closure-capture

	// Unscoped is a reference outside any function.
	Unscoped // unscoped-reference
)

// Diagnostic is a single finding, anchored at the reference node.
type Diagnostic struct {
	Node     tree.Node
	Span     tree.Span
	Category Category
	Name     string
	Message  string
}

func usedBeforeDeclaration(name string) string {
	return "variable '" + name + "' used before declaration"
}

func closuresNotAllowed(name string) string {
	return "Closures are not allowed! Variable " + name + " needs to be defined in the function it is used"
}

func notDefinedInFunction(name string) string {
	return "Property " + name + " used and not defined in class or containing function"
}

func usedAsClosure(name string) string {
	return "variable '" + name + "' used as closure"
}
