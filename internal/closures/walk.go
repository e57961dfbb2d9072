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

import (
	"iter"

	"fillmore-labs.com/noclosures/internal/tree"
)

// Reference is a name occurrence that resolved to a declaration.
type Reference struct {
	Node tree.Node
	Decl Declaration
}

// References yields every resolved reference of t in pre-order.
//
// Subtrees in type position are skipped. Identifiers and export specifiers are leaves. The base of a
// property access is resolved unless it is the receiver keyword, and the access is then descended into.
func References(t *tree.Tree, r Resolver) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		w := walker{tree: t, resolver: r}
		w.walk(t.Root(), yield)
	}
}

type walker struct {
	tree     *tree.Tree
	resolver Resolver
	visited  int
}

func (w *walker) walk(n tree.Node, yield func(Reference) bool) bool {
	if !n.Valid() {
		return true
	}

	w.visited++

	switch w.tree.Kind(n) {
	case tree.TypeReference:
		return true

	case tree.PropertyAccess:
		// A receiver base (this.x) is always bound and stays a plain leaf.
		base := w.tree.Child(n, 0)
		if w.tree.Kind(base) == tree.Identifier {
			w.visited++

			if !w.symbol(base, yield) {
				return false
			}
		} else {
			base = tree.None
		}

		for c := range w.tree.Children(n) {
			if c == base {
				continue
			}

			if !w.walk(c, yield) {
				return false
			}
		}

		return true

	case tree.Identifier:
		return w.symbol(n, yield)

	case tree.ExportSpecifier:
		decl, ok := w.resolver.ExportTargetOf(n)
		if !ok {
			return true
		}

		return yield(Reference{Node: n, Decl: decl})

	default:
		for c := range w.tree.Children(n) {
			if !w.walk(c, yield) {
				return false
			}
		}

		return true
	}
}

func (w *walker) symbol(n tree.Node, yield func(Reference) bool) bool {
	decl, ok := w.resolver.SymbolAt(n)
	if !ok {
		return true
	}

	return yield(Reference{Node: n, Decl: decl})
}
