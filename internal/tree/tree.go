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

// Package tree provides the immutable syntax tree the closure analysis walks.
//
// Nodes live in a flat table in pre-order, so a node index doubles as its visit position and a subtree
// occupies a contiguous index range. Parent links are plain indices used for upward traversal only.
package tree

import "iter"

// Node is an index into the node table of a [Tree].
type Node int32

// None is the invalid node.
const None Node = -1

// Valid reports whether n refers to a node.
func (n Node) Valid() bool {
	return n >= 0
}

// Span is a host defined source range, e.g. byte offsets or [go/token.Pos] values.
type Span struct {
	Start, End int
}

type node struct {
	kind     Kind
	parent   Node
	last     Node // last node of this subtree
	text     string
	span     Span
	children []Node
}

// Tree is a parsed source file. It is immutable once built and safe for concurrent reads.
type Tree struct {
	nodes     []node
	bindings  map[Node][]Node
	bindingOf map[Node]Node
}

// Root returns the root node, or [None] for an empty tree.
func (t *Tree) Root() Node {
	if len(t.nodes) == 0 {
		return None
	}

	return 0
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) valid(n Node) bool {
	return n.Valid() && int(n) < len(t.nodes)
}

// Kind returns the kind of n, [Other] for invalid nodes.
func (t *Tree) Kind(n Node) Kind {
	if !t.valid(n) {
		return Other
	}

	return t.nodes[n].kind
}

// Parent returns the enclosing node of n, [None] for the root.
func (t *Tree) Parent(n Node) Node {
	if !t.valid(n) {
		return None
	}

	return t.nodes[n].parent
}

// Text returns the source lexeme of identifiers, property names and export specifiers.
func (t *Tree) Text(n Node) string {
	if !t.valid(n) {
		return ""
	}

	return t.nodes[n].text
}

// Span returns the source range of n.
func (t *Tree) Span(n Node) Span {
	if !t.valid(n) {
		return Span{}
	}

	return t.nodes[n].span
}

// Child returns the i-th child of n, or [None].
func (t *Tree) Child(n Node, i int) Node {
	if !t.valid(n) || i < 0 || i >= len(t.nodes[n].children) {
		return None
	}

	return t.nodes[n].children[i]
}

// Children yields the direct children of n in source order.
func (t *Tree) Children(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if !t.valid(n) {
			return
		}

		for _, c := range t.nodes[n].children {
			if !yield(c) {
				return
			}
		}
	}
}

// Ancestors yields the parent chain of n, innermost first, excluding n itself.
func (t *Tree) Ancestors(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for p := t.Parent(n); p.Valid(); p = t.nodes[p].parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Preorder yields all nodes in depth-first pre-order.
func (t *Tree) Preorder() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for i := range t.nodes {
			if !yield(Node(i)) {
				return
			}
		}
	}
}

// SubtreeLen returns the number of nodes in the subtree rooted at n, n included.
func (t *Tree) SubtreeLen(n Node) int {
	if !t.valid(n) {
		return 0
	}

	return int(t.nodes[n].last-n) + 1
}

// Contains reports whether n lies in the subtree rooted at ancestor.
func (t *Tree) Contains(ancestor, n Node) bool {
	if !t.valid(ancestor) || !t.valid(n) {
		return false
	}

	return ancestor <= n && n <= t.nodes[ancestor].last
}

// Bindings yields the identifier nodes bound by the declaration node decl.
func (t *Tree) Bindings(decl Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, id := range t.bindings[decl] {
			if !yield(id) {
				return
			}
		}
	}
}

// BindingOf returns the declaration node binding the identifier id, if id is a binding site.
func (t *Tree) BindingOf(id Node) (Node, bool) {
	decl, ok := t.bindingOf[id]

	return decl, ok
}
