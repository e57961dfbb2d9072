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

import (
	"errors"
	"fmt"
)

// ErrUnbalanced is returned by [Builder.Build] when Open and Close calls did not match.
var ErrUnbalanced = errors.New("unbalanced tree construction")

// Builder constructs a [Tree] in pre-order.
//
// The zero value is ready to use. The first opened node becomes the root.
type Builder struct {
	nodes     []node
	stack     []Node
	bindings  map[Node][]Node
	bindingOf map[Node]Node
	err       error
}

// Open starts a new node as the last child of the current node and makes it current.
func (b *Builder) Open(kind Kind, text string, start int) Node {
	parent := None
	if len(b.stack) > 0 {
		parent = b.stack[len(b.stack)-1]
	} else if len(b.nodes) > 0 {
		b.fail("second root %s at %d", kind, start)
		parent = 0 // attach to the existing root
	}

	n := Node(len(b.nodes))
	b.nodes = append(b.nodes, node{
		kind:   kind,
		parent: parent,
		last:   n,
		text:   text,
		span:   Span{Start: start, End: start},
	})

	if parent.Valid() {
		b.nodes[parent].children = append(b.nodes[parent].children, n)
	}

	b.stack = append(b.stack, n)

	return n
}

// Close finishes the current node.
func (b *Builder) Close(end int) {
	if len(b.stack) == 0 {
		b.fail("close without open at %d", end)

		return
	}

	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	b.nodes[n].span.End = end
	b.nodes[n].last = Node(len(b.nodes) - 1)

	// A second root hangs below the first one.
	if len(b.stack) == 0 && n != 0 {
		b.nodes[0].last = b.nodes[n].last
		b.nodes[0].span.End = max(b.nodes[0].span.End, end)
	}
}

// Leaf adds a node without children.
func (b *Builder) Leaf(kind Kind, text string, span Span) Node {
	n := b.Open(kind, text, span.Start)
	b.Close(span.End)

	return n
}

// Current returns the innermost open node.
func (b *Builder) Current() Node {
	if len(b.stack) == 0 {
		return None
	}

	return b.stack[len(b.stack)-1]
}

// Bind records that the declaration node decl binds the identifier node id.
func (b *Builder) Bind(decl, id Node) {
	if b.bindings == nil {
		b.bindings = make(map[Node][]Node)
		b.bindingOf = make(map[Node]Node)
	}

	if _, ok := b.bindingOf[id]; ok {
		return
	}

	b.bindings[decl] = append(b.bindings[decl], id)
	b.bindingOf[id] = decl
}

// Build returns the finished tree. Nodes still open are closed at the end of their last descendant
// and [ErrUnbalanced] is reported alongside the usable tree.
func (b *Builder) Build() (*Tree, error) {
	if len(b.stack) > 0 {
		b.fail("%d nodes left open", len(b.stack))

		for len(b.stack) > 0 {
			b.Close(b.nodes[len(b.nodes)-1].span.End)
		}
	}

	t := &Tree{nodes: b.nodes, bindings: b.bindings, bindingOf: b.bindingOf}
	err := b.err

	*b = Builder{}

	return t, err
}

func (b *Builder) fail(format string, args ...any) {
	if b.err != nil {
		return
	}

	b.err = fmt.Errorf("%w: %s", ErrUnbalanced, fmt.Sprintf(format, args...))
}
