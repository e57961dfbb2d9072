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

const unknown tree.Node = -2

// scopes classifies scope boundaries for one analysis pass.
//
// Both the nearest boundary of a node and the local names of a boundary are memoized, the tree being
// immutable for the lifetime of a pass.
type scopes struct {
	tree    *tree.Tree
	variant Variant
	nearest []tree.Node
	locals  map[tree.Node]map[string]struct{}
	path    []tree.Node
}

func newScopes(t *tree.Tree, variant Variant) *scopes {
	nearest := make([]tree.Node, t.Len())
	for i := range nearest {
		nearest[i] = unknown
	}

	return &scopes{
		tree:    t,
		variant: variant,
		nearest: nearest,
		locals:  make(map[tree.Node]map[string]struct{}),
	}
}

// enclosing returns the innermost boundary containing n, n included, or [tree.None].
func (s *scopes) enclosing(n tree.Node) tree.Node {
	s.path = s.path[:0]

	boundary := tree.None

	for cur := n; cur.Valid(); cur = s.tree.Parent(cur) {
		if int(cur) >= len(s.nearest) {
			break
		}

		if b := s.nearest[cur]; b != unknown {
			boundary = b

			break
		}

		if s.variant.IsBoundary(s.tree.Kind(cur)) {
			boundary = cur
			s.nearest[cur] = cur

			break
		}

		s.path = append(s.path, cur)
	}

	for _, p := range s.path {
		s.nearest[p] = boundary
	}

	return boundary
}

// declares reports whether name is bound by a parameter or variable declaration of boundary itself.
func (s *scopes) declares(boundary tree.Node, name string) bool {
	names, ok := s.locals[boundary]
	if !ok {
		names = s.localNames(boundary)
		s.locals[boundary] = names
	}

	_, ok = names[name]

	return ok
}

// localNames collects the names bound directly in boundary, not descending into nested boundaries.
func (s *scopes) localNames(boundary tree.Node) map[string]struct{} {
	names := make(map[string]struct{})

	// Nodes are stored in pre-order, so the subtree is a contiguous index range.
	end := boundary + tree.Node(s.tree.SubtreeLen(boundary))
	for n := boundary + 1; n < end; n++ {
		kind := s.tree.Kind(n)

		if kind == tree.TypeReference || s.variant.IsBoundary(kind) {
			n += tree.Node(s.tree.SubtreeLen(n)) - 1

			continue
		}

		if !kind.Declaration() {
			continue
		}

		for id := range s.tree.Bindings(n) {
			names[s.tree.Text(id)] = struct{}{}
		}
	}

	return names
}
