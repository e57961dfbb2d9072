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

package gosource

import (
	"go/types"

	"fillmore-labs.com/noclosures/internal/closures"
	"fillmore-labs.com/noclosures/internal/tree"
)

// resolver maps identifier uses to the variables and parameters declared in the same file.
type resolver struct {
	uses  map[tree.Node]types.Object
	decls map[types.Object]closures.Declaration
}

var _ closures.Resolver = resolver{}

// SymbolAt implements [closures.Resolver].
func (r resolver) SymbolAt(n tree.Node) (closures.Declaration, bool) {
	obj, ok := r.uses[n]
	if !ok {
		return closures.Declaration{}, false
	}

	decl, ok := r.decls[obj]

	return decl, ok
}

// ExportTargetOf implements [closures.Resolver]. Go has no export specifiers.
func (resolver) ExportTargetOf(tree.Node) (closures.Declaration, bool) {
	return closures.Declaration{}, false
}
