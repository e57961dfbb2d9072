// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/noclosures/internal/run"
)

const (
	name = "noclosures"
	doc  = `noclosures reports variables used across function boundaries`
	url  = "https://pkg.go.dev/fillmore-labs.com/noclosures"
)

// New creates a new noclosures analyzer with the given options.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is the noclosures analyzer with default options.
var Analyzer = New()
