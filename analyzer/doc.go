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

// Package analyzer implements the noclosures static analysis pass.
//
// # Overview
//
// noclosures reports identifiers that refer to a variable or parameter declared outside the function
// they are used in. Two rules are available:
//
//   - closure: function declarations and function literals are boundaries. A variable of an outer
//     function used inside a function literal is reported as "used as closure".
//   - declaration: only function and method declarations are boundaries, function literals are
//     transparent. Package level variables used inside functions are reported as "used before
//     declaration".
//
// # Example
//
//	func counter() func() int {
//	    n := 0
//	    return func() int {
//	        n++ // variable 'n' used as closure
//	        return n
//	    }
//	}
//
// Diagnostics are suppressed by a //nolint:noclosures comment on the line, on the enclosing function
// declaration, or on the package clause.
package analyzer
