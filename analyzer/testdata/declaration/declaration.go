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

package declaration

var total int

func add(n int) {
	total += n // want "variable 'total' used before declaration"
}

var base = 10

var derived = base * 2 // want "Property base used and not defined in class or containing function"

func outer() func() int {
	x := 1

	return func() int {
		return x
	}
}

func params(a, b int) int {
	c := a + b

	return c
}

type point struct{ x, y int }

func (p point) sum() int {
	return p.x + p.y
}

func (p point) scaled(k int) func() point {
	return func() point {
		return point{x: p.x * k, y: p.y * k}
	}
}
