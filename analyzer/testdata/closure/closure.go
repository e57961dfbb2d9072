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

package closure

import (
	"fmt"
	"sort"
)

var counter int

func increment() {
	counter++ // want "variable 'counter' used as closure"
}

func adder(base int) func(int) int {
	return func(n int) int {
		return base + n // want "variable 'base' used as closure"
	}
}

func local() func() int {
	return func() int {
		x := 1

		return x
	}
}

func sortByWeight(keys []string, weights map[string]int) {
	less := func(i, j int) bool {
		a, b := keys[i], keys[j] // want "variable 'keys' used as closure" "variable 'keys' used as closure"

		return weights[a] < weights[b] // want "variable 'weights' used as closure" "variable 'weights' used as closure"
	}

	sort.Slice(keys, less)
}

func named() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r) // want "variable 'err' used as closure"
		}
	}()

	return nil
}

func ranged(items []int) []func() int {
	var fs []func() int

	for _, item := range items {
		fs = append(fs, func() int { return item }) // want "variable 'item' used as closure"
	}

	return fs
}

func nested(a int) int {
	return func() int {
		b := 2

		return func() int {
			return a + b // want "variable 'a' used as closure" "variable 'b' used as closure"
		}()
	}()
}
