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
	"flag"

	"fillmore-labs.com/noclosures/internal/config"
	"fillmore-labs.com/noclosures/internal/run"
)

func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(&r.Variant, "variant", "closure rule: closure or declaration")
	flags.Var(behaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(behaviorValue(&r.Behavior, config.HonorNoLint), "nolint", "honor //nolint:noclosures comments")
}
