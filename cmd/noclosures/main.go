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

// Command noclosures reports JavaScript and TypeScript variables used across function boundaries.
package main

import (
	"context"
	"os"
	"os/signal"

	"fillmore-labs.com/noclosures/internal/cli"
)

var version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := cli.Run(ctx, os.Args, os.Stdout, os.Stderr, version)

	stop()
	os.Exit(code)
}
