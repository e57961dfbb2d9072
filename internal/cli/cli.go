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

// Package cli implements the noclosures command line for JavaScript and TypeScript sources.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v3"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitError    = 2
)

// Run executes the command line and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, version string) int {
	cmd := New(stdout, stderr, version)

	err := cmd.Run(ctx, args)
	if err == nil {
		return ExitOK
	}

	var exit cli.ExitCoder
	if errors.As(err, &exit) {
		if msg := exit.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}

		return exit.ExitCode()
	}

	fmt.Fprintf(stderr, "noclosures: %v\n", err)

	return ExitError
}

type app struct {
	stdout, stderr io.Writer
}

// New creates the root command writing to stdout and stderr.
func New(stdout, stderr io.Writer, version string) *cli.Command {
	a := app{stdout: stdout, stderr: stderr}

	ignoreExit := func(context.Context, *cli.Command, error) {}

	return &cli.Command{
		Name:           "noclosures",
		Usage:          "Report variables used across function boundaries",
		Version:        version,
		Writer:         stdout,
		ErrWriter:      stderr,
		ExitErrHandler: ignoreExit,
		Commands: []*cli.Command{
			{
				Name:           "check",
				Usage:          "Check JavaScript and TypeScript sources",
				ArgsUsage:      "[paths...]",
				ExitErrHandler: ignoreExit,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "variant",
						Usage: "closure rule: closure or declaration",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "YAML configuration file",
					},
					&cli.IntFlag{
						Name:    "jobs",
						Aliases: []string{"j"},
						Usage:   "Files analyzed concurrently",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text or json",
					},
					&cli.StringSliceFlag{
						Name:  "exclude",
						Usage: "File or directory name pattern to skip",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Fail on files with syntax errors",
					},
					&cli.BoolFlag{
						Name:  "no-color",
						Usage: "Disable ANSI color output",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "Log configuration and per-file progress",
					},
				},
				Action: a.check,
			},
		},
	}
}

// config loads the configuration file and applies flag overrides.
func config(cmd *cli.Command) (Config, error) {
	conf := DefaultConfig()

	if path := cmd.String("config"); path != "" {
		var err error
		if conf, err = LoadConfig(path); err != nil {
			return Config{}, err
		}
	}

	if cmd.IsSet("variant") {
		if err := conf.Variant.Set(cmd.String("variant")); err != nil {
			return Config{}, err
		}
	}

	if cmd.IsSet("jobs") {
		conf.Jobs = int(cmd.Int("jobs"))
	}

	if cmd.IsSet("format") {
		conf.Format = cmd.String("format")
	}

	conf.Exclude = append(conf.Exclude, cmd.StringSlice("exclude")...)

	return conf, conf.Validate()
}

func (a app) check(ctx context.Context, cmd *cli.Command) error {
	conf, err := config(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("Configuration", slog.Any("config", conf))

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collect(paths, conf.Exclude)
	if err != nil {
		return err
	}

	logger.Debug("Collected files", slog.Int("count", len(files)))

	checker := Checker{
		Variant: conf.Variant,
		Jobs:    conf.Jobs,
		Strict:  cmd.Bool("strict"),
		Logger:  logger,
	}

	results, err := checker.Check(ctx, files)
	if err != nil {
		return err
	}

	switch conf.Format {
	case FormatJSON:
		err = printJSON(a.stdout, results)

	default:
		err = printText(a.stdout, results, colorOutput(a.stdout, cmd.Bool("no-color")))
	}

	if err != nil {
		return err
	}

	var (
		errs     *multierror.Error
		findings int
	)

	for _, r := range results {
		if r.Err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", r.Path, r.Err))
		}

		findings += len(r.Diagnostics)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	if findings > 0 {
		return cli.Exit("", ExitFindings)
	}

	return nil
}
