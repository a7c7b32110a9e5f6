/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Command graphqlparse parses GraphQL documents and prints their concrete syntax tree, abstract
// syntax tree or formatted text.
//
//	graphqlparse [--fragment-variables] [--debug] [--jobs N] {cst|ast|fmt} [files...]
//
// Standard input is read when no file is given.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "graphqlparse",
		Usage: "Parse GraphQL query documents",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fragment-variables",
				Usage: "accept variable definitions on fragments (experimental)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "number of sources to parse concurrently (0 for one per CPU)",
				Value:   0,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "cst",
				Usage:     "Print the parse result with the concrete syntax tree as JSON",
				ArgsUsage: "[files...]",
				Action:    runAction(renderCST),
			},
			{
				Name:      "ast",
				Usage:     "Print the abstract syntax tree (or the errors) as JSON",
				ArgsUsage: "[files...]",
				Action:    runAction(renderAST),
			},
			{
				Name:      "fmt",
				Usage:     "Print the documents in canonical format",
				ArgsUsage: "[files...]",
				Action:    runAction(renderText),
			},
		},
	}
}

// newLogger builds the logger for a run. Logs go to stderr as stdout carries the output.
var newLogger = func(debug bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}
