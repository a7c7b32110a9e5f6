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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/mattfenwick/graphqllint/graphql/parser"
	"github.com/mattfenwick/graphqllint/graphql/token"

	"github.com/json-iterator/go"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrParseFailed is returned when at least one source failed to parse.
var ErrParseFailed = errors.New("failed to parse")

// stdinName names the source read from standard input.
const stdinName = "<stdin>"

var jsonConfig = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// renderer writes the outcome of parsing source to stream. It returns the parse error, if any,
// after writing what should be shown for it.
type renderer func(stream *jsoniter.Stream, source *token.Source, options parser.ParseOptions) error

// output is what a run produced for one source.
type output struct {
	data []byte
	err  error
}

func runAction(render renderer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		logger, err := newLogger(cmd.Bool("debug"))
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()

		r := &run{
			logger: logger,
			options: parser.ParseOptions{
				ExperimentalFragmentVariables: cmd.Bool("fragment-variables"),
			},
			jobs:   int(cmd.Int("jobs")),
			render: render,
			stdin:  cmd.Root().Reader,
		}

		names := cmd.Args().Slice()
		outputs, err := r.parseAll(ctx, names)
		if err != nil {
			return err
		}

		return r.report(cmd.Root().Writer, names, outputs)
	}
}

type run struct {
	logger  *zap.Logger
	options parser.ParseOptions
	jobs    int
	render  renderer
	stdin   io.Reader
}

// parseAll parses the named files concurrently, or the standard input if there's no name. Outputs
// are returned in the order of names. Only I/O errors abort the run; parse errors are kept in the
// output of each source.
func (r *run) parseAll(ctx context.Context, names []string) ([]output, error) {
	if len(names) == 0 {
		body, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, fmt.Errorf("read standard input: %w", err)
		}
		return []output{r.parse(stdinName, body)}, nil
	}

	jobs := r.jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	outputs := make([]output, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			body, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			outputs[i] = r.parse(name, body)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func (r *run) parse(name string, body []byte) output {
	source := token.NewSource(&token.SourceConfig{
		Body: token.SourceBody(body),
		Name: name,
	})

	stream := jsoniter.NewStream(jsonConfig, nil, 512)

	start := time.Now()
	err := r.render(stream, source, r.options)
	r.logger.Debug("parsed source",
		zap.String("source", name),
		zap.Int("size", len(body)),
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("ok", err == nil))

	if stream.Error != nil {
		err = stream.Error
	}

	return output{
		data: stream.Buffer(),
		err:  err,
	}
}

// report writes outputs to out and logs the parse errors.
func (r *run) report(out io.Writer, names []string, outputs []output) error {
	var failed int
	for i, output := range outputs {
		if output.err != nil {
			failed++
			name := stdinName
			if len(names) > 0 {
				name = names[i]
			}
			r.logger.Error("cannot parse source", zap.String("source", name), zap.Error(output.err))
		}

		if len(output.data) == 0 {
			continue
		}
		if _, err := out.Write(output.data); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w %d of %d sources", ErrParseFailed, failed, len(outputs))
	}
	return nil
}
