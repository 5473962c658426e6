// Copyright 2026 Benoit Pereira da Silva
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

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/benoit-pereira-da-silva/parsec/pkg/parser"
	"github.com/benoit-pereira-da-silva/parsec/pkg/stream"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/ianaindex"
)

// options holds the global flags shared by every command.
type options struct {
	split    string
	encoding string
	full     bool
	timeout  time.Duration
	logLevel string
	trace    bool
}

var splitFuncs = map[string]bufio.SplitFunc{
	"lines":       bufio.ScanLines,
	"raw-lines":   stream.ScanLines,
	"expressions": stream.ScanExpression,
	"runes":       bufio.ScanRunes,
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "parsec",
		Short: "Run combinator grammars over text",
		Long: `parsec cuts its input into tokens and parses every token with a grammar
built from the parser combinators.

Each token prints one line:

  index<TAB>value<TAB>rest   when the grammar matches
  index<TAB>no match         otherwise

The input is the file named after the command arguments, or stdin.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.split, "split", "lines", "tokenization: lines, raw-lines, expressions or runes")
	flags.StringVar(&opts.encoding, "encoding", "", "IANA name of the input encoding (default UTF-8)")
	flags.BoolVar(&opts.full, "full", false, "only count matches that consume the whole token")
	flags.DurationVar(&opts.timeout, "timeout", 0, "abort after this duration (0 means no limit)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.trace, "trace", false, "log every grammar invocation at debug level")

	root.AddCommand(
		newTakeCmd(opts),
		newCountedCmd(opts),
		newLiteralCmd(opts),
		newRecordCmd(opts),
	)
	return root
}

func (o *options) logger(cmd *cobra.Command) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, errors.Wrapf(err, "invalid --log-level %q", o.logLevel)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}

func (o *options) splitFunc() (bufio.SplitFunc, error) {
	f, ok := splitFuncs[o.split]
	if !ok {
		return nil, errors.Errorf("invalid --split %q", o.split)
	}
	return f, nil
}

// decode wraps r so that it yields UTF-8, according to --encoding.
func (o *options) decode(r io.Reader) (io.Reader, error) {
	name := strings.TrimSpace(o.encoding)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --encoding %q", name)
	}
	if enc == nil {
		return nil, errors.Errorf("unsupported --encoding %q", name)
	}
	return enc.NewDecoder().Reader(r), nil
}

// openInput returns the file named by args, or stdin when args is empty.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}

// run streams the input of cmd through p and prints one line per token.
// format renders a successful value.
func run[T any](cmd *cobra.Command, opts *options, p parser.Parser[T], args []string, format func(T) string) error {
	logger, err := opts.logger(cmd)
	if err != nil {
		return err
	}
	split, err := opts.splitFunc()
	if err != nil {
		return err
	}
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			logger.Warn("failed to close input", "err", cerr)
		}
	}()
	reader, err := opts.decode(in)
	if err != nil {
		return err
	}

	if opts.trace {
		p = parser.Trace(logger, cmd.Name(), p)
	}

	s := stream.NewScanner(p, reader)
	s.SetContext(cmd.Context())
	s.SetSplitFunc(split)
	s.SetLogger(logger)

	out := cmd.OutOrStdout()
	tokens, matched := 0, 0
	for m := range s.StartWithTimeout(opts.timeout) {
		tokens++
		if !m.OK || (opts.full && m.Rest != "") {
			fmt.Fprintf(out, "%d\tno match\n", m.Index)
			continue
		}
		matched++
		fmt.Fprintf(out, "%d\t%s\t%q\n", m.Index, format(m.Value), m.Rest)
	}
	logger.Info("parsec: done", "command", cmd.Name(), "tokens", tokens, "matched", matched)
	return s.Err()
}
