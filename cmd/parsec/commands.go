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
	"fmt"
	"strconv"
	"strings"

	"github.com/benoit-pereira-da-silva/parsec/pkg/grammar"
	"github.com/benoit-pereira-da-silva/parsec/pkg/parser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTakeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "take N [file]",
		Short: "Read the first N symbols of every token",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid count %q", args[0])
			}
			take, err := parser.NewTake(n, parser.Item())
			if err != nil {
				return err
			}
			p := parser.Map(take, func(rs []rune) string { return string(rs) })
			return run[string](cmd, opts, p, args[1:], strconv.Quote)
		},
	}
}

func newCountedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "counted [file]",
		Short: "Read a digit n, then exactly n symbols, from every token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, grammar.Counted(), args, strconv.Quote)
		},
	}
}

func newLiteralCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "literal WORD [file]",
		Short: "Match WORD at the start of every token",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, parser.Literal(args[0]), args[1:], strconv.Quote)
		},
	}
}

func newRecordCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "record W1,W2,... [file]",
		Short: "Cut every token into fixed-width fields",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			widths, err := parseWidths(args[0])
			if err != nil {
				return err
			}
			p, err := grammar.Record(widths...)
			if err != nil {
				return err
			}
			return run(cmd, opts, p, args[1:], func(fields []string) string {
				return fmt.Sprintf("%q", fields)
			})
		},
	}
}

func parseWidths(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))
	for _, part := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid width %q", part)
		}
		widths = append(widths, w)
	}
	return widths, nil
}
