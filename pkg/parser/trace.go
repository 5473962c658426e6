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

package parser

import (
	"context"
	"log/slog"
)

// TraceParser logs every invocation of the parser it wraps.
//
// Logging is the only effect: the Outcome is the inner parser's Outcome,
// unchanged, so a traced grammar parses exactly like the untraced one.
type TraceParser[T any] struct {
	logger *slog.Logger
	label  string
	parser Parser[T]
}

// Trace wraps p so that each Call is logged at slog.LevelDebug under label.
// A nil logger means slog.Default().
func Trace[T any](logger *slog.Logger, label string, p Parser[T]) TraceParser[T] {
	return TraceParser[T]{logger: logger, label: label, parser: p}
}

// Call implements Parser[T].
func (t TraceParser[T]) Call(in Input) Outcome[T] {
	logger := t.logger
	if logger == nil {
		logger = slog.Default()
	}
	if t.parser == nil {
		logger.Debug(t.label, "input", in.String(), "ok", false)
		return Failure[T]()
	}
	out := t.parser.Call(in)
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return out
	}
	if out.OK() {
		logger.Debug(t.label, "input", in.String(), "ok", true, "value", out.Value(), "rest", out.Rest().String())
	} else {
		logger.Debug(t.label, "input", in.String(), "ok", false)
	}
	return out
}
