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

package stream

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/benoit-pereira-da-silva/parsec/pkg/parser"
	"github.com/pkg/errors"
)

// Scanner connects an io.Reader to a parser.
//
// The input is cut into tokens by a bufio.SplitFunc (default: bufio.ScanLines)
// and every token is parsed independently by a Parse stage. The parser itself
// never sees the reader: loading text is the Scanner's job, parsing it is the
// parser's.
//
// Usage pattern:
//
//	s := stream.NewScanner(grammar.Counted(), reader)
//	s.SetContext(ctx)                     // optional, before Start
//	s.SetSplitFunc(stream.ScanExpression) // optional, before Start
//	for m := range s.Start() {
//		// consume m
//	}
//	if err := s.Err(); err != nil {
//		// scanning failed or user code panicked
//	}
//
// Matches are delivered in token order. Stop cancels the scan, which closes
// the output channel promptly.
type Scanner[T any] struct {
	reader    io.Reader
	splitFunc bufio.SplitFunc
	parser    parser.Parser[T]
	logger    *slog.Logger
	parent    context.Context

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	err    error
	panics *PanicStore
}

// NewScanner returns a Scanner applying p to every token read from reader.
// A nil parser fails on every token.
func NewScanner[T any](p parser.Parser[T], reader io.Reader) *Scanner[T] {
	if p == nil {
		p = parser.Zero[T]()
	}
	return &Scanner[T]{
		reader:    reader,
		splitFunc: bufio.ScanLines,
		parser:    p,
	}
}

// SetContext sets the parent context of the scan.
// It must be called before Start / StartWithTimeout.
func (s *Scanner[T]) SetContext(ctx context.Context) {
	s.parent = ctx
}

// SetSplitFunc customizes the tokenization.
// It must be called before Start / StartWithTimeout.
func (s *Scanner[T]) SetSplitFunc(splitFunc bufio.SplitFunc) {
	if splitFunc == nil {
		splitFunc = bufio.ScanLines
	}
	s.splitFunc = splitFunc
}

// SetLogger sets the logger used for lifecycle events. The default is
// slog.Default().
func (s *Scanner[T]) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

func (s *Scanner[T]) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

// Start scans the reader in a goroutine and returns the channel of matches.
//
// Scanning stops at the end of the input, on a read error (reported by Err),
// or when the context is done. The returned channel is closed afterwards and
// the context of the scan is released.
func (s *Scanner[T]) Start() <-chan Match[T] {
	return s.start(0)
}

// StartWithTimeout is like Start but cancels the scan once timeout elapses.
// A timeout <= 0 means no timeout.
func (s *Scanner[T]) StartWithTimeout(timeout time.Duration) <-chan Match[T] {
	return s.start(timeout)
}

func (s *Scanner[T]) start(timeout time.Duration) <-chan Match[T] {
	parent := s.parent
	if parent == nil {
		parent = context.Background()
	}
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	ctx, ps := WithPanicStore(ctx)

	s.mu.Lock()
	s.ctx, s.cancel = ctx, cancel
	s.panics = ps
	s.err = nil
	s.mu.Unlock()

	logger := s.log()
	return parseStage(ctx, s.parser, s.scan(ctx, logger), func() {
		cancel()
		if perr := ps.Err(); perr != nil {
			logger.Error("stream: recovered panic", "index", perr.Index, "panic", perr.Value)
		}
	})
}

// scan sends the tokens of the reader until the input ends or ctx is done.
func (s *Scanner[T]) scan(ctx context.Context, logger *slog.Logger) <-chan Token {
	scanner := bufio.NewScanner(s.reader)
	scanner.Split(s.splitFunc)

	tokens := make(chan Token)
	go func() {
		defer close(tokens)
		count := 0
		defer func() {
			logger.Debug("stream: scan done", "tokens", count)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					logger.Error("stream: scan failed", "err", err, "tokens", count)
					s.setErr(errors.Wrap(err, "stream: scan"))
				}
				return
			}
			tok := Token{Index: count, Text: scanner.Text()}
			count++
			select {
			case <-ctx.Done():
				return
			case tokens <- tok:
			}
		}
	}()
	return tokens
}

// Stop cancels the scan. It is a no-op before Start.
func (s *Scanner[T]) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Err reports why the scan ended early, once the output channel is drained:
// a read error from the reader, or a *PanicError recovered from user code
// such as a Map function. Cancellation is not an error.
func (s *Scanner[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if perr := s.panics.Err(); perr != nil {
		return perr
	}
	return nil
}

func (s *Scanner[T]) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}
