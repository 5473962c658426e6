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
	"context"
	"runtime/debug"

	"github.com/benoit-pereira-da-silva/parsec/pkg/parser"
)

// Token is one piece of the input, as cut by a bufio.SplitFunc, with its
// sequence number in the stream.
type Token struct {
	Index int
	Text  string
}

// Match is the outcome of running the parser on one token.
//
// When OK is false, Value is the zero value and Rest is empty.
type Match[T any] struct {
	Index int
	Token string
	Value T
	Rest  string
	OK    bool
}

// Parse starts a parsing stage. Every token read from in is parsed as a fresh
// parser.Input, and its Match is sent on the returned channel, in token order.
//
// The returned channel is closed when in is closed, when ctx is done, or
// after p panics. A panic ends the stage and is recorded as a *PanicError in
// the PanicStore attached to ctx, if any. Parse never closes in: the upstream
// stage owns it and must watch ctx to be released early.
//
// A nil p fails on every token.
func Parse[T any](ctx context.Context, p parser.Parser[T], in <-chan Token) <-chan Match[T] {
	return parseStage(ctx, p, in, nil)
}

// parseStage is Parse with a hook run once the output channel is closed.
func parseStage[T any](ctx context.Context, p parser.Parser[T], in <-chan Token, done func()) <-chan Match[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	if p == nil {
		p = parser.Zero[T]()
	}
	panics := PanicStoreFromContext(ctx)

	out := make(chan Match[T])
	go func() {
		defer func() {
			close(out)
			if done != nil {
				done()
			}
		}()
		for {
			var tok Token
			select {
			case <-ctx.Done():
				return
			case t, ok := <-in:
				if !ok {
					return
				}
				tok = t
			}

			m, perr := match(p, tok)
			if perr != nil {
				panics.Keep(perr)
				return
			}
			select {
			case <-ctx.Done():
				return
			case out <- m:
			}
		}
	}()
	return out
}

// match parses tok with p and turns a panic into a *PanicError.
func match[T any](p parser.Parser[T], tok Token) (m Match[T], perr *PanicError) {
	defer func() {
		if r := recover(); r != nil {
			perr = &PanicError{Index: tok.Index, Token: tok.Text, Value: r, Stack: debug.Stack()}
		}
	}()
	value, rest, ok := p.Call(parser.NewInput(tok.Text)).Get()
	return Match[T]{Index: tok.Index, Token: tok.Text, Value: value, Rest: rest.String(), OK: ok}, nil
}
