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

/*
Bind is the sequencing primitive.

	Bind(p, f)

runs p, hands its value to f to obtain the next parser, then runs that parser
on what p left over. The parser that runs second may therefore depend on a
value already parsed (context-dependent parsing):

	// A digit n followed by exactly n symbols.
	counted := parser.Bind(digit, func(n int) parser.Parser[string] {
		return parser.Runes(n)
	})

Semantics:

  - When p fails, Bind fails and f is never evaluated (short-circuit).
  - When f returns a nil Parser, Bind fails.
  - The outcome of the second parser is returned as is.

The monad laws hold for any parser p, value v and continuations f, g:

	Bind(Return(v), f)   ≡ f(v)
	Bind(p, Return)      ≡ p
	Bind(Bind(p, f), g)  ≡ Bind(p, func(a A) Parser[C] { return Bind(f(a), g) })
*/

// BindParser sequences a parser with a continuation producing the next one.
type BindParser[A, B any] struct {
	parser Parser[A]
	f      func(A) Parser[B]
}

// Bind returns a parser running p, then the parser f builds from p's value.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) BindParser[A, B] {
	return BindParser[A, B]{parser: p, f: f}
}

// Call implements Parser[B].
func (b BindParser[A, B]) Call(in Input) Outcome[B] {
	if b.parser == nil || b.f == nil {
		return Failure[B]()
	}
	a, rest, ok := b.parser.Call(in).Get()
	if !ok {
		return Failure[B]()
	}
	next := b.f(a)
	if next == nil {
		return Failure[B]()
	}
	return next.Call(rest)
}
