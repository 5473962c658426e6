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

// ZeroParser always fails.
//
// It is the failure identity of Bind: Bind(Zero[A](), f) fails without ever
// calling f.
type ZeroParser[T any] struct{}

// Zero returns a parser that fails on every Input, including the empty one.
func Zero[T any]() ZeroParser[T] {
	return ZeroParser[T]{}
}

// Call implements Parser[T].
func (ZeroParser[T]) Call(Input) Outcome[T] {
	return Failure[T]()
}

// ReturnParser always succeeds with a fixed value and consumes nothing.
//
// It is the success identity of Bind:
//
//	Bind(Return(v), f) ≡ f(v)
//	Bind(p, Return)    ≡ p
type ReturnParser[T any] struct {
	value T
}

// Return returns a parser yielding value without consuming any symbol.
func Return[T any](value T) ReturnParser[T] {
	return ReturnParser[T]{value: value}
}

// Call implements Parser[T].
func (p ReturnParser[T]) Call(in Input) Outcome[T] {
	return Success(p.value, in)
}

// ItemParser consumes exactly one symbol.
//
// It is the only primitive that inspects the Input; every other parser that
// consumes symbols is built on top of it.
type ItemParser struct{}

// Item returns a parser that yields the first symbol of the Input and the
// Input without it. It fails on empty Input.
func Item() ItemParser {
	return ItemParser{}
}

// Call implements Parser[rune].
func (ItemParser) Call(in Input) Outcome[rune] {
	r, rest, ok := in.Uncons()
	if !ok {
		return Failure[rune]()
	}
	return Success(r, rest)
}
