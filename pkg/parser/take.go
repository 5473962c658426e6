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

import "github.com/pkg/errors"

// ErrNegativeCount is returned by NewTake when asked for fewer than zero
// repetitions.
var ErrNegativeCount = errors.New("parser: negative repetition count")

// TakeParser applies a parser a fixed number of times and collects the values
// in order.
//
// TakeParser is not a primitive. Each repetition is one Bind of the inner
// parser into a Return of the grown accumulator, and Call folds these steps
// from the left over the Input, one step at a time. Only the step about to run
// exists, so the stack depth does not grow with count, and a short input fails
// at its first missing symbol however large count is.
//
// The values are accumulated in a persistent list, so partial results are
// never shared between invocations.
//
// The repetition is all or nothing: if any step fails, the whole TakeParser
// fails, and the caller observes neither a partial slice nor a partially
// consumed Input.
type TakeParser[T any] struct {
	count  int
	parser Parser[T]
}

// NewTake returns a parser applying p exactly count times.
//
// count == 0 yields an empty, non-nil slice without running p.
// count < 0 is rejected with an error wrapping ErrNegativeCount.
func NewTake[T any](count int, p Parser[T]) (TakeParser[T], error) {
	if count < 0 {
		return TakeParser[T]{}, errors.Wrapf(ErrNegativeCount, "take %d", count)
	}
	return TakeParser[T]{count: count, parser: p}, nil
}

// Take is like NewTake but panics if count is negative.
// It simplifies safe initialization of grammars built from constants.
func Take[T any](count int, p Parser[T]) TakeParser[T] {
	t, err := NewTake(count, p)
	if err != nil {
		panic(err)
	}
	return t
}

// Count returns the number of repetitions.
func (t TakeParser[T]) Count() int {
	return t.count
}

// Call implements Parser[[]T].
//
// The zero value behaves as Take(0, ...).
func (t TakeParser[T]) Call(in Input) Outcome[[]T] {
	var acc *list[T]
	rest := in
	for i := 0; i < t.count; i++ {
		out := step(acc, t.parser).Call(rest)
		if !out.OK() {
			return Failure[[]T]()
		}
		acc, rest = out.Value(), out.Rest()
	}
	return Success(acc.slice(), rest)
}

// step runs p once and pushes its value on acc.
func step[T any](acc *list[T], p Parser[T]) Parser[*list[T]] {
	return Bind(p, func(v T) Parser[*list[T]] {
		return Return(acc.push(v))
	})
}

// list is an immutable cons cell; the newest value is at the head.
type list[T any] struct {
	head T
	tail *list[T]
	size int
}

func (l *list[T]) push(v T) *list[T] {
	size := 1
	if l != nil {
		size += l.size
	}
	return &list[T]{head: v, tail: l, size: size}
}

func (l *list[T]) slice() []T {
	if l == nil {
		return make([]T, 0)
	}
	out := make([]T, l.size)
	for i, cell := l.size-1, l; cell != nil; i, cell = i-1, cell.tail {
		out[i] = cell.head
	}
	return out
}
