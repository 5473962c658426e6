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

import "fmt"

// Outcome is the result of a single Parser.Call.
//
// It is either a success, holding the produced value and the remaining
// Input, or a failure that holds nothing. A failure never exposes a partial
// value: Value returns the zero value of T and Rest returns the empty Input.
type Outcome[T any] struct {
	value T
	rest  Input
	ok    bool
}

// Success builds a successful Outcome.
func Success[T any](value T, rest Input) Outcome[T] {
	return Outcome[T]{value: value, rest: rest, ok: true}
}

// Failure builds a failed Outcome.
func Failure[T any]() Outcome[T] {
	return Outcome[T]{}
}

// OK reports whether the parse succeeded.
func (o Outcome[T]) OK() bool {
	return o.ok
}

// Value returns the produced value, or the zero value on failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Rest returns the unconsumed Input, or the empty Input on failure.
func (o Outcome[T]) Rest() Input {
	return o.rest
}

// Get returns the value, the remaining Input and the success flag at once.
func (o Outcome[T]) Get() (T, Input, bool) {
	return o.value, o.rest, o.ok
}

func (o Outcome[T]) String() string {
	if !o.ok {
		return "Failure"
	}
	return fmt.Sprintf("Success(%v, %q)", o.value, o.rest.text)
}
