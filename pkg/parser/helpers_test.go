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

// observed is a comparable snapshot of an Outcome, used by the tests to diff
// outcomes with cmp and testify.
type observed[T any] struct {
	Value T
	Rest  string
	OK    bool
}

func observe[T any](o Outcome[T]) observed[T] {
	v, rest, ok := o.Get()
	return observed[T]{Value: v, Rest: rest.String(), OK: ok}
}

func success[T any](v T, rest string) observed[T] {
	return observed[T]{Value: v, Rest: rest, OK: true}
}

func failure[T any]() observed[T] {
	return observed[T]{}
}

func run[T any](p Parser[T], text string) observed[T] {
	return observe(p.Call(NewInput(text)))
}

// sampleInputs covers the empty input, single symbols, ASCII and multi-byte
// text.
var sampleInputs = []string{"", "h", "hello", "hello world", "héllo", "日本語", "3abc"}
