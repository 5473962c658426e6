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

// Parser is the building block of every grammar.
//
// Implementations are expected to:
//
//   - Be pure: the Outcome depends only on the Input and on what was captured
//     when the parser was built. No hidden global state, no side effects.
//   - Never mutate the Input they receive. Consumption is expressed by
//     returning a shorter view in the Outcome.
//   - Be reusable: Call can be invoked any number of times, on any Input,
//     including concurrently. Take relies on this to run the same parser
//     repeatedly.
//
// Parsers are composed, never modified: Map, Bind and Take build a new parser
// value that owns its children. Nothing runs until the outermost parser's Call
// is invoked, and evaluation stops at the first failure.
type Parser[T any] interface {
	// Call runs the parser against in.
	Call(in Input) Outcome[T]
}

// Func is a function adapter that implements Parser.
//
// It allows plain functions to be used as Parser values:
//
//	vowel := parser.Func[rune](func(in parser.Input) parser.Outcome[rune] {
//		r, rest, ok := in.Uncons()
//		if !ok || !strings.ContainsRune("aeiou", r) {
//			return parser.Failure[rune]()
//		}
//		return parser.Success(r, rest)
//	})
//
// A nil Func always fails.
type Func[T any] func(in Input) Outcome[T]

// Call calls f(in).
func (f Func[T]) Call(in Input) Outcome[T] {
	if f == nil {
		return Failure[T]()
	}
	return f(in)
}
