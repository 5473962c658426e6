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

// MapParser transforms the value of a successful parse.
//
// It never changes whether the inner parser succeeds, nor how much Input it
// consumes. The functor laws hold:
//
//	Map(p, identity)   ≡ p
//	Map(Map(p, f), g)  ≡ Map(p, g∘f)
type MapParser[A, B any] struct {
	parser Parser[A]
	f      func(A) B
}

// Map returns a parser that runs p and applies f to the value it produces.
//
// f must be pure and total: it never fails and never sees the Input.
// On failure of p, f is not called and the failure is propagated untouched.
//
// Usage:
//
//	upper := parser.Map(parser.Item(), unicode.ToUpper)
//	upper.Call(parser.NewInput("hello")) // Success('H', "ello")
func Map[A, B any](p Parser[A], f func(A) B) MapParser[A, B] {
	return MapParser[A, B]{parser: p, f: f}
}

// Call implements Parser[B].
func (m MapParser[A, B]) Call(in Input) Outcome[B] {
	if m.parser == nil || m.f == nil {
		return Failure[B]()
	}
	a, rest, ok := m.parser.Call(in).Get()
	if !ok {
		return Failure[B]()
	}
	return Success(m.f(a), rest)
}
