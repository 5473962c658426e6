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

// The combinators below are shorthands. Each one is a composition of Return,
// Zero, Item, Map and Bind; none of them chooses between alternatives.

// Tuple holds the values of two parsers run in sequence.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Then runs p then q and keeps q's value.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Bind(p, func(A) Parser[B] { return q })
}

// Left runs p then q and keeps p's value.
func Left[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Bind(p, func(a A) Parser[A] {
		return Map(q, func(B) A { return a })
	})
}

// Pair runs p then q and keeps both values.
func Pair[A, B any](p Parser[A], q Parser[B]) Parser[Tuple[A, B]] {
	return Bind(p, func(a A) Parser[Tuple[A, B]] {
		return Map(q, func(b B) Tuple[A, B] { return Tuple[A, B]{First: a, Second: b} })
	})
}

// Sat consumes one symbol satisfying pred and fails otherwise.
func Sat(pred func(rune) bool) Parser[rune] {
	return Bind[rune, rune](Item(), func(r rune) Parser[rune] {
		if pred != nil && pred(r) {
			return Return(r)
		}
		return Zero[rune]()
	})
}

// Char consumes exactly the symbol want.
func Char(want rune) Parser[rune] {
	return Sat(func(r rune) bool { return r == want })
}

// Literal consumes exactly the symbols of s and yields s.
// Literal("") consumes nothing and always succeeds.
func Literal(s UTF8String) Parser[UTF8String] {
	var p Parser[UTF8String] = Return(s)
	// Build from the last symbol backwards so that the first symbol of s is
	// the first one checked.
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		p = Then(Char(runes[i]), p)
	}
	return p
}

// Runes consumes exactly count symbols and yields them as a string.
// It panics if count is negative, like Take.
func Runes(count int) Parser[UTF8String] {
	return Map[[]rune](Take[rune](count, Item()), func(rs []rune) UTF8String {
		return UTF8String(rs)
	})
}
