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

/*
Package parser is a small algebra for building parsers out of smaller ones.

A Parser[T] turns an Input (an immutable view over UTF-8 text) into an
Outcome[T]: either a value with the remaining Input, or a failure.

Primitives:

  - Zero fails on every Input.
  - Return yields a fixed value and consumes nothing.
  - Item consumes exactly one symbol (a rune).

Combinators:

  - Map transforms the value of a successful parse.
  - Bind runs a parser, then the parser built from its value.
  - Take runs a parser a fixed number of times, all or nothing.

Grammars are values. Building one runs nothing:

	digit := parser.Map(parser.Sat(isDigit), func(r rune) int { return int(r - '0') })
	counted := parser.Bind[int, string](digit, func(n int) parser.Parser[string] {
		return parser.Runes(n)
	})

	v, err := parser.ParseAll(counted, "3abc") // "abc", nil

Failure carries no information and stops the evaluation at the first failing
step. There is no alternation: a parser never retries another branch.
*/
package parser
