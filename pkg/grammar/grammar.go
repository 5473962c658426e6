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

// Package grammar holds small grammars built only from the parser
// combinators. They are used by the parsec command and double as examples.
package grammar

import (
	"unicode"

	"github.com/benoit-pereira-da-silva/parsec/pkg/parser"
	"github.com/pkg/errors"
)

// ErrNegativeWidth is returned by Record when a field width is negative.
var ErrNegativeWidth = errors.New("grammar: negative field width")

// Digit consumes one ASCII digit and yields its value.
func Digit() parser.Parser[int] {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	return parser.Map(parser.Sat(isDigit), func(r rune) int { return int(r - '0') })
}

// Letter consumes one Unicode letter.
func Letter() parser.Parser[rune] {
	return parser.Sat(unicode.IsLetter)
}

// Upper consumes one symbol and yields it upper-cased.
func Upper() parser.Parser[rune] {
	return parser.Map[rune](parser.Item(), unicode.ToUpper)
}

// Exclaim consumes one symbol and yields it followed by "!".
func Exclaim() parser.Parser[string] {
	return parser.Bind[rune](parser.Item(), func(r rune) parser.Parser[string] {
		return parser.Return(string(r) + "!")
	})
}

// Counted reads a digit n, then exactly n symbols, and yields those symbols.
//
//	"3abcd" -> "abc", rest "d"
//	"0abc"  -> "",    rest "abc"
//	"5ab"   -> failure
func Counted() parser.Parser[string] {
	return parser.Bind(Digit(), func(n int) parser.Parser[string] {
		return parser.Runes(n)
	})
}

// Field consumes a fixed-width field of width symbols.
// It panics if width is negative.
func Field(width int) parser.Parser[string] {
	return parser.Runes(width)
}

// Record consumes consecutive fixed-width fields and yields them in order.
//
// Widths are checked when the record is built; a negative width is reported
// as an error wrapping ErrNegativeWidth.
func Record(widths ...int) (parser.Parser[[]string], error) {
	for i, w := range widths {
		if w < 0 {
			return nil, errors.Wrapf(ErrNegativeWidth, "field %d has width %d", i, w)
		}
	}
	var p parser.Parser[[]string] = parser.Return[[]string](nil)
	// Fields are chained from the last one, prepending each value, so no
	// slice is ever shared between two parses.
	for i := len(widths) - 1; i >= 0; i-- {
		tail := p
		p = parser.Bind(Field(widths[i]), func(field string) parser.Parser[[]string] {
			return parser.Map(tail, func(rest []string) []string {
				return append([]string{field}, rest...)
			})
		})
	}
	return parser.Map(p, func(fields []string) []string {
		if fields == nil {
			return []string{}
		}
		return fields
	}), nil
}

// KeyValue reads key, an '=' sign, then a counted value:
//
//	KeyValue("name").Call("name=3bob!") -> "bob", rest "!"
func KeyValue(key string) parser.Parser[string] {
	return parser.Then(parser.Literal(key), parser.Then(parser.Char('='), Counted()))
}
