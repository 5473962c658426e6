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

var (
	// ErrNoMatch is returned when the parser fails.
	ErrNoMatch = errors.New("parser: no match")

	// ErrTrailingInput is returned by ParseAll when the parser succeeds
	// without consuming the whole text.
	ErrTrailingInput = errors.New("parser: unconsumed input")
)

// Parse runs p on text and returns the value and the unconsumed text.
//
// It is the boundary between the failure-as-absence model of the parsers and
// Go errors: a failed parse is reported as ErrNoMatch.
func Parse[T any](p Parser[T], text UTF8String) (T, UTF8String, error) {
	var zero T
	if p == nil {
		return zero, text, ErrNoMatch
	}
	value, rest, ok := p.Call(NewInput(text)).Get()
	if !ok {
		return zero, text, ErrNoMatch
	}
	return value, rest.String(), nil
}

// ParseAll runs p on text and requires the whole text to be consumed.
//
// A failed parse is reported as ErrNoMatch; a successful parse that leaves
// symbols behind is reported with an error wrapping ErrTrailingInput.
func ParseAll[T any](p Parser[T], text UTF8String) (T, error) {
	var zero T
	value, rest, err := Parse(p, text)
	if err != nil {
		return zero, err
	}
	if rest != "" {
		return zero, errors.Wrapf(ErrTrailingInput, "%d symbols left", NewInput(rest).Len())
	}
	return value, nil
}
