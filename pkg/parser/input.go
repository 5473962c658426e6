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

import "unicode/utf8"

// UTF8String is used for code expressivity.
// Inputs are always handled as UTF-8; decoding other encodings is the job of
// the caller (see the stream package and the parsec command).
type UTF8String = string

// Input is an immutable view over the symbols that remain to be parsed.
//
// Symbols are Unicode code points. Consuming a symbol never mutates the
// receiver: Uncons returns a new Input that shares the underlying string
// storage (a Go substring), so no symbol is ever copied.
//
// The zero value is the empty Input.
type Input struct {
	text UTF8String
}

// NewInput returns the initial view over text.
func NewInput(text UTF8String) Input {
	return Input{text: text}
}

// String returns the remaining symbols.
func (in Input) String() string {
	return in.text
}

// Len returns the number of symbols left.
func (in Input) Len() int {
	return utf8.RuneCountInString(in.text)
}

// IsEmpty reports whether no symbol is left.
func (in Input) IsEmpty() bool {
	return len(in.text) == 0
}

// Uncons splits the view into its first symbol and the rest.
//
// ok is false on an empty Input. An invalid UTF-8 byte is returned as
// utf8.RuneError and consumes exactly that byte, so a malformed input is
// still consumed one step at a time.
func (in Input) Uncons() (r rune, rest Input, ok bool) {
	if len(in.text) == 0 {
		return 0, in, false
	}
	r, size := utf8.DecodeRuneInString(in.text)
	return r, Input{text: in.text[size:]}, true
}
