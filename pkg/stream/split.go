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

package stream

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// ScanLines is a bufio.SplitFunc returning each line of text with its
// trailing end-of-line marker, if any. Unlike bufio.ScanLines, nothing is
// dropped: concatenating the tokens gives back the input, and a parser sees
// the "\r\n" or "\n" that ends the line.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ScanExpression is a bufio.SplitFunc that cuts the input around words.
//
// Each token is:
//
//	[leading whitespace][a non-empty run of non-whitespace][trailing whitespace]
//
// Leading whitespace only occurs on the first token of the stream. As with
// ScanLines, concatenating the tokens reconstructs the input byte for byte.
// Invalid UTF-8 bytes are treated as non-whitespace.
func ScanExpression(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	start := skip(data, 0, isSpace)
	if start == len(data) {
		// Only whitespace so far: keep it for the next word unless the input
		// is over.
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}

	end := skip(data, start, func(r rune) bool { return !isSpace(r) })
	if end == len(data) {
		// The word may continue in the next read.
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}

	end = skip(data, end, isSpace)
	if end == len(data) && !atEOF {
		// More whitespace may follow; it belongs to this token.
		return 0, nil, nil
	}
	return end, data[:end], nil
}

// isSpace reports whether r is whitespace. utf8.RuneError is never a space,
// so undecodable bytes stick to the word they belong to.
func isSpace(r rune) bool {
	return r != utf8.RuneError && unicode.IsSpace(r)
}

// skip returns the index of the first rune at or after from that does not
// satisfy keep, or len(data).
func skip(data []byte, from int, keep func(rune) bool) int {
	i := from
	for i < len(data) {
		r, size := utf8.DecodeRune(data[i:])
		if !keep(r) {
			return i
		}
		i += size
	}
	return i
}
