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

package grammar

import (
	"testing"

	"github.com/benoit-pereira-da-silva/parsec/pkg/parser"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigit(t *testing.T) {
	v, rest, err := parser.Parse(Digit(), "7up")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, "up", rest)

	_, _, err = parser.Parse(Digit(), "٣") // Arabic-Indic digit: not ASCII
	assert.True(t, errors.Is(err, parser.ErrNoMatch))
}

func TestLetterUpperExclaim(t *testing.T) {
	v, _, err := parser.Parse(Letter(), "été")
	require.NoError(t, err)
	assert.Equal(t, 'é', v)

	_, _, err = parser.Parse(Letter(), "1a")
	assert.Error(t, err)

	u, rest, err := parser.Parse(Upper(), "hello")
	require.NoError(t, err)
	assert.Equal(t, 'H', u)
	assert.Equal(t, "ello", rest)

	e, rest, err := parser.Parse(Exclaim(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "h!", e)
	assert.Equal(t, "ello", rest)
}

func TestCounted(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		wantRest string
		ok       bool
	}{
		{in: "3abcd", want: "abc", wantRest: "d", ok: true},
		{in: "0abc", want: "", wantRest: "abc", ok: true},
		{in: "2日本語", want: "日本", wantRest: "語", ok: true},
		{in: "5ab", ok: false},
		{in: "abc", ok: false},
		{in: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, rest, err := parser.Parse(Counted(), tt.in)
			if !tt.ok {
				assert.True(t, errors.Is(err, parser.ErrNoMatch))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestRecord(t *testing.T) {
	p, err := Record(3, 2, 4)
	require.NoError(t, err)

	v, rest, err := parser.Parse(p, "abcdeFGHIrest")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "de", "FGHI"}, v)
	assert.Equal(t, "rest", rest)

	_, _, err = parser.Parse(p, "abcdeFG")
	assert.True(t, errors.Is(err, parser.ErrNoMatch))

	// Running the same record twice yields independent slices.
	first, _, _ := parser.Parse(p, "abcdeFGHI")
	first[0] = "zzz"
	second, _, _ := parser.Parse(p, "abcdeFGHI")
	assert.Equal(t, "abc", second[0])
}

func TestRecord_Empty(t *testing.T) {
	p, err := Record()
	require.NoError(t, err)
	v, rest, err := parser.Parse(p, "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{}, v)
	assert.Equal(t, "abc", rest)
}

func TestRecord_NegativeWidth(t *testing.T) {
	_, err := Record(2, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeWidth))
	assert.Contains(t, err.Error(), "field 1")
}

func TestKeyValue(t *testing.T) {
	v, rest, err := parser.Parse(KeyValue("name"), "name=3bob!")
	require.NoError(t, err)
	assert.Equal(t, "bob", v)
	assert.Equal(t, "!", rest)

	_, err = parser.ParseAll(KeyValue("name"), "name:3bob")
	assert.True(t, errors.Is(err, parser.ErrNoMatch))
}
