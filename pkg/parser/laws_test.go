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

import (
	"strings"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

// runeParsers is a mix of succeeding, failing, consuming and non-consuming
// parsers used to check the laws.
func runeParsers() map[string]Parser[rune] {
	return map[string]Parser[rune]{
		"item":   Item(),
		"zero":   Zero[rune](),
		"return": Return('x'),
		"char-h": Char('h'),
		"upper":  Map(Item(), unicode.ToUpper),
		"second": Then[rune, rune](Item(), Item()),
	}
}

func exclaim(r rune) Parser[string] {
	return Return(string(r) + "!")
}

// failOnH fails on 'h' and otherwise consumes one more symbol.
func failOnH(r rune) Parser[string] {
	if r == 'h' {
		return Zero[string]()
	}
	return Map(Item(), func(next rune) string { return string([]rune{r, next}) })
}

func measure(s string) Parser[int] {
	return Map(Take(len(s)-1, Item()), func(rs []rune) int { return len(rs) + strings.Count(s, "!") })
}

func TestFunctorIdentity(t *testing.T) {
	for name, p := range runeParsers() {
		for _, in := range sampleInputs {
			want := run(p, in)
			got := run[rune](Map(p, func(r rune) rune { return r }), in)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("%s on %q: map identity mismatch (-want +got):\n%s", name, in, diff)
			}
		}
	}
}

func TestFunctorComposition(t *testing.T) {
	f := unicode.ToUpper
	g := func(r rune) int { return int(r) * 2 }
	for name, p := range runeParsers() {
		for _, in := range sampleInputs {
			want := run[int](Map(p, func(r rune) int { return g(f(r)) }), in)
			got := run[int](Map[rune, int](Map(p, f), g), in)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("%s on %q: map composition mismatch (-want +got):\n%s", name, in, diff)
			}
		}
	}
}

func TestMonadLeftIdentity(t *testing.T) {
	continuations := map[string]func(rune) Parser[string]{
		"exclaim": exclaim,
		"failOnH": failOnH,
	}
	for name, f := range continuations {
		for _, v := range []rune{'h', 'z', 'é'} {
			for _, in := range sampleInputs {
				want := run(f(v), in)
				got := run[string](Bind[rune](Return(v), f), in)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("%s(%q) on %q: left identity mismatch (-want +got):\n%s", name, v, in, diff)
				}
			}
		}
	}
}

func TestMonadRightIdentity(t *testing.T) {
	for name, p := range runeParsers() {
		for _, in := range sampleInputs {
			want := run(p, in)
			got := run[rune](Bind(p, func(r rune) Parser[rune] { return Return(r) }), in)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("%s on %q: right identity mismatch (-want +got):\n%s", name, in, diff)
			}
		}
	}
}

func TestMonadAssociativity(t *testing.T) {
	for name, p := range runeParsers() {
		for _, f := range []func(rune) Parser[string]{exclaim, failOnH} {
			for _, in := range sampleInputs {
				left := Bind[string, int](Bind(p, f), measure)
				right := Bind(p, func(a rune) Parser[int] { return Bind(f(a), measure) })
				if diff := cmp.Diff(run[int](left, in), run[int](right, in)); diff != "" {
					t.Fatalf("%s on %q: associativity mismatch (-left +right):\n%s", name, in, diff)
				}
			}
		}
	}
}

func TestBindZeroShortCircuits(t *testing.T) {
	called := false
	p := Bind[rune](Zero[rune](), func(rune) Parser[rune] {
		called = true
		return Item()
	})
	for _, in := range sampleInputs {
		if got := run[rune](p, in); got.OK {
			t.Fatalf("expected failure on %q, got %+v", in, got)
		}
	}
	if called {
		t.Fatalf("continuation evaluated after a failure")
	}
}
