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

// Command parsec runs small combinator grammars over every token of a file
// or of stdin.
//
// Usage:
//
//	parsec take 3 notes.txt
//	printf '3abc\n2xyz\n' | parsec counted --full
//	parsec literal hello --split expressions --trace --log-level debug
//	parsec record 4,2,2 dates.txt --encoding latin1
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
