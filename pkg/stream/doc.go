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

// Package stream feeds text from an io.Reader to a parser, token by token.
//
// The parser package works on complete in-memory text and knows nothing about
// readers. This package is the input source around it: a Scanner cuts the
// reader into Tokens with a bufio.SplitFunc, and a Parse stage runs the parser
// on each of them. A panic in user code stops the stage and is kept, with the
// token that caused it, in the PanicStore of the context.
package stream
