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
	"context"
	"fmt"
	"sync"
)

// PanicError reports a panic raised by user code, typically a function given
// to parser.Map or parser.Bind, while one token was being parsed.
//
// Stack is captured where the panic was recovered, before unwinding, so it
// shows the frame that panicked.
type PanicError struct {
	Index int
	Token string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("stream: panic parsing token %d %q: %v", e.Index, e.Token, e.Value)
}

// PanicStore keeps the first PanicError raised in a pipeline.
//
// Stages find it through their context (see WithPanicStore). A nil
// *PanicStore drops everything, so a stage never has to check for one.
type PanicStore struct {
	mu    sync.Mutex
	first *PanicError
}

// Keep records err unless an earlier panic is already recorded, and reports
// whether err was kept.
func (ps *PanicStore) Keep(err *PanicError) bool {
	if ps == nil || err == nil {
		return false
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.first != nil {
		return false
	}
	ps.first = err
	return true
}

// Err returns the first recorded panic, or nil.
func (ps *PanicStore) Err() *PanicError {
	if ps == nil {
		return nil
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.first
}

type panicsKey struct{}

// WithPanicStore attaches a fresh PanicStore to parent.
func WithPanicStore(parent context.Context) (context.Context, *PanicStore) {
	if parent == nil {
		parent = context.Background()
	}
	ps := new(PanicStore)
	return context.WithValue(parent, panicsKey{}, ps), ps
}

// PanicStoreFromContext returns the PanicStore attached to ctx, or nil.
func PanicStoreFromContext(ctx context.Context) *PanicStore {
	if ctx == nil {
		return nil
	}
	if ps, ok := ctx.Value(panicsKey{}).(*PanicStore); ok {
		return ps
	}
	return nil
}
