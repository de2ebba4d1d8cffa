// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package registry tracks the current body of every known function
// signature, so that a reload can tell redefinitions that actually changed
// something from ones that merely moved.
//
// The registry stores wrapped [expr.Expr] bodies keyed by signature. Because
// wrapped bodies compare and hash line-insensitively, shifting a function
// down a file and reloading registers as "unchanged", while editing its body
// registers as "changed" — exactly the distinction an incremental
// recompiler needs.
package registry

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"github.com/tidwall/btree"
	"golang.org/x/sync/semaphore"

	"github.com/reloadkit/exprkey/expr"
)

// Registry maps function signatures to their current wrapped bodies.
//
// A zero value is ready to use. All methods may be called concurrently.
type Registry struct {
	mu   sync.RWMutex
	defs btree.Map[string, *expr.Expr]
}

// Define installs the body parsed for sig and reports whether it differs
// from the previously cached body. A signature seen for the first time
// counts as changed.
//
// Define consumes raw (see [expr.FromRaw]); the caller must not use the raw
// tree afterward.
func (r *Registry) Define(sig string, raw *expr.Raw) (changed bool) {
	body := expr.FromRaw(raw)

	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.defs.Get(sig)
	r.defs.Set(sig, body)
	return !ok || !prev.Equal(body)
}

// Lookup returns the cached body for sig.
//
// The returned node is shared with the registry: read it, hash it, or
// convert it with [expr.Expr.ToRaw], but treat it as immutable.
func (r *Registry) Lookup(sig string) (*expr.Expr, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defs.Get(sig)
}

// Delete evicts sig, reporting whether it was present. Used when a reload
// shows a signature no longer exists.
func (r *Registry) Delete(sig string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.defs.Delete(sig)
	return ok
}

// Len returns the number of cached signatures.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defs.Len()
}

// Signatures returns a snapshot of the cached signatures, in sorted order.
func (r *Registry) Signatures() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defs.Keys()
}

// DiffAll reports which signatures in updates have bodies that differ from
// the cached ones, in sorted order. Signatures not yet cached are always
// reported. Nothing is installed: a caller typically diffs first, then
// decides what to re-register and recompile.
//
// Bodies are converted and compared in parallel, at most parallelism at a
// time (GOMAXPROCS if zero or negative). DiffAll consumes the raw trees in
// updates (see [expr.FromRaw]). Returns an error only if ctx is cancelled,
// in which case the result is nil.
func (r *Registry) DiffAll(ctx context.Context, updates map[string]*expr.Raw, parallelism int) ([]string, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	sema := semaphore.NewWeighted(int64(parallelism))

	var (
		mu      sync.Mutex
		changed []string
	)
	for sig, raw := range updates {
		if err := sema.Acquire(ctx, 1); err != nil {
			return nil, context.Cause(ctx)
		}
		go func() {
			defer sema.Release(1)
			body := expr.FromRaw(raw)

			r.mu.RLock()
			prev, ok := r.defs.Get(sig)
			r.mu.RUnlock()

			if !ok || !prev.Equal(body) {
				mu.Lock()
				changed = append(changed, sig)
				mu.Unlock()
			}
		}()
	}

	// Wait for stragglers by draining the whole semaphore.
	if err := sema.Acquire(ctx, int64(parallelism)); err != nil {
		return nil, context.Cause(ctx)
	}
	slices.Sort(changed)
	return changed, nil
}
