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

package expr

import (
	"fmt"
	"hash/maphash"
)

// Two fixed seeds keep node hashes and argument-fold hashes from colliding
// with each other. The values are arbitrary; they only need to be distinct
// and stable for the lifetime of a build.
const (
	seedNode uint64 = 0x9e3779b97f4a7c15
	seedArgs uint64 = 0xbf58476d1ce4e5b9
)

// leafSeed randomizes leaf and head hashing per process. Hashes are only
// ever used as in-process map keys, never persisted or sent anywhere.
var leafSeed = maphash.MakeSeed()

// Hash returns a hash of the node consistent with [Expr.Equal]: equal nodes
// hash equal, whatever their line markers or type annotations say.
//
// The result is suitable as a key hash for [Map] or any hash table keyed by
// structural identity.
func (e *Expr) Hash() uint64 {
	h := mix(seedNode, maphash.String(leafSeed, string(e.head)))
	return mix(h, e.argsHash())
}

// argsHash folds the line-skipping view of the argument list, so it sees
// exactly the elements Equal compares.
func (e *Expr) argsHash() uint64 {
	h := seedArgs
	for c := range skipLines(e.args) {
		h = mix(h, childHash(c))
	}
	return h
}

func childHash(c Child) uint64 {
	switch c := c.(type) {
	case *Expr:
		return c.Hash()
	case Leaf:
		return maphash.Comparable(leafSeed, c.Value)
	}
	// LineMarkers never reach here (skipped), and *Raw children cannot
	// survive FromRaw; hashing one means the node was built from an
	// aliased or unconverted tree.
	panic(fmt.Sprintf("expr: cannot hash %T child", c))
}

// mix folds v into h, FNV-1a style.
func mix(h, v uint64) uint64 {
	h ^= v
	h *= 0x100000001b3
	return h
}
