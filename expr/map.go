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
	"iter"
	"slices"
)

// Map is a hash map keyed by structural equality of expressions.
//
// Go's built-in maps would compare *Expr keys by pointer identity; Map uses
// [Expr.Hash] and [Expr.Equal] instead, so two independently converted
// copies of the same body find the same entry.
//
// A zero value is ready to use. Map is not safe for concurrent mutation.
type Map[V any] struct {
	table map[uint64][]mapEntry[V]
	count int
}

type mapEntry[V any] struct {
	key   *Expr
	value V
}

// Get looks up the value stored under a key structurally equal to key.
func (m *Map[V]) Get(key *Expr) (value V, ok bool) {
	bucket := m.table[key.Hash()]
	for _, e := range bucket {
		if e.key.Equal(key) {
			return e.value, true
		}
	}
	return value, false
}

// Set stores value under key, replacing any entry with a structurally equal
// key. Returns the replaced value, if there was one.
func (m *Map[V]) Set(key *Expr, value V) (prev V, replaced bool) {
	if m.table == nil {
		m.table = make(map[uint64][]mapEntry[V])
	}
	h := key.Hash()
	bucket := m.table[h]
	for i, e := range bucket {
		if e.key.Equal(key) {
			prev = e.value
			bucket[i].value = value
			return prev, true
		}
	}
	m.table[h] = append(bucket, mapEntry[V]{key: key, value: value})
	m.count++
	return prev, false
}

// Delete removes the entry whose key is structurally equal to key, and
// reports whether there was one.
func (m *Map[V]) Delete(key *Expr) bool {
	h := key.Hash()
	bucket := m.table[h]
	for i, e := range bucket {
		if e.key.Equal(key) {
			bucket = slices.Delete(bucket, i, i+1)
			if len(bucket) == 0 {
				delete(m.table, h)
			} else {
				m.table[h] = bucket
			}
			m.count--
			return true
		}
	}
	return false
}

// Len returns the number of entries in the map.
func (m *Map[V]) Len() int {
	return m.count
}

// All returns an iterator over the map's entries, in no particular order.
func (m *Map[V]) All() iter.Seq2[*Expr, V] {
	return func(yield func(*Expr, V) bool) {
		for _, bucket := range m.table {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
