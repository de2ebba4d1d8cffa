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

import "github.com/reloadkit/exprkey/internal/ext/iterx"

// Equal reports whether two nodes are structurally equal.
//
// Nodes are equal when their heads match and their line-skipping argument
// views match element-wise: nested nodes recurse, everything else compares
// with ordinary ==. Line markers are invisible to Equal — two bodies that
// differ only in marker placement, count, or content are equal — and so are
// type annotations, since a reload can reattach different inferred types to
// an otherwise untouched body.
//
// Equal is reflexive, symmetric, and transitive, and [Expr.Hash] is
// consistent with it.
func (e *Expr) Equal(other *Expr) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if e.head != other.head {
		return false
	}
	return iterx.EqualFunc(skipLines(e.args), skipLines(other.args), childEqual)
}

func childEqual(a, b Child) bool {
	ea, aok := a.(*Expr)
	eb, bok := b.(*Expr)
	if aok != bok {
		return false
	}
	if aok {
		return ea.Equal(eb)
	}
	return a == b
}
