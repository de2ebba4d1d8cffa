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

// Package expr provides a line-position-insensitive representation of
// syntax trees.
//
// Source trees carry line markers so that runtime errors can be traced back
// to the file and line that produced them. Those markers are pure noise when
// deciding whether a redefined function body actually changed: inserting a
// blank line above a function shifts every marker in its body without
// changing what the function does. [Expr] keeps the markers (so backtraces
// stay accurate) but excludes them from [Expr.Equal] and [Expr.Hash], making
// wrapped trees usable as identity keys across reloads.
//
// A tree enters this package through [FromRaw], which consumes a [Raw] tree
// produced by a parser. The conversion is destructive: it rewrites the raw
// tree's child storage in place rather than copying it, and the input must
// not be used afterward. The reverse direction, [Expr.ToRaw], always deep
// copies, so a cached tree can be handed to an evaluator that mutates its
// argument lists without corrupting the cache.
//
// Once built, an [Expr] is immutable and may be read concurrently without
// synchronization. The conversion itself must complete before the node is
// shared.
//
// For keying, [Map] provides a hash map over structural equality, since Go's
// built-in maps would compare *Expr pointers by identity.
package expr
