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

package expr_test

import (
	"github.com/reloadkit/exprkey/expr"
)

// Builders shared by the tests in this package.

func raw(head expr.Head, args ...expr.Child) *expr.Raw {
	return &expr.Raw{Head: head, Args: args}
}

func leaf(v any) expr.Child {
	return expr.Leaf{Value: v}
}

func mark(line int32) expr.Child {
	return expr.LineMarker{File: "test.src", Line: line}
}

// conv builds a raw tree and converts it in one go.
func conv(head expr.Head, args ...expr.Child) *expr.Expr {
	return expr.FromRaw(raw(head, args...))
}
