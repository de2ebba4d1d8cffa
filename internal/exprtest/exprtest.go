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

// Package exprtest loads raw expression trees from YAML corpora, so tests
// can describe trees as data instead of as towers of constructor calls.
package exprtest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reloadkit/exprkey/expr"
)

// Node is the YAML shape of one raw tree node.
//
// A node is one of three things, by which keys it sets:
//
//	{head: call, args: [...], type: Int}   a nested node; type is optional
//	{file: foo.src, line: 3}                a line marker
//	{leaf: 42}                             an opaque leaf
type Node struct {
	Head string    `yaml:"head"`
	Args []Node    `yaml:"args"`
	Type yaml.Node `yaml:"type"`

	File string `yaml:"file"`
	Line *int32 `yaml:"line"`

	Leaf yaml.Node `yaml:"leaf"`
}

// Raw builds the raw tree described by n.
func (n Node) Raw(t *testing.T) *expr.Raw {
	t.Helper()
	require.NotEmpty(t, n.Head, "corpus tree root must have a head")

	raw := &expr.Raw{Head: expr.Head(n.Head)}
	if n.Type.Kind != 0 {
		var v any
		require.NoError(t, n.Type.Decode(&v))
		raw.Type = &expr.TypeInfo{Value: v}
	}
	for _, a := range n.Args {
		raw.Args = append(raw.Args, a.child(t))
	}
	return raw
}

func (n Node) child(t *testing.T) expr.Child {
	switch {
	case n.Line != nil:
		return expr.LineMarker{File: n.File, Line: *n.Line}
	case n.Leaf.Kind != 0:
		var v any
		require.NoError(t, n.Leaf.Decode(&v))
		return expr.Leaf{Value: v}
	default:
		return n.Raw(t)
	}
}

// Case is one equality expectation in a corpus file.
type Case struct {
	Name  string `yaml:"name"`
	A     Node   `yaml:"a"`
	B     Node   `yaml:"b"`
	Equal bool   `yaml:"equal"`
}

// LoadCases reads a corpus of equality cases from path.
func LoadCases(t *testing.T, path string) []Case {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cases []Case
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases, "empty corpus: %s", path)
	return cases
}
