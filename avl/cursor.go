// Copyright 2025 Naren Yellavula
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

package avl

import (
	"cmp"
	"fmt"
)

// Cursor is a read-only handle on one node of a tree. A cursor that is not
// Valid stands for an absent subtree.
//
// A cursor is only meaningful until the next Insert on its tree.
type Cursor[T cmp.Ordered] struct {
	n *node[T]
}

// Root returns a cursor on the root node.
func (tree *Tree[T]) Root() Cursor[T] {
	return Cursor[T]{n: tree.root}
}

func (c Cursor[T]) Valid() bool {
	return c.n != nil
}

// Value returns the key of the node, or the zero value for an absent subtree.
func (c Cursor[T]) Value() T {
	var zero T
	if c.n == nil {
		return zero
	}
	return c.n.value
}

// Height returns the cached height, -1 for an absent subtree.
func (c Cursor[T]) Height() int {
	return getHeight(c.n)
}

// BalanceFactor is the left height minus the right height.
func (c Cursor[T]) BalanceFactor() int {
	return getBalanceFactor(c.n)
}

func (c Cursor[T]) Left() Cursor[T] {
	if c.n == nil {
		return c
	}
	return Cursor[T]{n: c.n.left}
}

func (c Cursor[T]) Right() Cursor[T] {
	if c.n == nil {
		return c
	}
	return Cursor[T]{n: c.n.right}
}

func (c Cursor[T]) String() string {
	if c.n == nil {
		return "<nil>"
	}
	return fmt.Sprint(c.n.value)
}
