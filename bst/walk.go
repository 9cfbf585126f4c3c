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

package bst

import (
	"cmp"
	"fmt"
	"iter"
)

// InOrder yields keys in ascending order.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(t.root, inOrder, yield)
	}
}

// PreOrder yields root, then left, then right.
func (t *Tree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(t.root, preOrder, yield)
	}
}

// PostOrder yields left, then right, then root.
func (t *Tree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(t.root, postOrder, yield)
	}
}

type order int

const (
	preOrder order = iota
	inOrder
	postOrder
)

func walk[T cmp.Ordered](n *node[T], o order, yield func(T) bool) bool {
	if n == nil {
		return true
	}
	switch o {
	case preOrder:
		return yield(n.value) && walk(n.left, o, yield) && walk(n.right, o, yield)
	case inOrder:
		return walk(n.left, o, yield) && yield(n.value) && walk(n.right, o, yield)
	default:
		return walk(n.left, o, yield) && walk(n.right, o, yield) && yield(n.value)
	}
}

// Cursor is a read-only view of one node; an invalid cursor is an empty subtree.
type Cursor[T cmp.Ordered] struct {
	n *node[T]
}

func (t *Tree[T]) Root() Cursor[T] {
	return Cursor[T]{n: t.root}
}

func (c Cursor[T]) Valid() bool { return c.n != nil }
func (c Cursor[T]) Height() int { return height(c.n) }

func (c Cursor[T]) Value() T {
	var zero T
	if c.n == nil {
		return zero
	}
	return c.n.value
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
