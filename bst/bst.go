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

// Package bst is a plain ordered binary search tree with no rebalancing.
// It shares the surface of package avl so the two can be fed the same keys
// and compared.
package bst

import "cmp"

// node represents an individual element within the tree.
type node[T cmp.Ordered] struct {
	value       T
	left, right *node[T]
	height      int
}

// Tree is an unbalanced binary search tree. The zero value is empty.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// New returns a new, empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{root: nil}
}

func height[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// Height returns -1 for an empty tree.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

func (t *Tree[T]) Len() int {
	return t.size
}

// Insert adds value at the leaf position it sorts to. Equal keys are ignored.
func (t *Tree[T]) Insert(value T) {
	var added bool
	t.root, added = insert(t.root, value)
	if added {
		t.size++
	}
}

func insert[T cmp.Ordered](n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return &node[T]{value: value}, true
	}

	var added bool
	if value < n.value {
		n.left, added = insert(n.left, value)
	} else if value > n.value {
		n.right, added = insert(n.right, value)
	} else {
		return n, false
	}

	n.height = max(height(n.left), height(n.right)) + 1
	return n, added
}

// Populate inserts each value in the order given.
func (t *Tree[T]) Populate(values ...T) {
	for _, v := range values {
		t.Insert(v)
	}
}

// PopulateSorted inserts the middle of the sorted slice first and recurses
// into both halves, which yields a balanced shape without any rotation.
func (t *Tree[T]) PopulateSorted(values []T) {
	t.populateSorted(values, 0, len(values))
}

func (t *Tree[T]) populateSorted(values []T, start, end int) {
	if start >= end {
		return
	}
	mid := (start + end) / 2
	t.Insert(values[mid])
	t.populateSorted(values, start, mid)
	t.populateSorted(values, mid+1, end)
}

// Balanced reports whether every node's subtree heights differ by at most one.
func (t *Tree[T]) Balanced() bool {
	return balanced(t.root)
}

func balanced[T cmp.Ordered](n *node[T]) bool {
	if n == nil {
		return true
	}
	diff := height(n.left) - height(n.right)
	return diff >= -1 && diff <= 1 && balanced(n.left) && balanced(n.right)
}
