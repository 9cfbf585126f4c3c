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

import "cmp"

// Stats counts the rebalancing events a tree has performed, by case.
type Stats struct {
	LL int // single right rotation
	LR int // left rotation of the left child, then right rotation
	RR int // single left rotation
	RL int // right rotation of the right child, then left rotation
}

// Total is the number of rebalancing events of any kind.
func (s Stats) Total() int {
	return s.LL + s.LR + s.RR + s.RL
}

// Tree is an AVL tree. The zero value is an empty tree ready to use.
type Tree[T cmp.Ordered] struct {
	root      *node[T]
	size      int
	rotations Stats
}

// New returns an empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{root: nil}
}

// Height returns -1 for an empty tree, otherwise the height of the root.
func (tree *Tree[T]) Height() int {
	return getHeight(tree.root)
}

// IsEmpty reports whether the tree has no root.
func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Len returns the number of distinct keys in the tree.
func (tree *Tree[T]) Len() int {
	return tree.size
}

// Rotations returns the rebalancing events performed since the tree was created.
func (tree *Tree[T]) Rotations() Stats {
	return tree.rotations
}

// Contains reports whether value is stored in the tree.
func (tree *Tree[T]) Contains(value T) bool {
	n := tree.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest key, or false if the tree is empty.
func (tree *Tree[T]) Min() (T, bool) {
	var zero T
	n := tree.root
	if n == nil {
		return zero, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest key, or false if the tree is empty.
func (tree *Tree[T]) Max() (T, bool) {
	var zero T
	n := tree.root
	if n == nil {
		return zero, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}
