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
	"iter"
)

// InOrder yields the keys in ascending order.
func (tree *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrder(tree.root, yield)
	}
}

// PreOrder yields each node before its left and right subtrees.
func (tree *Tree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		preOrder(tree.root, yield)
	}
}

// PostOrder yields each node after its left and right subtrees.
func (tree *Tree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		postOrder(tree.root, yield)
	}
}

// Values returns the keys in ascending order.
func (tree *Tree[T]) Values() []T {
	result := make([]T, 0, tree.size)
	for v := range tree.InOrder() {
		result = append(result, v)
	}
	return result
}

// The walkers return false once yield has asked to stop.

func inOrder[T cmp.Ordered](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.value) && inOrder(n.right, yield)
}

func preOrder[T cmp.Ordered](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.value) && preOrder(n.left, yield) && preOrder(n.right, yield)
}

func postOrder[T cmp.Ordered](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.left, yield) && postOrder(n.right, yield) && yield(n.value)
}
