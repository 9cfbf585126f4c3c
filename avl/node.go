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

// emptyHeight is the height of an absent subtree.
const emptyHeight = -1

type node[T cmp.Ordered] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int
}

func newNode[T cmp.Ordered](value T) *node[T] {
	return &node[T]{value: value, height: 0}
}

func getHeight[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return emptyHeight
	}
	return n.height
}

// updateHeight must run after the children of n are final.
func updateHeight[T cmp.Ordered](n *node[T]) {
	n.height = max(getHeight(n.left), getHeight(n.right)) + 1
}

func getBalanceFactor[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return getHeight(n.left) - getHeight(n.right)
}
