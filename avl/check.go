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
	"errors"
	"fmt"
)

var (
	ErrOrder      = errors.New("avl: keys out of order")
	ErrUnbalanced = errors.New("avl: subtree heights differ by more than one")
	ErrHeight     = errors.New("avl: cached height is stale")
)

// Balanced reports whether every node's subtrees differ in height by at
// most one. Heights are recomputed from the structure, so a stale height
// cache cannot hide an imbalance.
func (tree *Tree[T]) Balanced() bool {
	_, ok := balancedHeight(tree.root)
	return ok
}

// balancedHeight returns the structural height of n and whether the
// subtree is balanced.
func balancedHeight[T cmp.Ordered](n *node[T]) (int, bool) {
	if n == nil {
		return emptyHeight, true
	}
	lh, ok := balancedHeight(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// Verify checks the ordering, balance and height cache of every node and
// returns the first violation found, or nil.
func (tree *Tree[T]) Verify() error {
	_, err := verify(tree.root, nil, nil)
	return err
}

// verify walks the subtree rooted at n; every key must lie strictly
// between lo and hi when those are set.
func verify[T cmp.Ordered](n *node[T], lo, hi *T) (int, error) {
	if n == nil {
		return emptyHeight, nil
	}
	if (lo != nil && n.value <= *lo) || (hi != nil && n.value >= *hi) {
		return 0, fmt.Errorf("%w: key %v", ErrOrder, n.value)
	}

	lh, err := verify(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	rh, err := verify(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if n.height != h {
		return 0, fmt.Errorf("%w: key %v cached %d, actual %d", ErrHeight, n.value, n.height, h)
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, fmt.Errorf("%w: key %v left %d, right %d", ErrUnbalanced, n.value, lh, rh)
	}
	return h, nil
}
