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

// Insert adds value to the tree unless an equal key is already present, then
// rebalances along the path back to the root.
func (tree *Tree[T]) Insert(value T) {
	var added bool
	tree.root, added = tree.insertRecursive(tree.root, value)
	if added {
		tree.size++
	}
}

// insertRecursive returns the root of the subtree after the insert; the
// caller stores it back into its own child slot.
func (tree *Tree[T]) insertRecursive(n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return newNode(value), true
	}

	var added bool
	if value < n.value {
		n.left, added = tree.insertRecursive(n.left, value)
	} else if value > n.value {
		n.right, added = tree.insertRecursive(n.right, value)
	} else {
		// equal keys are ignored
		return n, false
	}

	updateHeight(n)
	return tree.rebalance(n), added
}

// rebalance picks one of the four rotation cases for n, or none.
// The single rotation is chosen only when the heavy child leans strictly
// towards the outside.
func (tree *Tree[T]) rebalance(n *node[T]) *node[T] {
	balanceFactor := getBalanceFactor(n)

	// Left-heavy
	if balanceFactor > 1 {
		if getBalanceFactor(n.left) > 0 {
			tree.rotations.LL++
			return tree.rotateRight(n)
		}
		tree.rotations.LR++
		n.left = tree.rotateLeft(n.left)
		return tree.rotateRight(n)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if getBalanceFactor(n.right) < 0 {
			tree.rotations.RR++
			return tree.rotateLeft(n)
		}
		tree.rotations.RL++
		n.right = tree.rotateRight(n.right)
		return tree.rotateLeft(n)
	}

	return n
}

// rotateRight promotes the left child of p.
func (tree *Tree[T]) rotateRight(p *node[T]) *node[T] {
	if p == nil || p.left == nil {
		return p
	}

	c := p.left
	inner := c.right

	c.right = p
	p.left = inner

	// demoted node first, the promoted height depends on it
	updateHeight(p)
	updateHeight(c)

	return c
}

// rotateLeft promotes the right child of c.
func (tree *Tree[T]) rotateLeft(c *node[T]) *node[T] {
	if c == nil || c.right == nil {
		return c
	}

	p := c.right
	inner := p.left

	p.left = c
	c.right = inner

	updateHeight(c)
	updateHeight(p)

	return p
}
