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

// Package render draws binary trees for the terminal. It reads trees only
// through cursors, so it never depends on how a tree stores its nodes.
package render

import (
	"fmt"
	"io"
)

// Renderer defines the interface for the different ways a tree is drawn.
type Renderer interface {
	Name() string
	Describe() string
	Render(w io.Writer, root *Node) error
}

// Branch is satisfied by a read-only tree cursor. An invalid cursor stands
// for an absent subtree.
type Branch[C any] interface {
	Valid() bool
	Left() C
	Right() C
	Height() int
	fmt.Stringer
}

// Node is a detached copy of one tree node, labelled for display.
type Node struct {
	Label  string
	Height int
	Left   *Node
	Right  *Node
}

// BalanceFactor is the left height minus the right height.
func (n *Node) BalanceFactor() int {
	return heightOf(n.Left) - heightOf(n.Right)
}

func heightOf(n *Node) int {
	if n == nil {
		return -1
	}
	return n.Height
}

// Snapshot copies the shape under root. It returns nil for an empty tree.
func Snapshot[C Branch[C]](root C) *Node {
	if !root.Valid() {
		return nil
	}
	return &Node{
		Label:  root.String(),
		Height: root.Height(),
		Left:   Snapshot(root.Left()),
		Right:  Snapshot(root.Right()),
	}
}
