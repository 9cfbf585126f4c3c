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

package render

import (
	"io"
	"strings"
)

// Order selects a depth-first visiting order.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	}
	return "unknown"
}

// TraversalRenderer prints the labels on a single line in one visiting order.
type TraversalRenderer struct {
	order Order
}

func NewTraversalRenderer(order Order) *TraversalRenderer {
	return &TraversalRenderer{order: order}
}

func (r *TraversalRenderer) Name() string { return r.order.String() }

func (r *TraversalRenderer) Describe() string {
	switch r.order {
	case PreOrder:
		return "root, left, right on one line"
	case InOrder:
		return "left, root, right on one line (ascending keys)"
	default:
		return "left, right, root on one line"
	}
}

func (r *TraversalRenderer) Render(w io.Writer, root *Node) error {
	_, err := io.WriteString(w, strings.Join(Labels(root, r.order), " ")+"\n")
	return err
}

// Labels collects the labels under root in the given order.
func Labels(root *Node, order Order) []string {
	var labels []string
	var visit func(n *Node)
	visit = func(n *Node) {
		if n == nil {
			return
		}
		if order == PreOrder {
			labels = append(labels, n.Label)
		}
		visit(n.Left)
		if order == InOrder {
			labels = append(labels, n.Label)
		}
		visit(n.Right)
		if order == PostOrder {
			labels = append(labels, n.Label)
		}
	}
	visit(root)
	return labels
}
