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
	"fmt"
	"io"
	"strings"
)

// IndentedRenderer prints one node per line, indented one tab per level,
// parent before children.
type IndentedRenderer struct{}

func (r *IndentedRenderer) Name() string { return "indented" }

func (r *IndentedRenderer) Describe() string {
	return "one node per line, one tab of indent per level"
}

func (r *IndentedRenderer) Render(w io.Writer, root *Node) error {
	return r.render(w, root, "")
}

func (r *IndentedRenderer) render(w io.Writer, n *Node, indent string) error {
	if n == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, n.Label); err != nil {
		return err
	}
	if err := r.render(w, n.Left, indent+"\t"); err != nil {
		return err
	}
	return r.render(w, n.Right, indent+"\t")
}

// DetailsRenderer names every node by its relation to its parent.
type DetailsRenderer struct{}

func (r *DetailsRenderer) Name() string { return "details" }

func (r *DetailsRenderer) Describe() string {
	return "each node with the parent it hangs from"
}

func (r *DetailsRenderer) Render(w io.Writer, root *Node) error {
	return r.render(w, root, "Root Node: ")
}

func (r *DetailsRenderer) render(w io.Writer, n *Node, details string) error {
	if n == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", details, n.Label); err != nil {
		return err
	}
	if err := r.render(w, n.Left, "Left child of "+n.Label+" : "); err != nil {
		return err
	}
	return r.render(w, n.Right, "Right child of "+n.Label+" : ")
}

// PrettyRenderer draws the tree sideways: the right subtree above its
// parent, the left subtree below, root in the first column.
type PrettyRenderer struct {
	annotate bool
}

// NewPrettyRenderer returns the sideways renderer. With annotate set each
// node also shows its height and balance factor.
func NewPrettyRenderer(annotate bool) *PrettyRenderer {
	return &PrettyRenderer{annotate: annotate}
}

func (r *PrettyRenderer) Name() string {
	if r.annotate {
		return "balance"
	}
	return "pretty"
}

func (r *PrettyRenderer) Describe() string {
	if r.annotate {
		return "sideways tree with height and balance factor per node"
	}
	return "sideways tree, right subtree on top"
}

func (r *PrettyRenderer) Render(w io.Writer, root *Node) error {
	return r.render(w, root, 0)
}

func (r *PrettyRenderer) render(w io.Writer, n *Node, level int) error {
	if n == nil {
		return nil
	}

	if err := r.render(w, n.Right, level+1); err != nil {
		return err
	}

	label := n.Label
	if r.annotate {
		label = fmt.Sprintf("%s (h=%d, bf=%+d)", n.Label, n.Height, n.BalanceFactor())
	}

	var err error
	if level == 0 {
		_, err = fmt.Fprintln(w, label)
	} else {
		_, err = fmt.Fprintf(w, "%s|------->%s\n", strings.Repeat("|\t\t", level-1), label)
	}
	if err != nil {
		return err
	}

	return r.render(w, n.Left, level+1)
}
