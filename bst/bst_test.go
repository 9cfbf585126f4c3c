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
	"slices"
	"testing"
)

func TestInsertOrderAndHeight(t *testing.T) {
	tests := []struct {
		name     string
		keys     []int
		inOrder  []int
		preOrder []int
		height   int
		balanced bool
	}{
		{
			name:     "empty",
			keys:     nil,
			inOrder:  nil,
			preOrder: nil,
			height:   -1,
			balanced: true,
		},
		{
			name:     "ascending run degenerates",
			keys:     []int{1, 2, 3, 4, 5},
			inOrder:  []int{1, 2, 3, 4, 5},
			preOrder: []int{1, 2, 3, 4, 5},
			height:   4,
			balanced: false,
		},
		{
			name:     "balanced by luck",
			keys:     []int{20, 10, 30},
			inOrder:  []int{10, 20, 30},
			preOrder: []int{20, 10, 30},
			height:   1,
			balanced: true,
		},
		{
			name:     "duplicates ignored",
			keys:     []int{5, 5, 3, 3, 8},
			inOrder:  []int{3, 5, 8},
			preOrder: []int{5, 3, 8},
			height:   1,
			balanced: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := New[int]()
			tree.Populate(tc.keys...)

			if got := slices.Collect(tree.InOrder()); !slices.Equal(got, tc.inOrder) {
				t.Errorf("InOrder = %v; want %v", got, tc.inOrder)
			}
			if got := slices.Collect(tree.PreOrder()); !slices.Equal(got, tc.preOrder) {
				t.Errorf("PreOrder = %v; want %v", got, tc.preOrder)
			}
			if got := tree.Height(); got != tc.height {
				t.Errorf("Height = %d; want %d", got, tc.height)
			}
			if got := tree.Balanced(); got != tc.balanced {
				t.Errorf("Balanced = %v; want %v", got, tc.balanced)
			}
			if got := tree.IsEmpty(); got != (len(tc.inOrder) == 0) {
				t.Errorf("IsEmpty = %v", got)
			}
			if got := tree.Len(); got != len(tc.inOrder) {
				t.Errorf("Len = %d; want %d", got, len(tc.inOrder))
			}
		})
	}
}

func TestPopulateSortedBalances(t *testing.T) {
	keys := make([]int, 0, 100)
	for i := 1; i <= 100; i++ {
		keys = append(keys, i)
	}

	tree := New[int]()
	tree.PopulateSorted(keys)

	if !tree.Balanced() {
		t.Errorf("PopulateSorted produced an unbalanced tree")
	}
	// 100 keys fit in 7 levels
	if got := tree.Height(); got != 6 {
		t.Errorf("Height = %d; want 6", got)
	}
	if got := slices.Collect(tree.InOrder()); !slices.Equal(got, keys) {
		t.Errorf("InOrder lost keys")
	}
}

func TestPostOrderAndCursor(t *testing.T) {
	tree := New[int]()
	tree.PopulateSorted([]int{1, 2, 3, 4, 5, 6, 7})

	if got := slices.Collect(tree.PostOrder()); !slices.Equal(got, []int{1, 3, 2, 5, 7, 6, 4}) {
		t.Errorf("PostOrder = %v", got)
	}

	root := tree.Root()
	if root.Value() != 4 || root.Left().Value() != 2 || root.Right().Right().Value() != 7 {
		t.Errorf("unexpected shape under cursor")
	}
	if root.Height() != 2 || root.Left().Left().Left().Valid() {
		t.Errorf("cursor heights or leaves wrong")
	}
	if root.Left().Left().Left().Left().String() != "<nil>" {
		t.Errorf("absent cursor should stay absent")
	}
}
