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

import "iter"

// Populate inserts values one at a time in the order given.
func (tree *Tree[T]) Populate(values ...T) {
	for _, v := range values {
		tree.Insert(v)
	}
}

// PopulateSeq inserts every value produced by seq, in order.
func (tree *Tree[T]) PopulateSeq(seq iter.Seq[T]) {
	for v := range seq {
		tree.Insert(v)
	}
}

// PopulateSorted expects values sorted ascending. It inserts the middle
// element of the range first and then the left and right halves, parent
// before children, so the insert order already approximates the balanced
// shape. Every key still goes through Insert.
func (tree *Tree[T]) PopulateSorted(values []T) {
	tree.PopulateSeq(MidFirst(values))
}

// MidFirst yields values in the order PopulateSorted inserts them: the
// middle of [start, end) first, then the middle of [start, mid), then the
// middle of [mid+1, end), recursively.
func MidFirst[T any](values []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		midFirst(values, 0, len(values), yield)
	}
}

func midFirst[T any](values []T, start, end int, yield func(T) bool) bool {
	if start >= end {
		return true
	}

	mid := (start + end) / 2

	return yield(values[mid]) &&
		midFirst(values, start, mid, yield) &&
		midFirst(values, mid+1, end, yield)
}
