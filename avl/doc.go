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

// Package avl implements a height-balanced ordered binary search tree.
//
// Every insertion walks down to the insertion point and rebalances on the
// way back up, so that for every node the heights of its two subtrees differ
// by at most one. Equal keys are ignored. There is no deletion.
//
// A tree is not safe for concurrent use; guard it with a mutex if it is
// shared between goroutines.
package avl
