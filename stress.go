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

package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cybrota/arbor/avl"
)

// StressReport summarises a stress run.
type StressReport struct {
	Runs      int
	Keys      int
	MaxHeight int
	Bound     float64
	Rotations avl.Stats
	Elapsed   time.Duration
}

// avlHeightBound is the classical limit on the height of an AVL tree of n keys.
func avlHeightBound(n int) float64 {
	return 1.44 * math.Log2(float64(n+1))
}

// runStress inserts n distinct keys in random order into a fresh tree, runs
// times, and verifies every tree. It fails on the first broken invariant or
// a tree taller than the AVL bound.
func runStress(n, runs int, seed int64) (StressReport, error) {
	if n <= 0 || runs <= 0 {
		return StressReport{}, fmt.Errorf("key count and runs must be positive (got %d and %d)", n, runs)
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	report := StressReport{Runs: runs, Keys: n, Bound: avlHeightBound(n)}

	for run := 0; run < runs; run++ {
		tree := avl.New[int]()
		tree.Populate(rng.Perm(n)...)

		if err := tree.Verify(); err != nil {
			return report, fmt.Errorf("run %d: %w", run+1, err)
		}
		if tree.Len() != n {
			return report, fmt.Errorf("run %d: tree holds %d keys, want %d", run+1, tree.Len(), n)
		}
		if h := tree.Height(); float64(h) > report.Bound {
			return report, fmt.Errorf("run %d: height %d exceeds bound %.2f", run+1, h, report.Bound)
		}

		report.MaxHeight = max(report.MaxHeight, tree.Height())
		stats := tree.Rotations()
		report.Rotations.LL += stats.LL
		report.Rotations.LR += stats.LR
		report.Rotations.RR += stats.RR
		report.Rotations.RL += stats.RL
	}

	report.Elapsed = time.Since(start)
	return report, nil
}
