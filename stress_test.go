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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAVLHeightBound(t *testing.T) {
	tests := []struct {
		n    int
		want int // largest height allowed
	}{
		{n: 1, want: 1},
		{n: 3, want: 2},
		{n: 7, want: 4},
		{n: 1000, want: 14},
	}

	for _, tc := range tests {
		if got := int(avlHeightBound(tc.n)); got != tc.want {
			t.Errorf("int(avlHeightBound(%d)) = %d; want %d", tc.n, got, tc.want)
		}
	}
}

func TestRunStress(t *testing.T) {
	report, err := runStress(2000, 3, 42)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Runs)
	assert.Equal(t, 2000, report.Keys)
	assert.LessOrEqual(t, float64(report.MaxHeight), report.Bound)
	assert.GreaterOrEqual(t, report.MaxHeight, 10, "2000 keys cannot fit below height 10")
	assert.Positive(t, report.Rotations.Total())
}

func TestRunStressIsReproducible(t *testing.T) {
	first, err := runStress(500, 2, 7)
	require.NoError(t, err)
	second, err := runStress(500, 2, 7)
	require.NoError(t, err)

	assert.Equal(t, first.Rotations, second.Rotations)
	assert.Equal(t, first.MaxHeight, second.MaxHeight)
}

func TestRunStressRejectsBadArguments(t *testing.T) {
	_, err := runStress(0, 1, 1)
	assert.Error(t, err)
	_, err = runStress(10, 0, 1)
	assert.Error(t, err)
}
