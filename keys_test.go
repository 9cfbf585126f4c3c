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
	"slices"
	"strings"
	"testing"
)

func TestSplitKeys(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{line: "10 20 30", want: []string{"10", "20", "30"}},
		{line: `"new york" boston`, want: []string{"new york", "boston"}},
		{line: "   ", want: []string{}},
		{line: "a\t'b c'  d", want: []string{"a", "b c", "d"}},
	}

	for _, tc := range tests {
		got, err := splitKeys(tc.line)
		if err != nil {
			t.Fatalf("splitKeys(%q) error: %v", tc.line, err)
		}
		if len(got) != len(tc.want) || (len(got) > 0 && !slices.Equal(got, tc.want)) {
			t.Errorf("splitKeys(%q) = %q; want %q", tc.line, got, tc.want)
		}
	}

	if _, err := splitKeys(`"unterminated`); err == nil {
		t.Errorf("expected an error for an unterminated quote")
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys([]string{"3", " 1", "-2"}, parseIntKey)
	if err != nil {
		t.Fatalf("parseKeys error: %v", err)
	}
	if !slices.Equal(keys, []int{3, 1, -2}) {
		t.Errorf("parseKeys = %v", keys)
	}

	_, err = parseKeys([]string{"3", "four"}, parseIntKey)
	if err == nil || !strings.Contains(err.Error(), `"four"`) {
		t.Errorf("parseKeys error = %v; want it to name the bad token", err)
	}

	words, err := parseKeys([]string{"pear", "fig"}, parseStringKey)
	if err != nil || !slices.Equal(words, []string{"pear", "fig"}) {
		t.Errorf("parseKeys(strings) = %v, %v", words, err)
	}
}
