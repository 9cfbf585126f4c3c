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
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// keyParser turns one token typed by the user into a tree key.
type keyParser[T cmp.Ordered] func(token string) (T, error)

func parseIntKey(token string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("invalid integer key %q", token)
	}
	return v, nil
}

func parseStringKey(token string) (string, error) {
	return token, nil
}

// splitKeys splits a line of input into key tokens. Quotes group words, so
// `"new york" boston` is two keys.
func splitKeys(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse keys %q: %v", line, err)
	}
	return args, nil
}

// parseKeys converts every token, stopping at the first invalid one.
func parseKeys[T cmp.Ordered](tokens []string, parse keyParser[T]) ([]T, error) {
	keys := make([]T, 0, len(tokens))
	for _, token := range tokens {
		key, err := parse(token)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
