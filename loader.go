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
	"bufio"
	"cmp"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/arbor/avl"
)

// LoadOptions controls how a batch of keys is fed into a tree.
type LoadOptions struct {
	Sorted       bool
	ShowProgress bool
	BloomSize    uint
	BloomHashes  uint
}

// LoadReport summarises one load.
type LoadReport struct {
	Read       int
	Inserted   int
	Duplicates int
	// Lookups counts keys the bloom filter could not clear, so the tree
	// had to be searched for them.
	Lookups int
	Elapsed time.Duration
}

func (r LoadReport) String() string {
	return fmt.Sprintf("read %d keys, inserted %d, skipped %d duplicates in %s",
		r.Read, r.Inserted, r.Duplicates, r.Elapsed.Round(time.Millisecond))
}

// loadOptionsFromConfig decides whether a batch of n keys deserves a progress bar.
func loadOptionsFromConfig(config *Config, n int, sorted, quiet bool) LoadOptions {
	threshold := config.Loader.ProgressThreshold
	return LoadOptions{
		Sorted:       sorted,
		ShowProgress: !quiet && threshold > 0 && n >= threshold,
		BloomSize:    config.Loader.BloomSize,
		BloomHashes:  config.Loader.BloomHashes,
	}
}

// openKeySource opens path for reading; "-" is standard input.
func openKeySource(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, err
	}
	return file, nil
}

// readKeyTokens reads key tokens from r. Blank lines and lines starting
// with '#' are skipped; a line may hold several shell-quoted keys.
func readKeyTokens(r io.Reader) ([]string, error) {
	var tokens []string

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long lines of keys
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields, err := splitKeys(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		tokens = append(tokens, fields...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// populateTree inserts keys into tree, in input order or, with
// opts.Sorted, sorted and middle-first. A bloom filter holding every key
// already in the tree, and every key of the batch seen so far, clears most
// new keys without a tree search; only keys it may have seen are looked up.
func populateTree[T cmp.Ordered](tree *avl.Tree[T], keys []T, opts LoadOptions) LoadReport {
	start := time.Now()
	report := LoadReport{Read: len(keys)}

	var seq iter.Seq[T]
	total := len(keys)
	if opts.Sorted {
		sorted := slices.Clone(keys)
		slices.Sort(sorted)
		// mid-first order only balances a run of distinct keys
		sorted = slices.Compact(sorted)
		report.Duplicates = len(keys) - len(sorted)
		total = len(sorted)
		seq = avl.MidFirst(sorted)
	} else {
		seq = slices.Values(keys)
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("🌳 Inserting keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(os.Stderr, "\n✅ Loading completed!\n")
			}),
		)
	}

	bloomFilter := bloom.New(max(opts.BloomSize, 64), max(opts.BloomHashes, 1))
	var buf []byte
	for key := range tree.InOrder() {
		buf = fmt.Append(buf[:0], key)
		bloomFilter.Add(buf)
	}

	for key := range seq {
		buf = fmt.Append(buf[:0], key)
		duplicate := false
		if bloomFilter.TestAndAdd(buf) {
			report.Lookups++
			duplicate = tree.Contains(key)
		}
		if duplicate {
			report.Duplicates++
		} else {
			tree.Insert(key)
			report.Inserted++
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	report.Elapsed = time.Since(start)
	log.Printf("Load completed: %s", report)
	return report
}
