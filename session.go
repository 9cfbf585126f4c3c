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
	"strings"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/bst"
	"github.com/cybrota/arbor/render"
)

// TreeStatus is what the UI and the CLI report about a tree.
type TreeStatus struct {
	KeyType   string
	Size      int
	Height    int
	Balanced  bool
	Rotations avl.Stats
}

func (s TreeStatus) String() string {
	return fmt.Sprintf("keys: %d  height: %d  balanced: %t  rotations: LL %d, LR %d, RR %d, RL %d",
		s.Size, s.Height, s.Balanced, s.Rotations.LL, s.Rotations.LR, s.Rotations.RR, s.Rotations.RL)
}

// Comparison holds the heights of an AVL tree and an unbalanced tree built
// from the same keys.
type Comparison struct {
	Keys        int
	AVLHeight   int
	AVLBalanced bool
	BSTHeight   int
	BSTBalanced bool
}

// TreeSession hides the key type of the tree behind string tokens, so the
// commands and the UI can work with either integer or string keys.
type TreeSession interface {
	Insert(tokens []string) (int, error)
	Load(tokens []string, opts LoadOptions) (LoadReport, error)
	Compare(tokens []string) (Comparison, error)
	Status() TreeStatus
	Snapshot() *render.Node
	InOrder() []string
	Revision() int
	Reset()
}

type avlSession[T cmp.Ordered] struct {
	keyType  string
	tree     *avl.Tree[T]
	parse    keyParser[T]
	revision int
}

// NewTreeSession returns an empty session for the configured key type.
func NewTreeSession(keyType string) (TreeSession, error) {
	switch keyType {
	case KeyTypeInt, "":
		return newAVLSession(KeyTypeInt, parseIntKey), nil
	case KeyTypeString:
		return newAVLSession(KeyTypeString, parseStringKey), nil
	}
	return nil, fmt.Errorf("unsupported key type %q", keyType)
}

func newAVLSession[T cmp.Ordered](keyType string, parse keyParser[T]) *avlSession[T] {
	return &avlSession[T]{
		keyType: keyType,
		tree:    avl.New[T](),
		parse:   parse,
	}
}

// Insert inserts tokens one by one and returns how many were new keys. No
// key is inserted if any token is invalid.
func (s *avlSession[T]) Insert(tokens []string) (int, error) {
	keys, err := parseKeys(tokens, s.parse)
	if err != nil {
		return 0, err
	}
	before := s.tree.Len()
	s.tree.Populate(keys...)
	s.touch()
	return s.tree.Len() - before, nil
}

func (s *avlSession[T]) Load(tokens []string, opts LoadOptions) (LoadReport, error) {
	keys, err := parseKeys(tokens, s.parse)
	if err != nil {
		return LoadReport{}, err
	}
	report := populateTree(s.tree, keys, opts)
	s.touch()
	return report, nil
}

func (s *avlSession[T]) Compare(tokens []string) (Comparison, error) {
	keys, err := parseKeys(tokens, s.parse)
	if err != nil {
		return Comparison{}, err
	}
	return compareTrees(keys), nil
}

// compareTrees feeds keys, in order, into a fresh AVL tree and a fresh
// unbalanced tree.
func compareTrees[T cmp.Ordered](keys []T) Comparison {
	balanced := avl.New[T]()
	balanced.Populate(keys...)

	plain := bst.New[T]()
	plain.Populate(keys...)

	return Comparison{
		Keys:        balanced.Len(),
		AVLHeight:   balanced.Height(),
		AVLBalanced: balanced.Balanced(),
		BSTHeight:   plain.Height(),
		BSTBalanced: plain.Balanced(),
	}
}

func (s *avlSession[T]) Status() TreeStatus {
	return TreeStatus{
		KeyType:   s.keyType,
		Size:      s.tree.Len(),
		Height:    s.tree.Height(),
		Balanced:  s.tree.Balanced(),
		Rotations: s.tree.Rotations(),
	}
}

func (s *avlSession[T]) Snapshot() *render.Node {
	return render.Snapshot(s.tree.Root())
}

func (s *avlSession[T]) InOrder() []string {
	values := make([]string, 0, s.tree.Len())
	for v := range s.tree.InOrder() {
		values = append(values, fmt.Sprint(v))
	}
	return values
}

// Revision changes every time the tree may have changed.
func (s *avlSession[T]) Revision() int {
	return s.revision
}

func (s *avlSession[T]) Reset() {
	s.tree = avl.New[T]()
	s.touch()
}

func (s *avlSession[T]) touch() {
	s.revision++
}

// joinInOrder formats the in-order keys for the clipboard.
func joinInOrder(s TreeSession) string {
	return strings.Join(s.InOrder(), " ")
}
