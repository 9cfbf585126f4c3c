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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/arbor/render"
)

func TestNewTreeSession(t *testing.T) {
	for _, keyType := range []string{"", KeyTypeInt, KeyTypeString} {
		session, err := NewTreeSession(keyType)
		require.NoError(t, err, keyType)
		assert.Equal(t, -1, session.Status().Height)
	}

	_, err := NewTreeSession("float")
	assert.Error(t, err)
}

func TestSessionInsert(t *testing.T) {
	session, err := NewTreeSession(KeyTypeInt)
	require.NoError(t, err)

	added, err := session.Insert([]string{"10", "20", "30", "20"})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	status := session.Status()
	assert.Equal(t, KeyTypeInt, status.KeyType)
	assert.Equal(t, 3, status.Size)
	assert.Equal(t, 1, status.Height)
	assert.True(t, status.Balanced)
	assert.Equal(t, 1, status.Rotations.RR)
	assert.Equal(t, []string{"10", "20", "30"}, session.InOrder())
	assert.Equal(t, "10 20 30", joinInOrder(session))
	assert.Equal(t, "20", session.Snapshot().Label)
}

func TestSessionInsertRejectsBatchWithInvalidKey(t *testing.T) {
	session, err := NewTreeSession(KeyTypeInt)
	require.NoError(t, err)

	revision := session.Revision()
	_, err = session.Insert([]string{"1", "two", "3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"two"`)
	assert.Equal(t, 0, session.Status().Size)
	assert.Equal(t, revision, session.Revision())
}

func TestSessionStringKeys(t *testing.T) {
	session, err := NewTreeSession(KeyTypeString)
	require.NoError(t, err)

	_, err = session.Insert([]string{"pear", "apple", "new york", "fig"})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "fig", "new york", "pear"}, session.InOrder())
	assert.Equal(t, "apple fig new york pear\n", mustRender(t, "inorder", session.Snapshot()))
}

func TestSessionRevisionAndReset(t *testing.T) {
	session, err := NewTreeSession(KeyTypeInt)
	require.NoError(t, err)

	r0 := session.Revision()
	_, err = session.Insert([]string{"1"})
	require.NoError(t, err)
	r1 := session.Revision()
	assert.NotEqual(t, r0, r1)

	session.Reset()
	assert.NotEqual(t, r1, session.Revision())
	assert.Equal(t, 0, session.Status().Size)
	assert.Nil(t, session.Snapshot())
}

func TestSessionCompare(t *testing.T) {
	session, err := NewTreeSession(KeyTypeInt)
	require.NoError(t, err)

	cmp, err := session.Compare(strings.Fields("1 2 3 4 5"))
	require.NoError(t, err)
	assert.Equal(t, Comparison{
		Keys:        5,
		AVLHeight:   2,
		AVLBalanced: true,
		BSTHeight:   4,
		BSTBalanced: false,
	}, cmp)

	// Compare works on fresh trees and leaves the session alone.
	assert.Equal(t, 0, session.Status().Size)
}

func TestSessionLoad(t *testing.T) {
	session, err := NewTreeSession(KeyTypeInt)
	require.NoError(t, err)

	report, err := session.Load(strings.Fields("1 2 3 4 5 6 7 7"), testLoadOptions(true))
	require.NoError(t, err)
	assert.Equal(t, 7, report.Inserted)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, "4 2 1 3 6 5 7\n", mustRender(t, "preorder", session.Snapshot()))
}

func mustRender(t *testing.T, style string, root *render.Node) string {
	t.Helper()
	out, err := render.NewManager().String(style, root)
	require.NoError(t, err)
	return out
}
