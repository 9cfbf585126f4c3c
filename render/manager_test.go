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

package render

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type stubRenderer struct{ name string }

func (s *stubRenderer) Name() string     { return s.name }
func (s *stubRenderer) Describe() string { return "stub" }
func (s *stubRenderer) Render(w io.Writer, root *Node) error {
	_, err := io.WriteString(w, "stub:"+s.name)
	return err
}

func TestRendererManager(t *testing.T) {
	manager := NewManager()

	want := []string{"pretty", "balance", "indented", "details", "preorder", "inorder", "postorder"}
	got := manager.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v; want %v", got, want)
	}

	if _, err := manager.Get("sideways"); !errors.Is(err, ErrUnknownRenderer) {
		t.Errorf("Get(unknown) error = %v; want ErrUnknownRenderer", err)
	}

	if r, err := manager.Get("details"); err != nil || r.Name() != "details" {
		t.Errorf("Get(details) = %v, %v", r, err)
	}
}

func TestRendererManagerNext(t *testing.T) {
	manager := NewManager()

	if got := manager.Next("pretty"); got != "balance" {
		t.Errorf("Next(pretty) = %q; want balance", got)
	}
	if got := manager.Next("postorder"); got != "pretty" {
		t.Errorf("Next(postorder) = %q; want pretty (wrap around)", got)
	}
	if got := manager.Next("missing"); got != "pretty" {
		t.Errorf("Next(missing) = %q; want first renderer", got)
	}
}

func TestRegisterRendererReplacesByName(t *testing.T) {
	manager := NewManager()
	count := len(manager.Names())

	manager.RegisterRenderer(&stubRenderer{name: "details"})
	if len(manager.Names()) != count {
		t.Errorf("replacing a renderer changed the count")
	}
	out, err := manager.String("details", nil)
	if err != nil || out != "stub:details" {
		t.Errorf("String(details) = %q, %v", out, err)
	}

	manager.RegisterRenderer(&stubRenderer{name: "extra"})
	if got := manager.Names(); got[len(got)-1] != "extra" {
		t.Errorf("new renderer should be appended, got %v", got)
	}
}
