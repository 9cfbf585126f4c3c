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
	"fmt"
	"io"
	"strings"
)

var ErrUnknownRenderer = errors.New("unknown renderer")

// Manager keeps the available renderers in registration order.
type Manager struct {
	renderers []Renderer
}

// NewManager creates a manager with all built-in renderers registered.
func NewManager() *Manager {
	manager := &Manager{}

	manager.RegisterRenderer(NewPrettyRenderer(false))
	manager.RegisterRenderer(NewPrettyRenderer(true))
	manager.RegisterRenderer(&IndentedRenderer{})
	manager.RegisterRenderer(&DetailsRenderer{})
	manager.RegisterRenderer(NewTraversalRenderer(PreOrder))
	manager.RegisterRenderer(NewTraversalRenderer(InOrder))
	manager.RegisterRenderer(NewTraversalRenderer(PostOrder))

	return manager
}

// RegisterRenderer adds r, replacing any renderer with the same name.
func (m *Manager) RegisterRenderer(r Renderer) {
	for i, existing := range m.renderers {
		if existing.Name() == r.Name() {
			m.renderers[i] = r
			return
		}
	}
	m.renderers = append(m.renderers, r)
}

// Get returns the renderer called name.
func (m *Manager) Get(name string) (Renderer, error) {
	for _, r := range m.renderers {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownRenderer, name, strings.Join(m.Names(), ", "))
}

// Names lists renderer names in registration order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.renderers))
	for _, r := range m.renderers {
		names = append(names, r.Name())
	}
	return names
}

// Next returns the name registered after name, wrapping around.
func (m *Manager) Next(name string) string {
	names := m.Names()
	if len(names) == 0 {
		return name
	}
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Render draws root with the renderer called name.
func (m *Manager) Render(name string, w io.Writer, root *Node) error {
	r, err := m.Get(name)
	if err != nil {
		return err
	}
	return r.Render(w, root)
}

// String renders root into a string.
func (m *Manager) String(name string, root *Node) (string, error) {
	var sb strings.Builder
	if err := m.Render(name, &sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}
