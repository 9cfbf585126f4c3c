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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/render"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput    textinput.Model
	treeViewport viewport.Model
	helpViewport viewport.Model

	// Data
	session     TreeSession
	renderers   *render.Manager
	renderCache *cache.Cache
	style       string

	// State
	treeView    string
	message     string
	messageKind messageKind
	showHelp    bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// messageKind picks the style of the status message.
type messageKind int

const (
	messageOK messageKind = iota
	messageWarn
	messageErr
)

// clipboardMsg reports the outcome of a clipboard copy.
type clipboardMsg struct {
	keys int
	err  error
}

// Styles holds all the styling for the application
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	Input          lipgloss.Style
	Status         lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	WarningMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the styles from the detected color scheme
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		Input: lipgloss.NewStyle().
			Foreground(scheme.Text),
		Status: lipgloss.NewStyle().
			Foreground(scheme.Accent),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		WarningMessage: lipgloss.NewStyle().
			Foreground(scheme.Warning).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// InitialModel creates the initial model
func InitialModel(session TreeSession, rc *cache.Cache, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type keys, e.g. 10 20 30, then press enter..."
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	treeViewport := viewport.New(0, 0)
	helpViewport := viewport.New(0, 0)

	renderers := render.NewManager()
	style := config.Display.Style
	if _, err := renderers.Get(style); err != nil {
		style = renderers.Names()[0]
	}

	styles := NewStyles(GetColorScheme())
	ti.TextStyle = styles.Input

	model := Model{
		textInput:    ti,
		treeViewport: treeViewport,
		helpViewport: helpViewport,
		session:      session,
		renderers:    renderers,
		renderCache:  rc,
		style:        style,
		styles:       styles,
	}
	model.refreshTree()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.applyInput(m.textInput.Value())
			m.textInput.SetValue("")
			return m, nil
		case "tab":
			m.style = m.renderers.Next(m.style)
			m.setMessage(fmt.Sprintf("style: %s", m.style), messageOK)
			m.refreshTree()
			return m, nil
		case "ctrl+r":
			m.session.Reset()
			m.setMessage("tree cleared", messageOK)
			m.refreshTree()
			return m, nil
		case "ctrl+y":
			text, count := joinInOrder(m.session), m.session.Status().Size
			return m, func() tea.Msg {
				return clipboardMsg{keys: count, err: copyToClipboard(text)}
			}
		case "f1":
			m.toggleHelp()
			return m, nil
		case "pgup":
			m.activeViewport().LineUp(m.activeViewport().Height)
			return m, nil
		case "pgdown":
			m.activeViewport().LineDown(m.activeViewport().Height)
			return m, nil
		case "up":
			m.activeViewport().LineUp(1)
			return m, nil
		case "down":
			m.activeViewport().LineDown(1)
			return m, nil
		}

	case clipboardMsg:
		if msg.err != nil {
			m.setMessage(fmt.Sprintf("copy failed: %v", msg.err), messageErr)
		} else {
			m.setMessage(fmt.Sprintf("copied %d in-order keys to clipboard", msg.keys), messageOK)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) activeViewport() *viewport.Model {
	if m.showHelp {
		return &m.helpViewport
	}
	return &m.treeViewport
}

// applyInput inserts every key typed on the input line.
func (m *Model) applyInput(line string) {
	tokens, err := splitKeys(line)
	if err != nil {
		m.setMessage(err.Error(), messageErr)
		return
	}
	if len(tokens) == 0 {
		return
	}

	before := m.session.Status().Rotations.Total()
	added, err := m.session.Insert(tokens)
	if err != nil {
		m.setMessage(err.Error(), messageErr)
		return
	}

	rotations := m.session.Status().Rotations.Total() - before
	kind := messageOK
	if added == 0 {
		kind = messageWarn
	}
	m.setMessage(fmt.Sprintf("inserted %d of %d keys, %d rebalances", added, len(tokens), rotations), kind)
	m.refreshTree()
}

func (m *Model) setMessage(msg string, kind messageKind) {
	m.message = msg
	m.messageKind = kind
}

// refreshTree renders the tree in the current style, reusing a cached frame
// when the tree has not changed since it was drawn.
func (m *Model) refreshTree() {
	revision := m.session.Revision()
	view, ok := GetRender(m.renderCache, revision, m.style)
	if !ok {
		rendered, err := m.renderers.String(m.style, m.session.Snapshot())
		if err != nil {
			m.setMessage(err.Error(), messageErr)
			return
		}
		view = rendered
		CacheRender(m.renderCache, revision, m.style, view)
	}

	m.treeView = view
	if strings.TrimSpace(view) == "" {
		m.treeViewport.SetContent("(empty tree)")
	} else {
		m.treeViewport.SetContent(view)
	}
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	if !m.showHelp {
		return
	}
	if m.glamourRenderer == nil {
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}

	text := getUsageMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(text); err == nil {
			text = rendered
		}
	}
	m.helpViewport.SetContent(text)
	m.helpViewport.GotoTop()
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	bodyHeight := m.height - inputHeight - 8 // status line and footer

	m.textInput.Width = m.width - 8
	m.treeViewport.Width = m.width - 4
	m.treeViewport.Height = max(bodyHeight, 1)
	m.helpViewport.Width = m.width - 4
	m.helpViewport.Height = max(bodyHeight, 1)
}

// View renders the application
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputBox := m.styles.Border.
		Width(m.width-2).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("🌱 Insert Keys"),
			m.textInput.View(),
		))

	title := fmt.Sprintf("🌳 Tree (%s)", m.style)
	body := m.treeViewport.View()
	if m.showHelp {
		title = "📖 Help"
		body = m.helpViewport.View()
	}
	treeBox := m.styles.Border.
		Width(m.width-2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			body,
		))

	status := m.styles.Status.Render(m.session.Status().String())
	if m.message != "" {
		msgStyle := m.styles.SuccessMessage
		switch m.messageKind {
		case messageWarn:
			msgStyle = m.styles.WarningMessage
		case messageErr:
			msgStyle = m.styles.ErrorMessage
		}
		status = lipgloss.JoinVertical(lipgloss.Left, status, msgStyle.Render(m.message))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		treeBox,
		lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(status),
		m.renderHelp(),
	)
}

// renderHelp renders the key binding footer
func (m Model) renderHelp() string {
	var keys []string
	var descs []string

	keys = append(keys, "enter")
	descs = append(descs, "insert keys")

	keys = append(keys, "tab")
	descs = append(descs, "next style")

	keys = append(keys, "ctrl+y")
	descs = append(descs, "copy in-order keys")

	keys = append(keys, "ctrl+r")
	descs = append(descs, "clear tree")

	keys = append(keys, "f1")
	descs = append(descs, "help")

	keys = append(keys, "esc")
	descs = append(descs, "quit")

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session TreeSession, rc *cache.Cache, config *Config) error {
	InitializeColors()

	model := InitialModel(session, rc, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
