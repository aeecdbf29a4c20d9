package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/marshalgen"
	"github.com/wippyai/marshalgen/manifest"
	"github.com/wippyai/marshalgen/plan"
	"github.com/wippyai/marshalgen/strategy"
	"github.com/wippyai/marshalgen/witshape"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err       error
	manifest  *manifest.Manifest
	filename  string
	transient bool
	viewport  viewport.Model
	ready     bool
	selected  int
	state     modelState
	width     int
	height    int
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateShowPlan
)

func newInteractiveModel(filename string, transient bool) *interactiveModel {
	return &interactiveModel{
		filename:  filename,
		transient: transient,
		state:     stateSelectFunc,
	}
}

type loadedMsg struct {
	err error
	m   *manifest.Manifest
}

type planMsg struct {
	err     error
	content string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadManifest
}

func (m *interactiveModel) loadManifest() tea.Msg {
	mf, err := manifest.LoadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{m: mf}
}

func (m *interactiveModel) generatePlan() tea.Msg {
	fn := m.manifest.Functions[m.selected]
	values, err := fn.Values()
	if err != nil {
		return planMsg{err: err}
	}

	ctx := strategy.NewContext(marshalgen.NewNames(), m.transient)

	var b strings.Builder
	for _, v := range values {
		s, err := witshape.BuildChain(v.Layout, v.Count, fn.Name, v.Name)
		if err != nil {
			return planMsg{err: err}
		}
		p := plan.Generate(s, ctx, v.Position)

		b.WriteString(funcStyle.Render(v.Name))
		b.WriteString(" ")
		b.WriteString(typeStyle.Render(v.Layout.Native.TypeName))
		b.WriteString("\n")
		b.WriteString(renderPlan(p, tuiStyles()))
		b.WriteString("\n")
	}

	return planMsg{content: b.String()}
}

func tuiStyles() styles {
	return styles{
		title:  titleStyle,
		value:  funcStyle,
		typ:    typeStyle,
		phase:  phaseStyle,
		marker: markerStyle,
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.manifest != nil && m.selected < len(m.manifest.Functions)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectFunc && m.manifest != nil {
				return m, m.generatePlan
			}

		case "esc":
			if m.state == stateShowPlan {
				m.state = stateSelectFunc
				m.err = nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.manifest = msg.m

	case planMsg:
		m.err = msg.err
		if msg.err == nil && m.ready {
			m.viewport.SetContent(msg.content)
			m.viewport.GotoTop()
		}
		m.state = stateShowPlan
	}

	if m.state == stateShowPlan && m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowPlan {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.manifest == nil {
		return "Loading manifest..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Plan Generator"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		b.WriteString("Select a function:\n\n")
		for i, fn := range m.manifest.Functions {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatFunc(fn)))
			} else {
				b.WriteString(cursor + m.formatFunc(fn))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter generate • q quit"))

	case stateShowPlan:
		fn := m.manifest.Functions[m.selected]
		b.WriteString(fmt.Sprintf("Plan for %s:\n\n", funcStyle.Render(fn.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else if m.ready {
			b.WriteString(m.viewport.View())
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatFunc(fn manifest.Function) string {
	var params []string
	for _, p := range fn.Params {
		params = append(params, p.Name+": "+typeStyle.Render(p.Type))
	}
	return funcStyle.Render(fn.Name) + "(" + strings.Join(params, ", ") + ")"
}

func runInteractive(filename string, transient bool) error {
	p := tea.NewProgram(newInteractiveModel(filename, transient), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
