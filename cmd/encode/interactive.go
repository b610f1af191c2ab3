package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	hostjson "github.com/wippyai/hostjson"
	"github.com/wippyai/hostjson/encoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	optOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	optOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err     error
	loader  *yamlLoader
	input   textinput.Model
	result  string
	history []string
	opts    hostjson.Option
	state   modelState
}

type modelState int

const (
	stateEditInput modelState = iota
	stateShowResult
)

func newInteractiveModel(opts hostjson.Option) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = `{a: 1, b: [true, null, 2.5]}`
	ti.Prompt = "yaml> "
	ti.Width = 72
	ti.Focus()

	return &interactiveModel{
		loader: newYAMLLoader(),
		input:  ti,
		opts:   opts,
		state:  stateEditInput,
	}
}

type encodedMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) encode() tea.Msg {
	root, err := m.loader.Load([]byte(m.input.Value()))
	if err != nil {
		return encodedMsg{err: err}
	}
	out, err := encoder.Encode(root, nil, m.opts)
	if err != nil {
		return encodedMsg{err: err}
	}
	return encodedMsg{result: string(out)}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+s":
			m.opts ^= hostjson.StrictInteger
			return m, nil

		case "ctrl+r":
			m.opts ^= hostjson.SerializeRecord
			return m, nil

		case "ctrl+u":
			m.opts ^= hostjson.SerializeUUID
			return m, nil

		case "enter":
			switch m.state {
			case stateEditInput:
				if strings.TrimSpace(m.input.Value()) == "" {
					return m, nil
				}
				return m, m.encode

			case stateShowResult:
				m.state = stateEditInput
				m.result = ""
				m.err = nil
				m.input.SetValue("")
				m.input.Focus()
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateEditInput
				m.result = ""
				m.err = nil
				m.input.Focus()
				return m, nil
			}
			return m, tea.Quit
		}

	case encodedMsg:
		m.err = msg.err
		m.result = msg.result
		if msg.err == nil {
			m.history = append(m.history, msg.result)
		}
		m.state = stateShowResult
		m.input.Blur()
		return m, nil
	}

	if m.state == stateEditInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("hostjson"))
	b.WriteString("  ")
	b.WriteString(m.formatOpt("strict-int", hostjson.StrictInteger))
	b.WriteString("  ")
	b.WriteString(m.formatOpt("records", hostjson.SerializeRecord))
	b.WriteString("  ")
	b.WriteString(m.formatOpt("uuids", hostjson.SerializeUUID))
	b.WriteString("\n\n")

	switch m.state {
	case stateEditInput:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if n := len(m.history); n > 0 {
			b.WriteString(helpStyle.Render(fmt.Sprintf("%d encoded", n)))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter encode • ^s/^r/^u toggle options • esc quit"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • esc back • ctrl+c quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatOpt(name string, flag hostjson.Option) string {
	if m.opts.Has(flag) {
		return optOnStyle.Render("[x] " + name)
	}
	return optOffStyle.Render("[ ] " + name)
}

func runInteractive(opts hostjson.Option) error {
	p := tea.NewProgram(newInteractiveModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
