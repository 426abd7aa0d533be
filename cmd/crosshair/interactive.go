package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	crosshairkit "github.com/cs2tools/crosshair-kit"
	"github.com/cs2tools/crosshair-kit/sharecode"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type editorState int

const (
	stateInputCode editorState = iota
	stateBrowse
	stateEditField
	stateShowCode
)

type editorModel struct {
	err      error
	profile  crosshairkit.Profile
	fields   []fieldSpec
	codeIn   textinput.Model
	fieldIn  textinput.Model
	selected int
	code     string
	state    editorState
}

func newEditorModel() *editorModel {
	ci := textinput.New()
	ci.Placeholder = "CSGO-XXXXX-XXXXX-XXXXX-XXXXX-XXXXX"
	ci.Prompt = "code: "
	ci.Width = 40
	ci.Focus()
	return &editorModel{
		profile: crosshairkit.Default(),
		fields:  profileFields(),
		codeIn:  ci,
		state:   stateInputCode,
	}
}

func runInteractive() error {
	_, err := tea.NewProgram(newEditorModel()).Run()
	return err
}

func (m *editorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			switch m.state {
			case stateInputCode:
				m.importCode()
				return m, nil
			case stateBrowse:
				m.startEdit()
				return m, textinput.Blink
			case stateEditField:
				m.commitEdit()
				return m, nil
			case stateShowCode:
				m.state = stateBrowse
				m.code = ""
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInputCode:
				// Skip the import and edit the defaults.
				m.state = stateBrowse
				m.err = nil
				return m, nil
			case stateEditField:
				m.state = stateBrowse
				m.err = nil
				return m, nil
			case stateShowCode:
				m.state = stateBrowse
				m.code = ""
				return m, nil
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.fields)-1 {
				m.selected++
				return m, nil
			}

		case "g":
			if m.state == stateBrowse {
				m.code = sharecode.Encode(&m.profile)
				m.state = stateShowCode
				return m, nil
			}

		case "i":
			if m.state == stateBrowse {
				m.codeIn.SetValue("")
				m.codeIn.Focus()
				m.state = stateInputCode
				m.err = nil
				return m, textinput.Blink
			}

		case "q":
			if m.state == stateBrowse || m.state == stateShowCode {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateInputCode:
		m.codeIn, cmd = m.codeIn.Update(msg)
	case stateEditField:
		m.fieldIn, cmd = m.fieldIn.Update(msg)
	}
	return m, cmd
}

func (m *editorModel) importCode() {
	code := strings.TrimSpace(m.codeIn.Value())
	if code == "" {
		m.state = stateBrowse
		m.err = nil
		return
	}
	p, err := sharecode.Decode(code)
	if err != nil {
		m.err = err
		return
	}
	m.profile = *p
	m.err = nil
	m.state = stateBrowse
}

func (m *editorModel) startEdit() {
	f := m.fields[m.selected]
	ti := textinput.New()
	ti.Prompt = f.name + ": "
	ti.Placeholder = f.hint
	ti.SetValue(f.get(&m.profile))
	ti.Width = 40
	ti.Focus()
	m.fieldIn = ti
	m.state = stateEditField
}

func (m *editorModel) commitEdit() {
	// Edits detach the profile from any imported code so the generated
	// code reflects the new field values.
	detached := m.profile.Detach()
	if err := m.fields[m.selected].set(&detached, strings.TrimSpace(m.fieldIn.Value())); err != nil {
		m.err = err
		return
	}
	m.profile = detached
	m.err = nil
	m.state = stateBrowse
}

func (m *editorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Crosshair Editor"))
	if m.profile.Name != "" {
		b.WriteString(" ")
		b.WriteString(m.profile.Name)
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateInputCode:
		b.WriteString("Paste a share code, or press esc to edit the defaults:\n\n")
		b.WriteString(m.codeIn.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter import • esc skip • ctrl+c quit"))

	case stateBrowse:
		for i, f := range m.fields {
			line := fieldStyle.Render(f.name) + " = " + valueStyle.Render(f.get(&m.profile))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + f.name + " = " + f.get(&m.profile)))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • g generate code • i import • q quit"))

	case stateEditField:
		f := m.fields[m.selected]
		b.WriteString(fmt.Sprintf("Editing %s\n\n", fieldStyle.Render(f.name)))
		b.WriteString(m.fieldIn.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))

	case stateShowCode:
		b.WriteString("Share code:\n\n")
		b.WriteString(resultStyle.Render(m.code))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}
