package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// YesNoDialog shows a modal dialog with Yes/No buttons and blocks until
// the user picks one. Left/right or Tab move focus, Enter commits, and
// "y"/"n" answer directly. Esc and Ctrl+C answer no.
func YesNoDialog(title, text string) (bool, error) {
	final, err := tea.NewProgram(newDialogModel(title, text)).Run()
	if err != nil {
		return false, fmt.Errorf("dialog failed: %w", err)
	}
	return final.(dialogModel).answer, nil
}

// dialogKeyMap defines key bindings for the dialog
type dialogKeyMap struct {
	Switch key.Binding
	Commit key.Binding
	Yes    key.Binding
	No     key.Binding
	Abort  key.Binding
}

func defaultDialogKeyMap() dialogKeyMap {
	return dialogKeyMap{
		Switch: key.NewBinding(
			key.WithKeys("left", "right", "tab"),
			key.WithHelp("←/→", "switch"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// dialogModel is the Bubble Tea model behind YesNoDialog.
type dialogModel struct {
	title string
	text  string
	keys  dialogKeyMap

	focusYes bool
	answer   bool
	done     bool
}

func newDialogModel(title, text string) dialogModel {
	return dialogModel{
		title:    title,
		text:     text,
		keys:     defaultDialogKeyMap(),
		focusYes: true,
	}
}

// Init implements tea.Model
func (m dialogModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Switch):
		m.focusYes = !m.focusYes
		return m, nil

	case key.Matches(keyMsg, m.keys.Commit):
		m.answer = m.focusYes
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Yes):
		m.answer = true
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.No), key.Matches(keyMsg, m.keys.Abort):
		m.answer = false
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m dialogModel) View() string {
	if m.done {
		return ""
	}

	yes := ButtonStyle.Render("Yes")
	no := ActiveButtonStyle.Render("No")
	if m.focusYes {
		yes = ActiveButtonStyle.Render("Yes")
		no = ButtonStyle.Render("No")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		TitleBarStyle.Render(m.title),
		"",
		MessageStyle.Render(m.text),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, yes, no),
	)

	width := GetTerminalWidth() / 2
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	return DialogBoxStyle(width).Render(body)
}
