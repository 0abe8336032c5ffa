package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/termtoys/inquire/internal/logging"
)

// EditorOptions configures the modal text editor.
type EditorOptions struct {
	// Height caps the editing area in rows. Zero uses DefaultEditorHeight.
	Height int
	// FullScreen takes over the whole terminal while editing.
	FullScreen bool
}

// TextArea opens a small modal editor over text and blocks until the user
// saves (Ctrl+S) or quits (Ctrl+Q / Esc). Saving returns the edited
// buffer; quitting returns the empty string.
func TextArea(title, text string, opts EditorOptions) (string, error) {
	m := newEditorModel(title, text, opts)

	var progOpts []tea.ProgramOption
	if opts.FullScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	result := final.(editorModel)
	if !result.saved {
		logging.Debug("editor discarded", zap.String("title", title))
		return "", nil
	}

	logging.Debug("editor saved",
		zap.String("title", title),
		zap.Int("bytes", len(result.area.Value())),
	)
	return result.area.Value(), nil
}

// editorKeyMap defines key bindings for the editor
type editorKeyMap struct {
	Save key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Quit},
	}
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "esc"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// editorModel is the Bubble Tea model behind TextArea.
type editorModel struct {
	title string
	area  textarea.Model
	keys  editorKeyMap
	help  help.Model

	width int
	saved bool
	done  bool
}

func newEditorModel(title, text string, opts EditorOptions) editorModel {
	height := opts.Height
	if height <= 0 {
		height = DefaultEditorHeight
	}

	ta := textarea.New()
	ta.SetValue(text)
	ta.SetHeight(height)
	ta.Focus()

	return editorModel{
		title: title,
		area:  ta,
		keys:  defaultEditorKeyMap(),
		help:  help.New(),
		width: GetTerminalWidth(),
	}
}

// Init implements tea.Model
func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.area.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Save):
			m.saved = true
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m editorModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleBarStyle.Width(m.width).Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.area.View())
	b.WriteString("\n")
	b.WriteString(StatusBarStyle.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}
