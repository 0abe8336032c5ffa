package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/termtoys/inquire/internal/logging"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl+C or
// Esc, or when the input stream ends before a valid value is committed.
var ErrCancelled = errors.New("prompt cancelled")

// Input prompts for one line of input. The prompt shows message with the
// default value hinted in parentheses, validates while typing, and only
// accepts Enter when validate approves the current value; invalid commits
// re-prompt with dirtyMessage. Committing an empty value returns
// defaultValue. When stdin is not a terminal the same contract is served
// by a plain read loop, so Input works in pipes and scripts.
func Input(message, defaultValue string, validate func(string) bool, dirtyMessage string) (string, error) {
	if !IsInteractive() {
		return readLoop(os.Stdin, os.Stdout, message, defaultValue, validate, dirtyMessage)
	}

	m := newInputModel(message, defaultValue, validate, dirtyMessage)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	result := final.(inputModel)
	if result.cancelled {
		logging.Debug("prompt cancelled", zap.String("message", message))
		return "", ErrCancelled
	}

	value := result.committed()
	logging.Debug("prompt committed",
		zap.String("message", message),
		zap.String("value", value),
	)
	return value, nil
}

// inputModel is the Bubble Tea model behind Input. The re-prompt loop is
// just the model refusing to quit while the buffer is invalid.
type inputModel struct {
	message      string
	defaultValue string
	validate     func(string) bool
	dirtyMessage string

	input     textinput.Model
	dirty     bool
	done      bool
	cancelled bool
}

func newInputModel(message, defaultValue string, validate func(string) bool, dirtyMessage string) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	return inputModel{
		message:      message,
		defaultValue: defaultValue,
		validate:     validate,
		dirtyMessage: dirtyMessage,
		input:        ti,
	}
}

// committed resolves the final value: an empty commit accepts the default.
func (m inputModel) committed() string {
	if v := m.input.Value(); v != "" {
		return v
	}
	return m.defaultValue
}

func (m inputModel) valid(s string) bool {
	return m.validate == nil || m.validate(s)
}

// Init implements tea.Model
func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.valid(m.input.Value()) {
				m.done = true
				return m, tea.Quit
			}
			m.dirty = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Validate while typing so guidance appears before the user commits.
	m.dirty = !m.valid(m.input.Value())
	return m, cmd
}

// View implements tea.Model
func (m inputModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(renderPromptLine(m.message, m.defaultValue))
	b.WriteString(m.input.View())
	if m.dirty && m.dirtyMessage != "" {
		b.WriteString("\n")
		b.WriteString(DirtyStyle.Render(m.dirtyMessage))
	}
	return b.String()
}

// renderPromptLine formats "message (default): " with the default hinted
// in the accent color.
func renderPromptLine(message, defaultValue string) string {
	return MessageStyle.Render(message) +
		DefaultHintStyle.Render(fmt.Sprintf(" (%s)", defaultValue)) +
		MessageStyle.Render(": ")
}

// readLoop is the non-terminal fallback behind Input: read a line, accept
// it if the validator approves, otherwise print the guidance message and
// read again. End of input before a valid commit counts as cancellation.
func readLoop(r io.Reader, w io.Writer, message, defaultValue string, validate func(string) bool, dirtyMessage string) (string, error) {
	reader := bufio.NewReader(r)
	for {
		_, _ = fmt.Fprint(w, renderPromptLine(message, defaultValue))

		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if err != nil && line == "" {
			_, _ = fmt.Fprintln(w)
			return "", ErrCancelled
		}

		if validate == nil || validate(line) {
			if line == "" {
				return defaultValue, nil
			}
			return line, nil
		}

		_, _ = fmt.Fprintln(w, DirtyStyle.Render(dirtyMessage))
		if err != nil {
			return "", ErrCancelled
		}
	}
}
