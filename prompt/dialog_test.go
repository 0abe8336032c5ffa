package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pressDialogKey(t *testing.T, m dialogModel, msg tea.KeyMsg) dialogModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(dialogModel)
}

func TestDialogDefaultsToYes(t *testing.T) {
	m := newDialogModel("title", "text")
	m = pressDialogKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.done || !m.answer {
		t.Error("enter on the initial focus should answer yes")
	}
}

func TestDialogSwitchFocus(t *testing.T) {
	m := newDialogModel("title", "text")

	m = pressDialogKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.focusYes {
		t.Fatal("right arrow should move focus to No")
	}

	m = pressDialogKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.focusYes {
		t.Fatal("tab should move focus back to Yes")
	}

	m = pressDialogKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = pressDialogKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.answer {
		t.Error("enter on No should answer no")
	}
}

func TestDialogDirectKeys(t *testing.T) {
	m := newDialogModel("title", "text")
	m = pressDialogKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if !m.done || m.answer {
		t.Error("'n' should answer no directly")
	}

	m = newDialogModel("title", "text")
	m = pressDialogKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if !m.done || !m.answer {
		t.Error("'y' should answer yes directly")
	}
}

func TestDialogAbortAnswersNo(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newDialogModel("title", "text")
		m = pressDialogKey(t, m, tea.KeyMsg{Type: key})

		if !m.done || m.answer {
			t.Errorf("key %v should answer no", key)
		}
	}
}

func TestDialogViewShowsContent(t *testing.T) {
	m := newDialogModel("Remove entry", "This cannot be undone")
	view := m.View()

	for _, want := range []string{"Remove entry", "This cannot be undone", "Yes", "No"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
