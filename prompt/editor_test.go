package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pressEditorKey(t *testing.T, m editorModel, key tea.KeyType) editorModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(editorModel)
}

func TestEditorSaveCommitsBuffer(t *testing.T) {
	m := newEditorModel("notes", "hello", EditorOptions{})
	m = pressEditorKey(t, m, tea.KeyCtrlS)

	if !m.done || !m.saved {
		t.Fatal("ctrl+s should save and finish the editor")
	}
	if got := m.area.Value(); got != "hello" {
		t.Errorf("buffer = %q, want %q", got, "hello")
	}
}

func TestEditorQuitDiscards(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlQ, tea.KeyEsc} {
		m := newEditorModel("notes", "hello", EditorOptions{})
		m = pressEditorKey(t, m, key)

		if !m.done {
			t.Errorf("key %v should finish the editor", key)
		}
		if m.saved {
			t.Errorf("key %v should not mark the buffer saved", key)
		}
	}
}

func TestEditorTypingReachesBuffer(t *testing.T) {
	m := newEditorModel("notes", "", EditorOptions{})
	for _, r := range "hi" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(editorModel)
	}

	if got := m.area.Value(); got != "hi" {
		t.Errorf("buffer = %q, want %q", got, "hi")
	}
}

func TestEditorHeightDefaults(t *testing.T) {
	m := newEditorModel("notes", "", EditorOptions{})
	if got := m.area.Height(); got != DefaultEditorHeight {
		t.Errorf("height = %d, want %d", got, DefaultEditorHeight)
	}

	m = newEditorModel("notes", "", EditorOptions{Height: 4})
	if got := m.area.Height(); got != 4 {
		t.Errorf("height = %d, want 4", got)
	}
}

func TestEditorWindowSizeUpdatesWidth(t *testing.T) {
	m := newEditorModel("notes", "", EditorOptions{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(editorModel)

	if m.width != 80 {
		t.Errorf("width = %d, want 80", m.width)
	}
}

func TestEditorViewShowsTitleAndHints(t *testing.T) {
	m := newEditorModel("my notes", "", EditorOptions{})
	view := m.View()

	if !strings.Contains(view, "my notes") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "save") || !strings.Contains(view, "quit") {
		t.Error("view should contain the key hints")
	}
}
