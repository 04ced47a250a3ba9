package shared

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"blogcreator/internal/post"
)

var today = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDatePicker_Navigate(t *testing.T) {
	m := NewDatePickerModel(post.Date{Year: 2026, Month: time.January, Day: 31}, today, "Publish Date")

	m, _, _, _ = m.Update(key("l"))
	if m.Date() != (post.Date{Year: 2026, Month: time.February, Day: 1}) {
		t.Errorf("expected Feb 1, got %s", m.Date())
	}

	m, _, _, _ = m.Update(key("j"))
	if m.Date() != (post.Date{Year: 2026, Month: time.February, Day: 8}) {
		t.Errorf("expected Feb 8, got %s", m.Date())
	}

	m, _, _, _ = m.Update(key("t"))
	if m.Date() != post.DateOf(today) {
		t.Errorf("expected today, got %s", m.Date())
	}

	_, _, submitted, done := m.Update(key("enter"))
	if !submitted || !done {
		t.Error("expected enter to submit")
	}

	_, _, submitted, done = m.Update(key("esc"))
	if submitted || !done {
		t.Error("expected esc to cancel")
	}
}

func TestDatePicker_TextInput(t *testing.T) {
	m := NewDatePickerModel(post.DateOf(today), today, "Publish Date")
	m, _, _, _ = m.Update(key("i"))

	m.textInput.SetValue("+5")
	m, _, submitted, done := m.Update(key("enter"))
	if !submitted || !done {
		t.Fatal("expected valid text to submit")
	}
	if m.Date() != (post.Date{Year: 2026, Month: time.March, Day: 19}) {
		t.Errorf("expected Mar 19, got %s", m.Date())
	}
}

func TestDatePicker_TextInputInvalid(t *testing.T) {
	m := NewDatePickerModel(post.DateOf(today), today, "Publish Date")
	m, _, _, _ = m.Update(key("i"))

	m.textInput.SetValue("someday")
	m, _, submitted, done := m.Update(key("enter"))
	if submitted || done {
		t.Error("expected invalid text to keep the picker open")
	}
	if m.err == "" {
		t.Error("expected an error message")
	}
}

func TestParseDateInput(t *testing.T) {
	tests := []struct {
		input    string
		expected post.Date
	}{
		{"2026-12-25", post.Date{Year: 2026, Month: time.December, Day: 25}},
		{"04-01", post.Date{Year: 2026, Month: time.April, Day: 1}},
		{"tomorrow", post.Date{Year: 2026, Month: time.March, Day: 15}},
		{"-14", post.Date{Year: 2026, Month: time.February, Day: 28}},
	}

	for _, tt := range tests {
		parsed, err := parseDateInput(tt.input, today)
		if err != nil {
			t.Fatalf("parseDateInput(%q): unexpected error: %v", tt.input, err)
		}
		if post.DateOf(parsed) != tt.expected {
			t.Errorf("parseDateInput(%q): expected %s, got %s", tt.input, tt.expected, post.DateOf(parsed))
		}
	}
}

func TestTimePicker(t *testing.T) {
	m := NewTimePickerModel("23:59:10", "Publish Time")

	m, _, _, _ = m.Update(key("up"))
	if m.Value() != "00:00:10" {
		t.Errorf("expected wrap to 00:00:10, got %q", m.Value())
	}

	m, _, _, _ = m.Update(key("down"))
	if m.Value() != "23:59:10" {
		t.Errorf("expected 23:59:10, got %q", m.Value())
	}

	_, _, submitted, done := m.Update(key("enter"))
	if !submitted || !done {
		t.Error("expected enter to submit")
	}
}

func TestTimePicker_RejectsOutOfRange(t *testing.T) {
	m := NewTimePickerModel("", "Publish Time")
	for _, r := range "25:00" {
		m, _, _, _ = m.Update(key(string(r)))
	}

	m, _, submitted, done := m.Update(key("enter"))
	if submitted || done {
		t.Fatal("expected 25:00 to be rejected")
	}
	if m.err == "" {
		t.Error("expected an inline error")
	}

	m, _, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.err != "" {
		t.Error("editing should clear the error")
	}
	m.textInput.SetValue("7")

	_, _, submitted, done = m.Update(key("enter"))
	if !submitted || !done {
		t.Errorf("expected partial time %q to be accepted", m.Value())
	}
}
