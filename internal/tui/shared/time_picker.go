package shared

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"blogcreator/internal/post"
)

// TimePickerModel edits a 24-hour HH:MM:SS clock time
type TimePickerModel struct {
	textInput textinput.Model
	title     string
	err       string
	width     int
	height    int
}

func NewTimePickerModel(current, title string) TimePickerModel {
	ti := textinput.New()
	ti.Placeholder = "HH:MM:SS"
	ti.CharLimit = 8
	ti.Width = 12
	ti.SetValue(current)
	ti.Focus()

	return TimePickerModel{textInput: ti, title: title}
}

func (m TimePickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. Returns (model, cmd, submitted, done).
func (m TimePickerModel) Update(msg tea.Msg) (TimePickerModel, tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, nil, false, true
		case "enter":
			if err := post.CheckClock(m.Value()); err != nil {
				m.err = "Invalid time: hours 0-23, minutes and seconds 0-59"
				return m, nil, false, false
			}
			return m, nil, true, true
		case "up", "k":
			m.step(1)
			return m, nil, false, false
		case "down", "j":
			m.step(-1)
			return m, nil, false, false
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.err = ""
	}
	return m, cmd, false, false
}

// step moves the minute by delta, wrapping within the day.
func (m *TimePickerModel) step(delta int) {
	h, minute, s := post.ParseClock(m.textInput.Value())
	total := ((h*60+minute+delta)%(24*60) + 24*60) % (24 * 60)
	m.textInput.SetValue(post.FormatClock(total/60, total%60, min(s, 59)))
	m.err = ""
}

// Value returns the clock text as typed
func (m TimePickerModel) Value() string {
	return strings.TrimSpace(m.textInput.Value())
}

func (m *TimePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m TimePickerModel) View() string {
	var s strings.Builder

	s.WriteString(pickerTitleStyle.Render(m.title))
	s.WriteString("\n\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n")
	if m.err != "" {
		s.WriteString(pickerErrorStyle.Render(m.err))
	}
	s.WriteString("\n")
	s.WriteString(pickerHelpStyle.Render("↑/↓: ±1 minute • enter: choose • esc: cancel"))
	s.WriteString("\n\n")
	s.WriteString(pickerHintStyle.Render("24-hour clock, missing parts count as 00"))

	box := pickerBoxStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
