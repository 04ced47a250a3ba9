package shared

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"blogcreator/internal/post"
)

type datePickerMode int

const (
	calendarMode datePickerMode = iota
	textInputMode
)

// DatePickerModel is a calendar modal for choosing the publish date
type DatePickerModel struct {
	mode       datePickerMode
	cursorDate time.Time // The date under cursor in calendar
	viewMonth  time.Time // The month being viewed
	today      time.Time
	published  time.Time // the date the picker opened on
	textInput  textinput.Model
	err        string
	width      int
	height     int
	title      string
}

// NewDatePickerModel opens the calendar on current
func NewDatePickerModel(current post.Date, today time.Time, title string) DatePickerModel {
	cursorDate := current.Time()
	if !current.Valid() {
		cursorDate = today
	}

	ti := textinput.New()
	ti.Placeholder = "2026-03-15, +5, tomorrow"
	ti.CharLimit = 20
	ti.Width = 30
	ti.SetValue(post.DateOf(cursorDate).String())

	return DatePickerModel{
		mode:       calendarMode,
		cursorDate: cursorDate,
		viewMonth:  monthStart(cursorDate),
		today:      today,
		published:  cursorDate,
		textInput:  ti,
		title:      title,
	}
}

func (m DatePickerModel) Init() tea.Cmd {
	return nil
}

// Update handles key events. Returns (model, cmd, submitted, done).
func (m DatePickerModel) Update(msg tea.KeyMsg) (DatePickerModel, tea.Cmd, bool, bool) {
	if m.mode == textInputMode {
		return m.updateTextInput(msg)
	}
	return m.updateCalendar(msg)
}

func (m DatePickerModel) updateCalendar(msg tea.KeyMsg) (DatePickerModel, tea.Cmd, bool, bool) {
	switch msg.String() {
	case "esc":
		return m, nil, false, true
	case "enter":
		return m, nil, true, true
	case "i":
		m.mode = textInputMode
		m.textInput.SetValue(post.DateOf(m.cursorDate).String())
		return m, m.textInput.Focus(), false, false
	case "t":
		m.cursorDate = m.today
		m.viewMonth = monthStart(m.today)
	case "h", "left":
		m.moveCursor(0, 0, -1)
	case "l", "right":
		m.moveCursor(0, 0, 1)
	case "k", "up":
		m.moveCursor(0, 0, -7)
	case "j", "down":
		m.moveCursor(0, 0, 7)
	case "-", "H":
		m.moveCursor(0, -1, 0)
	case "+", "=", "L":
		m.moveCursor(0, 1, 0)
	}

	return m, nil, false, false
}

func (m DatePickerModel) updateTextInput(msg tea.KeyMsg) (DatePickerModel, tea.Cmd, bool, bool) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc":
		m.mode = calendarMode
		m.err = ""
		m.textInput.Blur()
		return m, nil, false, false
	case "enter":
		parsed, err := parseDateInput(m.textInput.Value(), m.today)
		if err != nil {
			m.err = err.Error()
			return m, nil, false, false
		}
		m.cursorDate = parsed
		m.viewMonth = monthStart(parsed)
		return m, nil, true, true
	default:
		m.err = ""
		m.textInput, cmd = m.textInput.Update(msg)
	}

	return m, cmd, false, false
}

func (m *DatePickerModel) moveCursor(years, months, days int) {
	m.cursorDate = m.cursorDate.AddDate(years, months, days)
	m.viewMonth = monthStart(m.cursorDate)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// parseDateInput accepts 2026-03-15, 03-15, +N, -N, today and tomorrow
func parseDateInput(input string, today time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "+") || strings.HasPrefix(input, "-") {
		days, err := strconv.Atoi(input[1:])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day offset")
		}
		if input[0] == '-' {
			days = -days
		}
		return today.AddDate(0, 0, days), nil
	}

	switch strings.ToLower(input) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if parsed, err := time.Parse("2006-01-02", input); err == nil {
		return parsed, nil
	}

	if parsed, err := time.Parse("01-02", input); err == nil {
		return time.Date(today.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("invalid date format")
}

// Date returns the date under the cursor
func (m DatePickerModel) Date() post.Date {
	return post.DateOf(m.cursorDate)
}

func (m *DatePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m DatePickerModel) View() string {
	if m.mode == textInputMode {
		return m.viewTextInput()
	}
	return m.viewCalendar()
}

func (m DatePickerModel) viewCalendar() string {
	var s strings.Builder

	s.WriteString(pickerTitleStyle.Render(m.title))
	s.WriteString("\n\n")

	s.WriteString(calendarMonthStyle.Render(m.viewMonth.Format("January 2006")))
	s.WriteString("\n\n")

	for _, day := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		s.WriteString(calendarWeekdayStyle.Render(day))
		s.WriteString(" ")
	}
	s.WriteString("\n")

	startWeekday := int(m.viewMonth.Weekday())
	daysInMonth := m.viewMonth.AddDate(0, 1, -1).Day()
	currentDay := 1 - startWeekday

	for week := 0; week < 6; week++ {
		for weekday := 0; weekday < 7; weekday++ {
			if currentDay < 1 || currentDay > daysInMonth {
				s.WriteString("  ")
			} else {
				date := time.Date(m.viewMonth.Year(), m.viewMonth.Month(), currentDay, 0, 0, 0, 0, time.UTC)
				dayStr := fmt.Sprintf("%2d", currentDay)

				switch {
				case isSameDay(date, m.cursorDate):
					s.WriteString(calendarCursorStyle.Render(dayStr))
				case isSameDay(date, m.today):
					s.WriteString(calendarTodayStyle.Render(dayStr))
				case isSameDay(date, m.published):
					s.WriteString(calendarPublishedStyle.Render(dayStr))
				default:
					s.WriteString(calendarDayStyle.Render(dayStr))
				}
			}
			s.WriteString(" ")
			currentDay++
		}
		s.WriteString("\n")

		if currentDay > daysInMonth {
			break
		}
	}

	s.WriteString("\n")
	s.WriteString(pickerHelpStyle.Render("hjkl/arrows: move • t: today • +/-: month • i: type date • enter: choose • esc: cancel"))

	box := pickerBoxStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m DatePickerModel) viewTextInput() string {
	var s strings.Builder

	s.WriteString(pickerTitleStyle.Render(m.title + " (Text Input)"))
	s.WriteString("\n\n")

	s.WriteString(m.textInput.View())
	s.WriteString("\n")
	if m.err != "" {
		s.WriteString(pickerErrorStyle.Render(m.err))
	}
	s.WriteString("\n\n")

	s.WriteString(pickerHelpStyle.Render("enter: choose • esc: back to calendar"))
	s.WriteString("\n\n")
	s.WriteString(pickerHintStyle.Render("Examples: 2026-03-15, 03-15, +5, tomorrow, today"))

	box := pickerBoxStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func isSameDay(d1, d2 time.Time) bool {
	return d1.Year() == d2.Year() && d1.Month() == d2.Month() && d1.Day() == d2.Day()
}
