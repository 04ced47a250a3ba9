package shared

import (
	"github.com/charmbracelet/lipgloss"

	"blogcreator/internal/tui/theme"
)

// Styles shared by the date and time pickers
var (
	pickerBoxStyle = theme.ModalBox.BorderStyle(lipgloss.DoubleBorder()).BorderForeground(theme.Accent).Width(50)

	pickerTitleStyle = theme.ModalTitle.Align(lipgloss.Center)
	pickerHelpStyle  = theme.ModalHelp
	pickerErrorStyle = lipgloss.NewStyle().Foreground(theme.Danger)
	pickerHintStyle  = theme.Muted.Italic(true)

	calendarMonthStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Align(lipgloss.Center)
	calendarWeekdayStyle   = theme.Muted.Bold(true)
	calendarDayStyle       = lipgloss.NewStyle().Foreground(theme.Text)
	calendarTodayStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	calendarCursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(theme.Warning)
	calendarPublishedStyle = lipgloss.NewStyle().Underline(true).Foreground(theme.Secondary)
)
