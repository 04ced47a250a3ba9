package tui

import (
	"github.com/charmbracelet/lipgloss"

	"blogcreator/internal/tui/theme"
)

var (
	StatusBarStyle = theme.StatusBar
	HelpStyle      = theme.HelpHint

	pathStyle      = lipgloss.NewStyle().Foreground(theme.Secondary)
	unsavedStyle   = theme.Muted.Italic(true)
	placeholderMsg = theme.Muted.Italic(true)
	sectionStyle   = theme.Subtitle
	imageNoteStyle = theme.Muted
)
