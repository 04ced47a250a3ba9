package files

import (
	"github.com/charmbracelet/lipgloss"

	"blogcreator/internal/tui/theme"
)

var (
	dialogBoxStyle   = theme.ModalBox.Width(70)
	dialogTitleStyle = theme.ModalTitle
	dialogHelpStyle  = theme.ModalHelp
	dialogErrorStyle = theme.Error

	listItemStyle         = lipgloss.NewStyle().Foreground(theme.Text)
	selectedListItemStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Warning).Background(theme.Surface)
	dirHintStyle          = theme.Muted.Italic(true)
)
