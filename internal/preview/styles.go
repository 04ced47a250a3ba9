package preview

import (
	"github.com/charmbracelet/lipgloss"

	"blogcreator/internal/tui/theme"
)

var (
	h1Style      = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(theme.Primary)
	h2Style      = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)

	codeSpanStyle = lipgloss.NewStyle().Foreground(theme.Warning)
	linkStyle     = lipgloss.NewStyle().Underline(true).Foreground(theme.Secondary)
	activeLink    = lipgloss.NewStyle().Underline(true).Bold(true).Foreground(theme.TextBright).Background(theme.Surface)
	imageStyle    = lipgloss.NewStyle().Foreground(theme.Accent)

	markerStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	quoteBar    = lipgloss.NewStyle().Foreground(theme.TextMuted).Render("│ ")
	ruleStyle   = lipgloss.NewStyle().Foreground(theme.Border)
	htmlStyle   = theme.Muted.Italic(true)

	codeBoxStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(theme.Border).PaddingLeft(1)
	codeLangStyle = theme.Muted.Italic(true)
)
