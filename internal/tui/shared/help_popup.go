package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"blogcreator/internal/tui/theme"
)

// HelpBind represents a single keybind entry
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

var (
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle     = theme.ModalBox
	helpDismissStyle = theme.ModalHelp
)

// RenderHelpPopup renders a centered help popup with the given sections
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	line := func(key, desc string) string {
		return "  " + helpKeyStyle.Width(16).Render(key) + helpDescStyle.Render(desc)
	}

	var b strings.Builder
	b.WriteString(helpSectionStyle.Render("Blog Creator - Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpSectionStyle.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			b.WriteString(line(bind.Key, bind.Desc) + "\n")
		}
	}

	b.WriteString("\n" + helpDismissStyle.Render("Press any key to close"))

	box := helpBoxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
