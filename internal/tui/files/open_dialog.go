package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

const maxVisible = 12

// OpenDialogModel picks a post file from the documents directory
type OpenDialogModel struct {
	dir       string
	paths     []string // absolute paths
	names     []string // paths relative to dir, used for matching and display
	filtered  []int    // indices into paths
	selected  int
	textInput textinput.Model
	err       string
	width     int
	height    int
}

// NewOpenDialogModel lists paths found under dir
func NewOpenDialogModel(dir string, paths []string, scanErr error) OpenDialogModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter, or a path ending in .json"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	names := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			rel = p
		}
		names[i] = rel
	}

	m := OpenDialogModel{
		dir:       dir,
		paths:     paths,
		names:     names,
		textInput: ti,
	}
	if scanErr != nil {
		m.err = scanErr.Error()
	}
	m.applyFilter()
	return m
}

func (m OpenDialogModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *OpenDialogModel) applyFilter() {
	query := strings.TrimSpace(m.textInput.Value())
	if query == "" {
		m.filtered = make([]int, len(m.paths))
		for i := range m.paths {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(query, m.names)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

// Update handles messages. Returns (model, cmd, path, done); an empty path
// with done set means the dialog was cancelled.
func (m OpenDialogModel) Update(msg tea.Msg) (OpenDialogModel, tea.Cmd, string, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, nil, "", true
		case "down", "ctrl+n":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
			return m, nil, "", false
		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil, "", false
		case "enter":
			if typed := m.typedPath(); typed != "" {
				return m, nil, typed, true
			}
			if len(m.filtered) > 0 {
				return m, nil, m.paths[m.filtered[m.selected]], true
			}
			return m, nil, "", false
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.applyFilter()
	return m, cmd, "", false
}

// typedPath returns the input as a path when it names a .json file directly
func (m OpenDialogModel) typedPath() string {
	value := strings.TrimSpace(m.textInput.Value())
	if !strings.EqualFold(filepath.Ext(value), ".json") {
		return ""
	}
	value = ExpandPath(value)
	if !filepath.IsAbs(value) {
		value = filepath.Join(m.dir, value)
	}
	if _, err := os.Stat(value); err != nil {
		return ""
	}
	return value
}

func (m *OpenDialogModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m OpenDialogModel) View() string {
	var s strings.Builder

	s.WriteString(dialogTitleStyle.Render("Select Post"))
	s.WriteString("\n")
	s.WriteString(dirHintStyle.Render(AbbreviatePath(m.dir)))
	s.WriteString("\n\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n\n")

	if len(m.filtered) == 0 {
		s.WriteString(dialogHelpStyle.Render("  No .json files"))
		s.WriteString("\n")
	} else {
		start := 0
		if m.selected >= maxVisible {
			start = m.selected - maxVisible + 1
		}
		end := min(start+maxVisible, len(m.filtered))
		for i := start; i < end; i++ {
			name := m.names[m.filtered[i]]
			if i == m.selected {
				s.WriteString(selectedListItemStyle.Render("> " + name))
			} else {
				s.WriteString(listItemStyle.Render("  " + name))
			}
			s.WriteString("\n")
		}
	}

	if m.err != "" {
		s.WriteString("\n")
		s.WriteString(dialogErrorStyle.Render(m.err))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(dialogHelpStyle.Render("↑/↓: select • enter: open • esc: cancel"))

	box := dialogBoxStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
