package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"blogcreator/internal/post"
)

// SaveDialogModel asks for the location to save a post
type SaveDialogModel struct {
	dir       string
	textInput textinput.Model
	err       string
	width     int
	height    int
}

// NewSaveDialogModel pre-fills dir/suggested.json
func NewSaveDialogModel(dir, suggested string) SaveDialogModel {
	ti := textinput.New()
	ti.Placeholder = "post.json"
	ti.CharLimit = 500
	ti.Width = 60
	if suggested == "" {
		suggested = "untitled"
	}
	ti.SetValue(filepath.Join(dir, post.WithJSONExt(suggested)))
	ti.Focus()

	return SaveDialogModel{dir: dir, textInput: ti}
}

func (m SaveDialogModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. Returns (model, cmd, path, done); an empty path
// with done set means the dialog was cancelled.
func (m SaveDialogModel) Update(msg tea.Msg) (SaveDialogModel, tea.Cmd, string, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, nil, "", true
		case "enter":
			path, err := m.resolve()
			if err != nil {
				m.err = err.Error()
				return m, nil, "", false
			}
			if path == "" {
				return m, nil, "", false
			}
			return m, nil, path, true
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.err = ""
	return m, cmd, "", false
}

// resolve turns the input into an absolute .json path, creating missing
// parent directories.
func (m SaveDialogModel) resolve() (string, error) {
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return "", nil
	}
	path := post.WithJSONExt(ExpandPath(value))
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return "", fmt.Errorf("posts are saved as .json files, not %s", filepath.Ext(path))
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.dir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, nil
}

func (m *SaveDialogModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m SaveDialogModel) View() string {
	var s strings.Builder

	s.WriteString(dialogTitleStyle.Render("Select Post Save Location"))
	s.WriteString("\n\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n")
	if m.err != "" {
		s.WriteString(dialogErrorStyle.Render(m.err))
	}
	s.WriteString("\n\n")
	s.WriteString(dialogHelpStyle.Render("enter: save • esc: cancel"))

	box := dialogBoxStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
