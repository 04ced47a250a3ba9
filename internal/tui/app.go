// Package tui is the terminal front end of the post editor.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"blogcreator/internal/config"
	"blogcreator/internal/editor"
	"blogcreator/internal/logs"
	"blogcreator/internal/post"
	"blogcreator/internal/preview"
	"blogcreator/internal/tui/files"
	"blogcreator/internal/tui/shared"
	"blogcreator/internal/tui/theme"
)

type focusArea int

const (
	focusTitle focusArea = iota
	focusBody
	focusPreview
	focusSummary
	focusTags
	focusImage
	focusDate
	focusTime
)

var tabFocus = map[editor.Tab][]focusArea{
	editor.TabContent: {focusTitle, focusBody, focusPreview},
	editor.TabMeta:    {focusSummary, focusTags, focusImage, focusDate, focusTime},
}

type modalKind int

const (
	modalNone modalKind = iota
	modalOpen
	modalSave
	modalHelp
)

const labelWidth = 10

// chosenPath answers the engine's file prompts with a path the user already
// picked in a dialog.
type chosenPath struct {
	path string
	ok   bool
}

func (c chosenPath) OpenPath() (string, bool)        { return c.path, c.ok }
func (c chosenPath) SavePath(string) (string, bool) { return c.path, c.ok }

// AppModel is the root model. It owns the editor state and routes widget
// input to the engine as events.
type AppModel struct {
	cfg    *config.Config
	engine *editor.Engine
	state  editor.State

	titleInput   textinput.Model
	body         textarea.Model
	preview      viewport.Model
	summaryInput textinput.Model
	tagsInput    textinput.Model
	imageInput   textinput.Model

	focus        focusArea
	selectedLink int

	modal       modalKind
	openDialog  files.OpenDialogModel
	saveDialog  files.SaveDialogModel
	pendingSave editor.Event
	datePicker  shared.DatePickerModel
	timePicker  shared.TimePickerModel

	err    error
	width  int
	height int
	ready  bool
}

// NewAppModel creates the root application model. When path is non-empty
// the post at path is loaded before the first frame.
func NewAppModel(cfg *config.Config, engine *editor.Engine, path string) AppModel {
	m := AppModel{
		cfg:          cfg,
		engine:       engine,
		state:        engine.NewState(),
		titleInput:   newField("Post title"),
		body:         newBody(),
		preview:      viewport.New(0, 0),
		summaryInput: newField("One line summary"),
		tagsInput:    newField("comma, separated, tags"),
		imageInput:   newField("https://example.com/header.png"),
		selectedLink: -1,
	}
	m.state.Tab = editor.ParseTab(cfg.DefaultTab)
	m.focus = tabFocus[m.state.Tab][0]

	if path != "" {
		m.dispatchWith(chosenPath{path, true}, editor.LoadFile{})
	}
	m.syncWidgets()
	m.applyFocus()
	return m
}

func newField(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 0
	return ti
}

func newBody() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Write your post in markdown..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	return ta
}

// State returns the current editor state
func (m AppModel) State() editor.State {
	return m.state
}

// Err returns the error that ended the session, if any
func (m AppModel) Err() error {
	return m.err
}

func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// dispatch applies ev with no file prompt available.
func (m *AppModel) dispatch(ev editor.Event) tea.Cmd {
	return m.dispatchWith(chosenPath{}, ev)
}

func (m *AppModel) dispatchWith(d editor.Dialogs, ev editor.Event) tea.Cmd {
	if err := m.engine.WithDialogs(d).Update(&m.state, ev); err != nil {
		logs.Logger.Printf("Fatal: %v", err)
		m.err = err
		return tea.Quit
	}
	if m.selectedLink >= len(m.state.Preview.Links) {
		m.selectedLink = len(m.state.Preview.Links) - 1
	}
	m.refreshPreview()
	return nil
}

// syncWidgets copies state into the input widgets, used after a load
// replaces the whole post.
func (m *AppModel) syncWidgets() {
	m.titleInput.SetValue(m.state.Title)
	m.body.SetValue(m.state.Body.Text())
	m.summaryInput.SetValue(m.state.Summary)
	m.tagsInput.SetValue(m.state.Tags)
	m.imageInput.SetValue(m.state.ImageURL)
	m.selectedLink = -1
	m.refreshPreview()
}

func (m *AppModel) applyFocus() {
	inputs := map[focusArea]*textinput.Model{
		focusTitle:   &m.titleInput,
		focusSummary: &m.summaryInput,
		focusTags:    &m.tagsInput,
		focusImage:   &m.imageInput,
	}
	for area, ti := range inputs {
		if area == m.focus {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
	if m.focus == focusBody {
		m.body.Focus()
	} else {
		m.body.Blur()
	}
}

func (m *AppModel) cycleFocus(delta int) {
	order := tabFocus[m.state.Tab]
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	m.focus = order[idx]
	m.applyFocus()
}

func (m *AppModel) selectTab(tab editor.Tab) tea.Cmd {
	if tab == m.state.Tab {
		return nil
	}
	cmd := m.dispatch(editor.TabSelected{Tab: tab})
	m.focus = tabFocus[m.state.Tab][0]
	m.applyFocus()
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.setSize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modal != modalNone || m.state.ShowDatePicker || m.state.ShowTimePicker {
			return m.updateModal(msg)
		}
		return m.handleKey(msg)
	}

	if m.modal != modalNone || m.state.ShowDatePicker || m.state.ShowTimePicker {
		return m.updateModal(msg)
	}
	return m.updateFocused(msg)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if ev, ok := editor.ShortcutEvent(key); ok {
		return m.startFileCommand(ev)
	}

	switch key {
	case "ctrl+q":
		return m, tea.Quit
	case "ctrl+t":
		next := editor.TabMeta
		if m.state.Tab == editor.TabMeta {
			next = editor.TabContent
		}
		return m, m.selectTab(next)
	case "alt+1":
		return m, m.selectTab(editor.TabContent)
	case "alt+2":
		return m, m.selectTab(editor.TabMeta)
	case "f1":
		m.modal = modalHelp
		return m, nil
	case "tab":
		m.cycleFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil
	}

	switch m.focus {
	case focusPreview:
		return m.handlePreviewKey(msg)
	case focusImage:
		if key == "enter" {
			return m, m.dispatch(editor.SubmitImageURL{URL: m.state.ImageURL})
		}
	case focusDate, focusTime:
		switch key {
		case "enter", " ":
			if m.focus == focusDate {
				return m.openDatePicker()
			}
			return m.openTimePicker()
		case "?":
			m.modal = modalHelp
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// startFileCommand runs the modal a file command needs before the engine
// sees the event.
func (m AppModel) startFileCommand(ev editor.Event) (tea.Model, tea.Cmd) {
	switch ev.(type) {
	case editor.LoadFile:
		paths, err := post.List(m.cfg.DocumentsDir)
		m.openDialog = files.NewOpenDialogModel(m.cfg.DocumentsDir, paths, err)
		m.openDialog.SetSize(m.width, m.contentHeight())
		m.modal = modalOpen
		return m, m.openDialog.Init()

	case editor.SaveFile:
		if m.state.SavePath != "" {
			return m, m.dispatch(ev)
		}
	}

	m.pendingSave = ev
	m.saveDialog = files.NewSaveDialogModel(m.cfg.DocumentsDir, post.SuggestFilename(m.state.Title))
	m.saveDialog.SetSize(m.width, m.contentHeight())
	m.modal = modalSave
	return m, m.saveDialog.Init()
}

func (m AppModel) openDatePicker() (tea.Model, tea.Cmd) {
	cmd := m.dispatch(editor.ChooseDate{})
	m.datePicker = shared.NewDatePickerModel(m.state.Date, m.engine.NewState().Date.Time(), "Publish Date")
	m.datePicker.SetSize(m.width, m.contentHeight())
	return m, cmd
}

func (m AppModel) openTimePicker() (tea.Model, tea.Cmd) {
	cmd := m.dispatch(editor.ChooseTime{})
	m.timePicker = shared.NewTimePickerModel(m.state.Time, "Publish Time")
	m.timePicker.SetSize(m.width, m.contentHeight())
	return m, tea.Batch(cmd, m.timePicker.Init())
}

func (m AppModel) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	links := m.state.Preview.Links
	switch msg.String() {
	case "n":
		if len(links) > 0 {
			m.selectedLink = (m.selectedLink + 1) % len(links)
			m.refreshPreview()
		}
		return m, nil
	case "N", "p":
		if len(links) > 0 {
			m.selectedLink = (m.selectedLink - 1 + len(links)) % len(links)
			m.refreshPreview()
		}
		return m, nil
	case "enter":
		if m.selectedLink >= 0 && m.selectedLink < len(links) {
			return m, m.dispatch(editor.LinkClicked{URL: links[m.selectedLink]})
		}
		return m, nil
	case "?":
		m.modal = modalHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// updateFocused forwards msg to the focused widget and reports any change
// to the engine.
func (m AppModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd, evCmd tea.Cmd

	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
		if v := m.titleInput.Value(); v != m.state.Title {
			evCmd = m.dispatch(editor.EditTitle{Text: v})
		}
	case focusBody:
		m.body, cmd = m.body.Update(msg)
		if v := m.body.Value(); v != m.state.Body.Text() {
			evCmd = m.dispatch(editor.EditContent{Action: editor.Replace(v)})
		}
	case focusPreview:
		m.preview, cmd = m.preview.Update(msg)
	case focusSummary:
		m.summaryInput, cmd = m.summaryInput.Update(msg)
		if v := m.summaryInput.Value(); v != m.state.Summary {
			evCmd = m.dispatch(editor.EditSummary{Text: v})
		}
	case focusTags:
		m.tagsInput, cmd = m.tagsInput.Update(msg)
		if v := m.tagsInput.Value(); v != m.state.Tags {
			evCmd = m.dispatch(editor.EditTags{Text: v})
		}
	case focusImage:
		m.imageInput, cmd = m.imageInput.Update(msg)
		if v := m.imageInput.Value(); v != m.state.ImageURL {
			evCmd = m.dispatch(editor.EditImageURL{Text: v})
		}
	}

	return m, tea.Batch(cmd, evCmd)
}

func (m AppModel) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch {
	case m.state.ShowDatePicker:
		key, ok := msg.(tea.KeyMsg)
		if !ok {
			return m, nil
		}
		var cmd tea.Cmd
		var submitted, done bool
		m.datePicker, cmd, submitted, done = m.datePicker.Update(key)
		if done {
			if submitted {
				return m, m.dispatch(editor.SubmitDate{Date: m.datePicker.Date()})
			}
			return m, m.dispatch(editor.CancelDate{})
		}
		return m, cmd

	case m.state.ShowTimePicker:
		var cmd tea.Cmd
		var submitted, done bool
		m.timePicker, cmd, submitted, done = m.timePicker.Update(msg)
		if done {
			if submitted {
				return m, m.dispatch(editor.SubmitTime{Time: m.timePicker.Value()})
			}
			return m, m.dispatch(editor.CancelTime{})
		}
		return m, cmd
	}

	switch m.modal {
	case modalHelp:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.modal = modalNone
		}
		return m, nil

	case modalOpen:
		var cmd tea.Cmd
		var path string
		var done bool
		m.openDialog, cmd, path, done = m.openDialog.Update(msg)
		if !done {
			return m, cmd
		}
		m.modal = modalNone
		if path == "" {
			return m, nil
		}
		evCmd := m.dispatchWith(chosenPath{path, true}, editor.LoadFile{})
		m.syncWidgets()
		m.focus = tabFocus[m.state.Tab][0]
		m.applyFocus()
		return m, evCmd

	case modalSave:
		var cmd tea.Cmd
		var path string
		var done bool
		m.saveDialog, cmd, path, done = m.saveDialog.Update(msg)
		if !done {
			return m, cmd
		}
		m.modal = modalNone
		if path == "" {
			return m, nil
		}
		return m, m.dispatchWith(chosenPath{path, true}, m.pendingSave)
	}

	return m, nil
}

func (m AppModel) contentHeight() int {
	// tab bar and status bar each take a border line plus a text line
	return max(m.height-4, 1)
}

func (m *AppModel) paneSize() (int, int) {
	paneWidth := max(m.width/2, 12)
	// title row, spacer and pane borders
	paneHeight := max(m.contentHeight()-4, 3)
	return paneWidth - 2, paneHeight
}

func (m *AppModel) setSize() {
	w, h := m.paneSize()
	m.body.SetWidth(w)
	m.body.SetHeight(h)
	m.preview.Width = w
	m.preview.Height = h

	fieldWidth := max(m.width-labelWidth-4, 10)
	m.titleInput.Width = fieldWidth
	m.summaryInput.Width = fieldWidth
	m.tagsInput.Width = fieldWidth
	m.imageInput.Width = fieldWidth

	m.openDialog.SetSize(m.width, m.contentHeight())
	m.saveDialog.SetSize(m.width, m.contentHeight())
	m.datePicker.SetSize(m.width, m.contentHeight())
	m.timePicker.SetSize(m.width, m.contentHeight())

	m.refreshPreview()
}

func (m *AppModel) refreshPreview() {
	w, h := m.paneSize()
	if len(m.state.Preview.Blocks) == 0 {
		m.preview.SetContent(shared.CenterContent(
			lipgloss.PlaceHorizontal(w, lipgloss.Center, placeholderMsg.Render("Nothing to preview")), h))
		return
	}
	m.preview.SetContent(preview.Render(m.state.Preview, preview.RenderOptions{
		Width:        w,
		CodeTheme:    m.cfg.CodeTheme,
		SelectedLink: m.selectedLink,
	}))
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var content string
	switch {
	case m.state.ShowDatePicker:
		content = m.datePicker.View()
	case m.state.ShowTimePicker:
		content = m.timePicker.View()
	case m.modal == modalOpen:
		content = m.openDialog.View()
	case m.modal == modalSave:
		content = m.saveDialog.View()
	case m.modal == modalHelp:
		content = shared.RenderHelpPopup(helpSections, m.width, m.contentHeight())
	case m.state.Tab == editor.TabMeta:
		content = m.viewMeta()
	default:
		content = m.viewContent()
	}

	content = lipgloss.NewStyle().Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, content, m.viewTabBar(), m.viewStatusBar())
}

func (m AppModel) fieldRow(label string, area focusArea, value string) string {
	style := theme.FieldLabel
	if m.focus == area {
		style = theme.FieldLabelFocused
	}
	return style.Width(labelWidth).Render(label) + " " + value
}

func (m AppModel) viewContent() string {
	title := m.fieldRow("Title", focusTitle, m.titleInput.View())

	bodyPane := theme.Pane
	if m.focus == focusBody {
		bodyPane = theme.PaneFocused
	}
	previewPane := theme.Pane
	if m.focus == focusPreview {
		previewPane = theme.PaneFocused
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		bodyPane.Render(m.body.View()),
		previewPane.Render(m.preview.View()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, "", panes)
}

func (m AppModel) viewMeta() string {
	button := func(area focusArea, text string) string {
		if m.focus == area {
			return theme.ButtonFocused.Render(text)
		}
		return theme.Button.Render(text)
	}

	rows := []string{
		m.fieldRow("Summary", focusSummary, m.summaryInput.View()),
		m.fieldRow("Tags", focusTags, m.tagsInput.View()),
		m.fieldRow("Image URL", focusImage, m.imageInput.View()),
		"",
		m.fieldRow("Date", focusDate, button(focusDate, m.state.Date.String())),
		m.fieldRow("Time", focusTime, button(focusTime, m.state.Time)),
		"",
		sectionStyle.Render("Header image"),
	}

	if img := m.state.Image; img != nil {
		thumbHeight := m.contentHeight() - len(rows) - 2
		thumbWidth := min(m.width-2, 2*thumbHeight*img.Bitmap.Bounds().Dx()/max(img.Bitmap.Bounds().Dy(), 1))
		rows = append(rows,
			preview.Thumbnail(img.Bitmap, max(thumbWidth, 1)),
			imageNoteStyle.Render(fmt.Sprintf("%s %dx%d", img.Format, img.Bitmap.Bounds().Dx(), img.Bitmap.Bounds().Dy())),
		)
	} else {
		rows = append(rows, placeholderMsg.Render("No image loaded. Press enter on the image URL to fetch it."))
	}

	return strings.Join(rows, "\n")
}

func (m AppModel) viewTabBar() string {
	var tabs []string
	for i, tab := range []editor.Tab{editor.TabContent, editor.TabMeta} {
		label := fmt.Sprintf("%d %s", i+1, tab)
		if tab == m.state.Tab {
			tabs = append(tabs, theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(label))
		}
	}
	return theme.TabBar.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m AppModel) viewStatusBar() string {
	file := unsavedStyle.Render("unsaved")
	if m.state.SavePath != "" {
		file = pathStyle.Render(files.AbbreviatePath(m.state.SavePath))
	}
	hints := HelpStyle.Render("ctrl+o:open ctrl+s:save alt+s:save as | ctrl+t:tab | f1:help | ctrl+q:quit")
	return StatusBarStyle.Width(m.width).Render(file + "  " + hints)
}

var helpSections = []shared.HelpSection{
	{
		Title: "Files",
		Binds: []shared.HelpBind{
			{Key: "ctrl+o", Desc: "Open post"},
			{Key: "ctrl+s", Desc: "Save post"},
			{Key: "alt+s", Desc: "Save post as"},
		},
	},
	{
		Title: "Navigation",
		Binds: []shared.HelpBind{
			{Key: "ctrl+t", Desc: "Switch tab"},
			{Key: "alt+1 / alt+2", Desc: "Content / Meta tab"},
			{Key: "tab", Desc: "Next field"},
			{Key: "shift+tab", Desc: "Previous field"},
			{Key: "ctrl+q", Desc: "Quit"},
		},
	},
	{
		Title: "Preview",
		Binds: []shared.HelpBind{
			{Key: "n / N", Desc: "Next / previous link"},
			{Key: "enter", Desc: "Open selected link"},
			{Key: "↑/↓", Desc: "Scroll"},
		},
	},
	{
		Title: "Meta",
		Binds: []shared.HelpBind{
			{Key: "enter", Desc: "Fetch image / choose date or time"},
		},
	},
}
