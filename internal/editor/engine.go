// Package editor holds the post editing state and the transition function
// that applies user events to it.
package editor

import (
	"errors"
	"fmt"
	"time"

	"blogcreator/internal/logs"
	"blogcreator/internal/post"
	"blogcreator/internal/preview"
)

// Engine applies events to editor state. It is the only code that mutates
// a State; callers must not run Update concurrently on the same State.
type Engine struct {
	dialogs Dialogs
	store   Store
	fetcher Fetcher
	opener  Opener
	now     func() time.Time
}

// Collaborators bundles the external services the engine calls into
type Collaborators struct {
	Dialogs Dialogs
	Store   Store
	Fetcher Fetcher
	Opener  Opener
	Now     func() time.Time // defaults to time.Now
}

// NewEngine creates an engine using the given collaborators
func NewEngine(c Collaborators) *Engine {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		dialogs: c.Dialogs,
		store:   c.Store,
		fetcher: c.Fetcher,
		opener:  c.Opener,
		now:     now,
	}
}

// WithDialogs returns a copy of the engine that asks d for file paths
func (e *Engine) WithDialogs(d Dialogs) *Engine {
	cp := *e
	cp.dialogs = d
	return &cp
}

// NewState returns the empty startup state
func (e *Engine) NewState() State {
	return NewState(e.now())
}

// Update applies ev to s and re-derives the markdown preview. A non-nil
// error is unrecoverable: a malformed post file on load or a date/time that
// cannot be saved.
func (e *Engine) Update(s *State, ev Event) error {
	err := e.apply(s, ev)
	s.Preview = preview.Parse(s.Body.Text())
	return err
}

func (e *Engine) apply(s *State, ev Event) error {
	switch ev := ev.(type) {
	case EditTitle:
		s.Title = ev.Text
	case EditSummary:
		s.Summary = ev.Text
	case EditTags:
		s.Tags = ev.Text
	case EditImageURL:
		s.ImageURL = ev.Text
	case EditContent:
		s.Body.Perform(ev.Action)

	case SubmitImageURL:
		s.Image = e.fetchImage(ev.URL)

	case TabSelected:
		s.Tab = ev.Tab

	case ChooseDate:
		s.ShowDatePicker = true
	case SubmitDate:
		s.Date = ev.Date
		s.ShowDatePicker = false
	case CancelDate:
		s.ShowDatePicker = false

	case ChooseTime:
		s.ShowTimePicker = true
	case SubmitTime:
		s.Time = ev.Time
		s.ShowTimePicker = false
	case CancelTime:
		s.ShowTimePicker = false

	case LoadFile:
		return e.load(s)

	case SaveFile:
		if s.SavePath == "" {
			path, ok := e.dialogs.SavePath(post.SuggestFilename(s.Title))
			if !ok {
				return nil
			}
			s.SavePath = path
		}
		return e.save(s, s.SavePath)

	case SaveToFile:
		path, ok := e.dialogs.SavePath(post.SuggestFilename(s.Title))
		if !ok {
			return nil
		}
		s.SavePath = path
		return e.save(s, path)

	case LinkClicked:
		if err := e.opener.Open(ev.URL); err != nil {
			logs.Logger.Printf("Could not open link %s: %v", ev.URL, err)
		}
	}

	return nil
}

func (e *Engine) load(s *State) error {
	path, ok := e.dialogs.OpenPath()
	if !ok {
		return nil
	}

	logs.Logger.Printf("Loading post from %s", path)

	var next State
	p, err := e.store.Read(path)
	switch {
	case err == nil:
		next = FromPost(p)
	case errors.Is(err, post.ErrMalformed):
		return fmt.Errorf("load %s: %w", path, err)
	default:
		// Unreadable file: start a fresh post bound to the chosen path
		logs.Logger.Printf("Could not read %s, starting empty post: %v", path, err)
		next = e.NewState()
	}

	next.SavePath = path
	next.Tab = s.Tab
	*s = next
	return nil
}

func (e *Engine) save(s *State, path string) error {
	p, err := s.ToPost()
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := e.store.Write(path, p); err != nil {
		logs.Logger.Printf("Error saving post to %s: %v", path, err)
		return nil
	}
	logs.Logger.Printf("Saved post to %s", path)
	return nil
}

func (e *Engine) fetchImage(url string) *Image {
	data, err := e.fetcher.Fetch(url)
	if err != nil {
		logs.Logger.Printf("Could not fetch image %s: %v", url, err)
		return nil
	}
	bitmap, format, err := preview.DecodeImage(data)
	if err != nil {
		logs.Logger.Printf("Could not decode image %s: %v", url, err)
		return nil
	}
	return &Image{Bitmap: bitmap, Format: format, Source: url}
}
