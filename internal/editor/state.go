package editor

import (
	"image"
	"time"

	"blogcreator/internal/post"
	"blogcreator/internal/preview"
)

// Tab is the active form tab
type Tab int

const (
	TabContent Tab = iota
	TabMeta
)

func (t Tab) String() string {
	if t == TabMeta {
		return "Meta"
	}
	return "Content"
}

// ParseTab maps a config value to a Tab, defaulting to TabContent.
func ParseTab(s string) Tab {
	if s == "meta" {
		return TabMeta
	}
	return TabContent
}

// Image is a decoded preview of the post's header image
type Image struct {
	Bitmap image.Image
	Format string // registered decoder name, e.g. "png"
	Source string // URL the bytes were fetched from
}

// State is the in-memory working copy of the post being edited.
// Fields below Time are never persisted.
type State struct {
	Title    string
	Body     Content
	ImageURL string
	Summary  string
	Tags     string    // comma-joined, as typed
	Date     post.Date // publish date
	Time     string    // publish time of day, HH:MM:SS

	Preview        preview.Document // always Parse(Body.Text())
	Tab            Tab
	ShowDatePicker bool
	ShowTimePicker bool
	Image          *Image
	SavePath       string // empty until loaded from or saved to a file
}

// NewState returns an empty post dated now (UTC).
func NewState(now time.Time) State {
	return State{
		Date:    post.DateOf(now),
		Time:    post.ClockOf(now),
		Preview: preview.Parse(""),
	}
}

// FromPost builds editor state from a persisted post. Transient fields
// take their defaults.
func FromPost(p post.Post) State {
	return State{
		Title:    p.Title,
		Body:     NewContent(p.Body),
		ImageURL: p.ImageURL,
		Summary:  p.Summary,
		Tags:     post.JoinTags(p.Tags),
		Date:     post.DateOf(p.Timestamp),
		Time:     post.ClockOf(p.Timestamp),
		Preview:  preview.Parse(p.Body),
	}
}

// ToPost reduces the state to its persisted form. The error wraps
// post.ErrInvalidTimestamp when date and time do not form a real instant.
func (s State) ToPost() (post.Post, error) {
	ts, err := post.Timestamp(s.Date, s.Time)
	if err != nil {
		return post.Post{}, err
	}
	return post.Post{
		Title:     s.Title,
		Body:      s.Body.Text(),
		ImageURL:  s.ImageURL,
		Summary:   s.Summary,
		Timestamp: ts,
		Tags:      post.SplitTags(s.Tags),
	}, nil
}
