package post

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Write encodes the post as JSON and writes it to path
func Write(path string, p Post) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode returns the JSON document for a post
func Encode(p Post) ([]byte, error) {
	p.Timestamp = p.Timestamp.UTC()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return json.Marshal(p)
}

// Store reads and writes posts on the local filesystem.
type Store struct{}

func (Store) Read(path string) (Post, error) {
	return Read(path)
}

func (Store) Write(path string, p Post) error {
	return Write(path, p)
}

// SuggestFilename derives a save name from a post title
// "My First Post" -> "my-first-post"
func SuggestFilename(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

// WithJSONExt appends ".json" when name carries no extension.
func WithJSONExt(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".json"
	}
	return name
}
