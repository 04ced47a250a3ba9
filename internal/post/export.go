package post

import (
	"bytes"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ExportMarkdown writes the post as a markdown file with YAML frontmatter
func ExportMarkdown(p Post, path string) error {
	data, err := MarshalMarkdown(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MarshalMarkdown renders the frontmatter block followed by the body
func MarshalMarkdown(p Post) ([]byte, error) {
	var buf bytes.Buffer

	frontmatter := struct {
		Title   string   `yaml:"title"`
		Summary string   `yaml:"summary,omitempty"`
		Date    string   `yaml:"date"`
		Tags    []string `yaml:"tags,omitempty"`
		Image   string   `yaml:"image,omitempty"`
	}{
		Title:   p.Title,
		Summary: p.Summary,
		Date:    p.Timestamp.UTC().Format(time.RFC3339),
		Image:   p.ImageURL,
	}

	for _, tag := range p.Tags {
		if tag != "" {
			frontmatter.Tags = append(frontmatter.Tags, tag)
		}
	}

	yamlBytes, err := yaml.Marshal(frontmatter)
	if err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
	buf.WriteString(p.Body)

	return buf.Bytes(), nil
}
