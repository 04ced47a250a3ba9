package post

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const summaryLimit = 160

// ImportMarkdown reads a markdown file, optionally with YAML frontmatter,
// as a post. It accepts the files ExportMarkdown writes.
func ImportMarkdown(path string, now time.Time) (Post, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}
	return ParseMarkdown(content, now)
}

// ParseMarkdown builds a post from markdown. Missing frontmatter fields are
// derived from the body: the title from the first level 1 heading, the
// summary from the opening paragraph. now is used when no date is given.
func ParseMarkdown(content []byte, now time.Time) (Post, error) {
	var frontmatter struct {
		Title   string   `yaml:"title"`
		Summary string   `yaml:"summary"`
		Date    string   `yaml:"date"`
		Tags    []string `yaml:"tags"`
		Image   string   `yaml:"image"`
	}

	raw, body, ok := splitFrontmatter(content)
	if ok {
		if err := yaml.Unmarshal(raw, &frontmatter); err != nil {
			return Post{}, fmt.Errorf("%w: frontmatter: %v", ErrMalformed, err)
		}
	}

	p := Post{
		Title:     frontmatter.Title,
		Body:      strings.TrimLeft(string(body), "\n"),
		ImageURL:  frontmatter.Image,
		Summary:   frontmatter.Summary,
		Timestamp: now.UTC(),
		Tags:      frontmatter.Tags,
	}

	if frontmatter.Date != "" {
		ts, err := parseFrontmatterDate(frontmatter.Date)
		if err != nil {
			return Post{}, fmt.Errorf("%w: date %q", ErrInvalidTimestamp, frontmatter.Date)
		}
		p.Timestamp = ts
	}
	if p.Title == "" {
		p.Title = extractTitle(p.Body)
	}
	if p.Summary == "" {
		p.Summary = extractSummary(p.Body)
	}
	if len(p.Tags) == 0 {
		p.Tags = SplitTags("")
	}

	return p, nil
}

// splitFrontmatter separates a leading --- delimited block from the body
func splitFrontmatter(content []byte) ([]byte, []byte, bool) {
	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return nil, content, false
	}

	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			return bytes.Join(lines[1:i], []byte("\n")), bytes.Join(lines[i+1:], []byte("\n")), true
		}
	}
	return nil, content, false
}

func parseFrontmatterDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

func extractTitle(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			if n.(*ast.Heading).Level == 1 {
				title = string(n.Text(source))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})

	return title
}

func extractSummary(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var summary string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading, ast.KindFencedCodeBlock, ast.KindCodeBlock:
			return ast.WalkSkipChildren, nil
		case ast.KindParagraph:
			summary = strings.Join(strings.Fields(string(n.Text(source))), " ")
			if summary != "" {
				return ast.WalkStop, nil
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if runes := []rune(summary); len(runes) > summaryLimit {
		summary = string(runes[:summaryLimit-3]) + "..."
	}
	return summary
}
