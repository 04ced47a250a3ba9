package post

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

var importNow = time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)

func TestParseMarkdown_ExportRoundTrip(t *testing.T) {
	original := Post{
		Title:     "Round Trip",
		Body:      "# Round Trip\n\nBody text.\n",
		ImageURL:  "https://example.com/a.png",
		Summary:   "short",
		Timestamp: time.Date(2025, time.March, 9, 8, 7, 6, 0, time.UTC),
		Tags:      []string{"a", "b"},
	}

	data, err := MarshalMarkdown(original)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseMarkdown(data, importNow)
	if err != nil {
		t.Fatalf("ParseMarkdown: %v", err)
	}

	if !got.Timestamp.Equal(original.Timestamp) {
		t.Errorf("timestamp: got %v, want %v", got.Timestamp, original.Timestamp)
	}
	got.Timestamp = original.Timestamp
	if !reflect.DeepEqual(got, original) {
		t.Errorf("got %+v, want %+v", got, original)
	}
}

func TestParseMarkdown_NoFrontmatter(t *testing.T) {
	got, err := ParseMarkdown([]byte("# Simple Post\n\nJust some\ncontent.\n\nMore.\n"), importNow)
	if err != nil {
		t.Fatal(err)
	}

	if got.Title != "Simple Post" {
		t.Errorf("expected title from heading, got %q", got.Title)
	}
	if got.Summary != "Just some content." {
		t.Errorf("expected summary from first paragraph, got %q", got.Summary)
	}
	if !got.Timestamp.Equal(importNow) {
		t.Errorf("expected timestamp now, got %v", got.Timestamp)
	}
	if !reflect.DeepEqual(got.Tags, []string{""}) {
		t.Errorf("expected empty tag list as the editor saves it, got %q", got.Tags)
	}
}

func TestParseMarkdown_DateFormats(t *testing.T) {
	tests := []struct {
		date string
		want time.Time
	}{
		{"2025-01-02", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2025-01-02 03:04:05", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2025-01-02T03:04:05+02:00", time.Date(2025, 1, 2, 1, 4, 5, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseMarkdown([]byte("---\ndate: \""+tt.date+"\"\n---\nbody"), importNow)
		if err != nil {
			t.Errorf("%s: %v", tt.date, err)
			continue
		}
		if !got.Timestamp.Equal(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.date, got.Timestamp, tt.want)
		}
	}
}

func TestParseMarkdown_Errors(t *testing.T) {
	if _, err := ParseMarkdown([]byte("---\ndate: soon\n---\n"), importNow); !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("expected ErrInvalidTimestamp, got %v", err)
	}
	if _, err := ParseMarkdown([]byte("---\ntags: [unclosed\n---\n"), importNow); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestParseMarkdown_LongSummaryTruncated(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	got, err := ParseMarkdown(long, importNow)
	if err != nil {
		t.Fatal(err)
	}
	if n := len([]rune(got.Summary)); n != summaryLimit {
		t.Errorf("expected summary of %d runes, got %d", summaryLimit, n)
	}
}

func TestImportMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.md")
	if err := os.WriteFile(path, []byte("---\ntitle: From File\ntags: [x]\n---\n\nhello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ImportMarkdown(path, importNow)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "From File" || got.Body != "hello\n" || !reflect.DeepEqual(got.Tags, []string{"x"}) {
		t.Errorf("unexpected post %+v", got)
	}

	if _, err := ImportMarkdown(filepath.Join(t.TempDir(), "missing.md"), importNow); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
