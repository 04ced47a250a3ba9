package post

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func samplePost() Post {
	return Post{
		Title:     "Baking Bread",
		Body:      "# Bread\n\nFlour, water, *salt*.",
		ImageURL:  "/assets/bread.png",
		Summary:   "How to cook bread in three easy steps",
		Timestamp: time.Date(2024, time.March, 9, 14, 5, 30, 0, time.UTC),
		Tags:      []string{"cooking", "bread"},
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input          string
		hour, min, sec int
	}{
		{"14:05:30", 14, 5, 30},
		{"7", 7, 0, 0},
		{"7:15", 7, 15, 0},
		{"", 0, 0, 0},
		{"ab:cd:ef", 0, 0, 0},
		{"12:xx:09", 12, 0, 9},
		{" 08 : 09 : 10 ", 0, 0, 0},
		{"-1:30:00", 0, 30, 0},
		{" 5:30:00", 0, 30, 0},
		{"+5:30:00", 0, 30, 0},
		{"99:61:75", 99, 61, 75},
	}

	for _, tt := range tests {
		h, m, s := ParseClock(tt.input)
		if h != tt.hour || m != tt.min || s != tt.sec {
			t.Errorf("ParseClock(%q): expected %d:%d:%d, got %d:%d:%d", tt.input, tt.hour, tt.min, tt.sec, h, m, s)
		}
	}
}

func TestTimestamp_NegativeComponentIsZero(t *testing.T) {
	ts, err := Timestamp(Date{2025, time.June, 1}, "-1:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, time.June, 1, 0, 30, 0, 0, time.UTC); !ts.Equal(want) {
		t.Errorf("expected %v, got %v", want, ts)
	}
}

func TestCheckClock(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"00:00:00", true},
		{"23:59:59", true},
		{"7", true},
		{"12:xx", true},
		{"24:00:00", false},
		{"25:00", false},
		{"10:60", false},
		{"10:00:60", false},
	}

	for _, tt := range tests {
		err := CheckClock(tt.input)
		if tt.valid && err != nil {
			t.Errorf("CheckClock(%q): unexpected error %v", tt.input, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("CheckClock(%q): expected ErrInvalidTimestamp, got %v", tt.input, err)
		}
	}
}

func TestTimestamp(t *testing.T) {
	ts, err := Timestamp(Date{2024, time.February, 29}, "23:59:59")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)
	if !ts.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, ts)
	}
}

func TestTimestamp_Invalid(t *testing.T) {
	tests := []struct {
		date  Date
		clock string
	}{
		{Date{2023, time.February, 29}, "00:00:00"},
		{Date{2024, time.April, 31}, "12:00:00"},
		{Date{2024, time.January, 1}, "24:00:00"},
		{Date{2024, time.January, 1}, "10:60:00"},
	}

	for _, tt := range tests {
		if _, err := Timestamp(tt.date, tt.clock); !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("Timestamp(%s, %q): expected ErrInvalidTimestamp, got %v", tt.date, tt.clock, err)
		}
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{""}},
		{"go", []string{"go"}},
		{" go , tui ,bread", []string{"go", "tui", "bread"}},
		{"a,,b", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		result := SplitTags(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("SplitTags(%q): expected %q, got %q", tt.input, tt.expected, result)
		}
	}
}

func TestSuggestFilename(t *testing.T) {
	if got := SuggestFilename("My First Post"); got != "my-first-post" {
		t.Errorf("expected my-first-post, got %q", got)
	}
	if got := WithJSONExt("my-first-post"); got != "my-first-post.json" {
		t.Errorf("expected .json appended, got %q", got)
	}
	if got := WithJSONExt("notes.txt"); got != "notes.txt" {
		t.Errorf("expected extension kept, got %q", got)
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bread.json")
	original := samplePost()

	if err := Write(path, original); err != nil {
		t.Fatalf("write error: %v", err)
	}

	loaded, err := Read(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}

	if !loaded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("timestamp mismatch: expected %v, got %v", original.Timestamp, loaded.Timestamp)
	}
	loaded.Timestamp, original.Timestamp = time.Time{}, time.Time{}
	if !reflect.DeepEqual(loaded, original) {
		t.Errorf("round trip mismatch:\nexpected %+v\ngot      %+v", original, loaded)
	}
}

func TestWrite_Format(t *testing.T) {
	data, err := Encode(samplePost())
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if !strings.Contains(string(data), `"timestamp":"2024-03-09T14:05:30Z"`) {
		t.Errorf("expected RFC 3339 UTC timestamp, got %s", data)
	}
	if !strings.Contains(string(data), `"image_url":"/assets/bread.png"`) {
		t.Errorf("expected image_url key, got %s", data)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []string{
		`not json`,
		`{"title":"x","body":"","image_url":"","summary":"","tags":[]}`,
		`{"title":"x","body":"","image_url":"","summary":"","timestamp":"2024-01-01T00:00:00Z","tags":[],"draft":true}`,
		`{"title":"x","body":"","image_url":"","summary":"","timestamp":"yesterday","tags":[]}`,
		`{"title":"x","body":"","image_url":"","summary":"","timestamp":"2024-01-01T00:00:00Z","tags":null}`,
		`{"title":null,"body":"","image_url":"","summary":"","timestamp":"2024-01-01T00:00:00Z","tags":[]}`,
		`{"title":"x","body":"","image_url":"","summary":"","timestamp":null,"tags":[]}`,
		`{"title":"x","body":"","image_url":null,"summary":"","timestamp":"2024-01-01T00:00:00Z","tags":[]}`,
	}

	for _, input := range tests {
		if _, err := Decode([]byte(input)); !errors.Is(err, ErrMalformed) {
			t.Errorf("Decode(%s): expected ErrMalformed, got %v", input, err)
		}
	}
}

func TestDecode_OffsetTimestamp(t *testing.T) {
	p, err := Decode([]byte(`{"title":"","body":"","image_url":"","summary":"","timestamp":"2024-01-01T02:00:00+02:00","tags":["a"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Timestamp.Location() != time.UTC || p.Timestamp.Hour() != 0 {
		t.Errorf("expected normalised UTC midnight, got %v", p.Timestamp)
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Error("missing file should not be reported as malformed")
	}
}

func TestExportMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bread.md")
	p := samplePost()
	p.Tags = []string{"cooking", "", "bread"}

	if err := ExportMarkdown(p, path); err != nil {
		t.Fatalf("export error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}

	parts := strings.SplitN(string(content), "---\n", 3)
	if len(parts) != 3 {
		t.Fatalf("expected frontmatter block, got %q", content)
	}

	var fm struct {
		Title string   `yaml:"title"`
		Date  string   `yaml:"date"`
		Tags  []string `yaml:"tags"`
		Image string   `yaml:"image"`
	}
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		t.Fatalf("frontmatter error: %v", err)
	}

	if fm.Title != "Baking Bread" {
		t.Errorf("expected title 'Baking Bread', got %q", fm.Title)
	}
	if fm.Date != "2024-03-09T14:05:30Z" {
		t.Errorf("expected date 2024-03-09T14:05:30Z, got %q", fm.Date)
	}
	if !reflect.DeepEqual(fm.Tags, []string{"cooking", "bread"}) {
		t.Errorf("expected empty tags dropped, got %v", fm.Tags)
	}
	if fm.Image != "/assets/bread.png" {
		t.Errorf("expected image, got %q", fm.Image)
	}
	if !strings.HasSuffix(string(content), p.Body) {
		t.Errorf("expected body after frontmatter, got %q", content)
	}
}
