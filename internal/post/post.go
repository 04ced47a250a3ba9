package post

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMalformed is returned when a post file cannot be decoded.
	ErrMalformed = errors.New("malformed post")
	// ErrInvalidTimestamp is returned when a date and clock do not form a real instant.
	ErrInvalidTimestamp = errors.New("invalid post timestamp")
)

// Post is the on-disk representation of a blog post
type Post struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url"` // May be relative to the site root
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"` // UTC, whole seconds
	Tags      []string  `json:"tags"`
}

// requiredKeys are the JSON keys every post file must carry.
var requiredKeys = []string{"title", "body", "image_url", "summary", "timestamp", "tags"}

// Date is a calendar date without a time of day
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in UTC.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC of the date. Out-of-range days are normalised.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether the date exists on the calendar.
func (d Date) Valid() bool {
	t := d.Time()
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

// FormatClock renders a 24-hour clock time as HH:MM:SS.
func FormatClock(hour, minute, second int) string {
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}

// ClockOf returns the HH:MM:SS clock text of t in UTC.
func ClockOf(t time.Time) string {
	t = t.UTC()
	return FormatClock(t.Hour(), t.Minute(), t.Second())
}

// ParseClock splits clock text on ":" into hour, minute and second.
// Each component is an unsigned decimal; missing or unparseable ones are 0.
func ParseClock(s string) (hour, minute, second int) {
	parts := strings.Split(s, ":")
	component := func(i int) int {
		if i >= len(parts) {
			return 0
		}
		n, err := strconv.ParseUint(parts[i], 10, 32)
		if err != nil {
			return 0
		}
		return int(n)
	}
	return component(0), component(1), component(2)
}

// CheckClock reports whether clock text names a real time of day.
// The error wraps ErrInvalidTimestamp.
func CheckClock(clock string) error {
	hour, minute, second := ParseClock(clock)
	if hour > 23 || minute > 59 || second > 59 {
		return fmt.Errorf("%w: no such time %s", ErrInvalidTimestamp, FormatClock(hour, minute, second))
	}
	return nil
}

// Timestamp combines a date and clock text into a UTC instant.
func Timestamp(d Date, clock string) (time.Time, error) {
	if !d.Valid() {
		return time.Time{}, fmt.Errorf("%w: no such date %s", ErrInvalidTimestamp, d)
	}
	if err := CheckClock(clock); err != nil {
		return time.Time{}, err
	}
	hour, minute, second := ParseClock(clock)
	return time.Date(d.Year, d.Month, d.Day, hour, minute, second, 0, time.UTC), nil
}

// SplitTags explodes a comma-separated tag string, trimming each tag.
// An empty string yields a single empty tag; existing files depend on it.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, len(parts))
	for i, p := range parts {
		tags[i] = strings.TrimSpace(p)
	}
	return tags
}

// JoinTags is the inverse of SplitTags for already-trimmed tags.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
