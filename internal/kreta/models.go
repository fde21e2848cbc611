package kreta

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/kretatools/internal/timezone"
)

// lessonColor marks actual taught lessons in the calendar feed, everything
// else is breaks, school events and the term calendar.
const lessonColor = "#60BF55"

type Entry struct {
	Title string `json:"title"`
	Datum string `json:"datum"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

// Lesson is a single taught occurrence of a subject for one class group.
type Lesson struct {
	Date       time.Time
	Subject    string
	ClassGroup string
	// Start and End are zero when the feed carries no times for the entry.
	Start time.Time
	End   time.Time
}

func LessonsFromEntries(entries []Entry) ([]Lesson, error) {
	lessons := make([]Lesson, 0, len(entries))
	for _, entry := range entries {
		if entry.Color != lessonColor {
			continue
		}
		lesson, err := lessonFromEntry(entry)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, *lesson)
	}
	return lessons, nil
}

func lessonFromEntry(entry Entry) (*Lesson, error) {
	title := firstLine(entry.Title)
	subject, classGroup, found := strings.Cut(title, "-")
	if !found {
		return nil, fmt.Errorf("lesson title %q: missing class group separator", title)
	}

	date, err := parseTimestamp(entry.Datum)
	if err != nil {
		return nil, fmt.Errorf("lesson %q: %w", title, err)
	}

	lesson := &Lesson{
		Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Subject:    strings.TrimSpace(subject),
		ClassGroup: strings.TrimSpace(classGroup),
	}

	if entry.Start != "" {
		start, err := parseTimestamp(entry.Start)
		if err != nil {
			return nil, fmt.Errorf("lesson %q: start: %w", title, err)
		}
		lesson.Start = timezone.InBudapest(start)
	}
	if entry.End != "" {
		end, err := parseTimestamp(entry.End)
		if err != nil {
			return nil, fmt.Errorf("lesson %q: end: %w", title, err)
		}
		lesson.End = timezone.InBudapest(end)
	}

	return lesson, nil
}

// parseTimestamp accepts the mix of formats the feed uses for datum and
// start/end values.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		time.DateOnly,
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", value)
}

func firstLine(str string) string {
	scanner := bufio.NewScanner(strings.NewReader(str))
	if scanner.Scan() {
		return scanner.Text()
	}
	return ""
}
