package kreta

import (
	"testing"
	"time"
)

func Test_lessonFromEntry(t *testing.T) {
	entry := Entry{
		Title: "Matematika - 9.A\nTerem: 204",
		Datum: "2025-03-03T00:00:00",
		Start: "2025-03-03T08:00:00",
		End:   "2025-03-03T08:45:00",
		Color: lessonColor,
	}

	lesson, err := lessonFromEntry(entry)
	if err != nil {
		t.Fatal(err)
	}

	if lesson.Subject != "Matematika" {
		t.Fatalf("lesson.Subject: expected \"Matematika\" got %q", lesson.Subject)
	}
	if lesson.ClassGroup != "9.A" {
		t.Fatalf("lesson.ClassGroup: expected \"9.A\" got %q", lesson.ClassGroup)
	}
	if want := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC); !lesson.Date.Equal(want) {
		t.Fatalf("lesson.Date: expected %s got %s", want, lesson.Date)
	}
	if lesson.Start.IsZero() || lesson.End.IsZero() {
		t.Fatal("expected start and end to be set")
	}
	if zone, _ := lesson.Start.Zone(); zone == "UTC" {
		t.Fatal("expected start in local school time, got UTC")
	}
}

func Test_lessonFromEntry_missingSeparator(t *testing.T) {
	entry := Entry{
		Title: "Osztályfőnöki óra",
		Datum: "2025-03-03T00:00:00",
		Color: lessonColor,
	}

	if _, err := lessonFromEntry(entry); err == nil {
		t.Fatal("expected error for title without class group separator")
	}
}

func Test_lessonFromEntry_badStart(t *testing.T) {
	entry := Entry{
		Title: "Matematika - 9.A",
		Datum: "2025-03-03T00:00:00",
		Start: "08:00",
		Color: lessonColor,
	}

	if _, err := lessonFromEntry(entry); err == nil {
		t.Fatal("expected error for unparseable start, not a silent all-day downgrade")
	}
}

func TestLessonsFromEntries(t *testing.T) {
	entries := []Entry{
		{Title: "Matematika - 9.A", Datum: "2025-03-03T00:00:00", Color: lessonColor},
		{Title: "Tavaszi szünet", Datum: "2025-03-04T00:00:00", Color: "#FF0000"},
		{Title: "Fizika - 10.B", Datum: "2025-03-05T00:00:00", Color: lessonColor},
	}

	lessons, err := LessonsFromEntries(entries)
	if err != nil {
		t.Fatal(err)
	}

	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(lessons))
	}
}

func Test_parseTimestamp(t *testing.T) {
	for _, value := range []string{
		"2025-03-03T00:00:00",
		"2025-03-03",
		"2025-03-03T08:00:00Z",
	} {
		if _, err := parseTimestamp(value); err != nil {
			t.Fatalf("parse %q: %s", value, err)
		}
	}

	if _, err := parseTimestamp("03/03/2025"); err == nil {
		t.Fatal("expected error for unsupported timestamp")
	}
}
