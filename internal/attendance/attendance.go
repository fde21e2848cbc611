package attendance

import (
	"slices"
	"strings"
	"time"
)

// Record is one lesson occurrence as fetched from the schedule service.
type Record struct {
	Date       time.Time
	Subject    string
	ClassGroup string
}

// Row is one line of the monthly report: how many times a subject was
// taught to a class group on a given day.
type Row struct {
	Date       time.Time
	Subject    string
	Count      int
	ClassGroup string
}

type aggregationKey struct {
	date       time.Time
	subject    string
	classGroup string
}

// Aggregate tallies records by (date, subject, class group). Every input
// record lands in exactly one row, so the counts always sum up to
// len(records). Rows come back sorted by date, then subject, then class
// group.
func Aggregate(records []Record) []Row {
	counts := make(map[aggregationKey]int, len(records))
	for _, record := range records {
		key := aggregationKey{
			date:       day(record.Date),
			subject:    record.Subject,
			classGroup: record.ClassGroup,
		}
		counts[key]++
	}

	rows := make([]Row, 0, len(counts))
	for key, count := range counts {
		rows = append(rows, Row{
			Date:       key.date,
			Subject:    key.subject,
			Count:      count,
			ClassGroup: key.classGroup,
		})
	}

	slices.SortFunc(rows, func(a, b Row) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := strings.Compare(a.Subject, b.Subject); c != 0 {
			return c
		}
		return strings.Compare(a.ClassGroup, b.ClassGroup)
	})

	return rows
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
