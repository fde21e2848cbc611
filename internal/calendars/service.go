package calendars

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	ics "github.com/arran4/golang-ical"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/kretatools/internal/kreta"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

type Service struct {
	logger *slog.Logger
	client *kreta.Client
}

func NewService(
	logger *slog.Logger,
	client *kreta.Client,
) *Service {
	return &Service{
		logger: logger,
		client: client,
	}
}

// ExportMonth writes one calendar month of lessons as an iCalendar file.
func (s *Service) ExportMonth(ctx context.Context, year int, month time.Month, path string) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}

	from, to := kreta.MonthWindow(year, month)

	entries, err := s.client.Schedule(ctx, kreta.ScheduleInput{From: from, To: to})
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	lessons, err := kreta.LessonsFromEntries(entries)
	if err != nil {
		return fmt.Errorf("lessons from entries: %w", err)
	}

	if err := writeFile(path, lessons); err != nil {
		return err
	}

	s.logger.Info("calendar written", "path", path, "events", len(lessons))

	return nil
}

func writeICal(w io.Writer, lessons []kreta.Lesson) error {
	calendar := ics.NewCalendar()
	calendar.SetName("Kréta schedule")
	for _, lesson := range lessons {
		event := calendar.AddEvent(gonanoid.Must())
		event.SetSummary(fmt.Sprintf("%s - %s", lesson.Subject, lesson.ClassGroup))
		if !lesson.Start.IsZero() && !lesson.End.IsZero() {
			event.SetStartAt(lesson.Start)
			event.SetEndAt(lesson.End)
		} else {
			event.SetAllDayStartAt(lesson.Date)
			event.SetAllDayEndAt(lesson.Date.AddDate(0, 0, 1))
		}
	}
	return calendar.SerializeTo(w)
}

func writeFile(path string, lessons []kreta.Lesson) error {
	file, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create output for %q: %w", path, err)
	}
	defer os.Remove(file.Name())

	if err := writeICal(file, lessons); err != nil {
		file.Close()
		return fmt.Errorf("serialize calendar: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %q: %w", file.Name(), err)
	}
	// CreateTemp makes the file 0600, the calendar should be a regular file.
	if err := os.Chmod(file.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %q: %w", file.Name(), err)
	}
	if err := os.Rename(file.Name(), path); err != nil {
		return fmt.Errorf("rename into %q: %w", path, err)
	}
	return nil
}
