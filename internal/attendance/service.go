package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kretatools/internal/kreta"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Source is the capability the aggregator needs from the schedule service:
// every lesson occurrence between from inclusive and to exclusive.
type Source interface {
	Lessons(ctx context.Context, from, to time.Time) ([]Record, error)
}

type Service struct {
	logger *slog.Logger
	source Source
}

func NewService(
	logger *slog.Logger,
	source Source,
) *Service {
	return &Service{
		logger: logger,
		source: source,
	}
}

// Month fetches and aggregates one calendar month. An out of range month
// fails before the source is ever contacted.
func (s *Service) Month(ctx context.Context, year int, month time.Month) ([]Row, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}

	from, to := kreta.MonthWindow(year, month)

	records, err := s.source.Lessons(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch lessons: %w", err)
	}

	rows := Aggregate(records)

	s.logger.Info("aggregated lessons",
		"year", year,
		"month", int(month),
		"lessons", len(records),
		"rows", len(rows))

	return rows, nil
}
