package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/kretatools/internal/kreta"
)

// KretaSource adapts the Kréta calendar client to the Source capability.
type KretaSource struct {
	client *kreta.Client
}

func NewKretaSource(client *kreta.Client) *KretaSource {
	return &KretaSource{
		client: client,
	}
}

func (s *KretaSource) Lessons(ctx context.Context, from, to time.Time) ([]Record, error) {
	entries, err := s.client.Schedule(ctx, kreta.ScheduleInput{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	lessons, err := kreta.LessonsFromEntries(entries)
	if err != nil {
		return nil, fmt.Errorf("lessons from entries: %w", err)
	}
	records := make([]Record, 0, len(lessons))
	for _, lesson := range lessons {
		records = append(records, Record{
			Date:       lesson.Date,
			Subject:    lesson.Subject,
			ClassGroup: lesson.ClassGroup,
		})
	}
	return records, nil
}
