package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/attendance"
)

// Service answers the stateless queries of the attendance panel, next to
// the stateful Session.
type Service interface {
	ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error)
	Options() Options
}

// Options is the static form vocabulary: what an operator can pick.
type Options struct {
	Statuses       []attendance.Status `json:"statuses"`
	FilterStatuses []string            `json:"filter_statuses"`
	TimeOptions    []string            `json:"time_options"`
}

type serviceImpl struct {
	store attendance.Repository
}

func NewService(store attendance.Repository) Service {
	return &serviceImpl{store: store}
}

// ListByDate implements Service.
func (s *serviceImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	records, err := s.store.ListByDate(ctx, attendance.DateKey(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}

// Options implements Service.
func (s *serviceImpl) Options() Options {
	filter := []string{"All"}
	filter = append(filter, string(attendance.StatusPresent), string(attendance.StatusHalfPresent))
	for _, st := range attendance.RequestableStatuses {
		if st != attendance.StatusPresent {
			filter = append(filter, string(st))
		}
	}
	return Options{
		Statuses:       attendance.RequestableStatuses,
		FilterStatuses: filter,
		TimeOptions:    TimeOptions(),
	}
}
