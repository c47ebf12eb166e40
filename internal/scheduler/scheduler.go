// Package scheduler turns a habit's weekday set and reminder time into weekly
// notification requests.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/notifier"
)

// Scheduler maps reminder settings onto requests of a notifier.Service.
type Scheduler struct {
	svc   notifier.Service
	newID func() string
}

// New returns a Scheduler that issues requests to svc with random UUIDs.
func New(svc notifier.Service) *Scheduler {
	return &Scheduler{
		svc:   svc,
		newID: uuid.NewString,
	}
}

// Schedule requests one repeating notification per weekday at the given time
// and returns their ids in the order of weekDays. Unknown weekday names are
// skipped. If any request fails, the ones already scheduled by this call are
// cancelled and the error is returned.
func (s *Scheduler) Schedule(ctx context.Context, weekDays []string, at models.TimeOfDay, message string) ([]string, error) {
	if err := at.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reminder time: %w", err)
	}

	ids := make([]string, 0, len(weekDays))
	for _, day := range weekDays {
		index, ok := models.WeekdayIndex(day)
		if !ok {
			logger.Warn("skipping unknown weekday", "weekday", day)
			continue
		}

		req := notifier.Request{
			ID: s.newID(),
			Trigger: models.Trigger{
				Weekday: index,
				Hour:    at.Hour,
				Minute:  at.Minute,
				Repeats: true,
			},
			Content: models.Content{
				Title: constants.ReminderTitle,
				Body:  message,
				Sound: true,
			},
		}

		if err := s.svc.Schedule(ctx, req); err != nil {
			err = fmt.Errorf("failed to schedule reminder for %s: %w", day, err)
			if len(ids) > 0 {
				// roll back even if ctx is what failed
				if cerr := s.svc.CancelPending(context.WithoutCancel(ctx), ids); cerr != nil {
					logger.Error("failed to roll back scheduled reminders", "ids", ids, "error", cerr)
					err = errors.Join(err, cerr)
				}
			}
			return nil, err
		}
		ids = append(ids, req.ID)
	}

	logger.Debug("reminders scheduled", "count", len(ids), "at", at.String())
	return ids, nil
}

// Cancel removes pending requests. Ids that already fired or were removed are ignored.
func (s *Scheduler) Cancel(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.svc.CancelPending(ctx, ids); err != nil {
		return fmt.Errorf("failed to cancel reminders: %w", err)
	}
	return nil
}
