package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/storage"
)

// Dispatcher delivers pending requests whose trigger has come due. It is
// meant to run once a minute from cron, launchd or a systemd timer.
type Dispatcher struct {
	store  storage.Provider
	sender Sender
}

// NewDispatcher returns a Dispatcher reading from store and delivering through sender.
func NewDispatcher(store storage.Provider, sender Sender) *Dispatcher {
	return &Dispatcher{store: store, sender: sender}
}

// Due returns the requests whose latest occurrence is within the grace
// period of now and has not fired yet. It does not modify the store.
func (d *Dispatcher) Due(ctx context.Context, now time.Time) ([]Request, error) {
	settings, err := d.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		logger.Debug("notifications disabled, nothing to dispatch")
		return nil, nil
	}
	grace := time.Duration(settings.GracePeriodMin) * time.Minute

	pending, err := d.store.GetAllNotifications()
	if err != nil {
		return nil, err
	}

	var due []Request
	for _, req := range pending {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		occ := req.Trigger.Latest(now)
		if now.Sub(occ) > grace {
			continue
		}
		// scheduled after this occurrence passed
		if req.CreatedAt.After(occ) {
			continue
		}
		if req.LastFiredAt != nil && !req.LastFiredAt.Before(occ) {
			continue
		}
		due = append(due, req)
	}
	return due, nil
}

// Run delivers every request returned by Due. Repeating requests are marked
// fired; one-shot requests are removed. It returns the number delivered.
// Delivery failures are joined into the returned error and not retried.
func (d *Dispatcher) Run(ctx context.Context, now time.Time) (int, error) {
	due, err := d.Due(ctx, now)
	if err != nil {
		return 0, err
	}

	delivered := 0
	var errs []error
	for _, req := range due {
		if err := ctx.Err(); err != nil {
			return delivered, err
		}

		if err := d.sender.Deliver(ctx, req.Content); err != nil {
			logger.Warn("failed to deliver notification", "id", req.ID, "error", err)
			errs = append(errs, fmt.Errorf("notification %s: %w", req.ID, err))
			continue
		}
		delivered++
		logger.Info("notification delivered", "id", req.ID, "occurrence", req.Trigger.Latest(now).Format(time.RFC3339))

		if req.Trigger.Repeats {
			err = d.store.MarkNotificationFired(req.ID, now)
		} else {
			err = d.store.DeleteNotifications([]string{req.ID})
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("notification %s: %w", req.ID, err))
		}
	}

	return delivered, errors.Join(errs...)
}
