package notifier

import (
	"context"
	"fmt"

	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/storage"
)

// Local keeps pending requests in the habit store. A Dispatcher delivers them.
type Local struct {
	store storage.Provider
	opts  PermissionOptions
}

var _ Service = (*Local)(nil)

// NewLocal returns a Service that keeps requests in store.
func NewLocal(store storage.Provider) *Local {
	return &Local{store: store, opts: PermissionOptions{Sound: true, Alert: true}}
}

// RequestPermission reports whether notifications are enabled and records
// that the user has been asked.
func (l *Local) RequestPermission(ctx context.Context, opts PermissionOptions) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	settings, err := l.store.GetSettings()
	if err != nil {
		return false, fmt.Errorf("failed to read settings: %w", err)
	}

	if !settings.PermissionAsked {
		settings.PermissionAsked = true
		if err := l.store.SaveSettings(settings); err != nil {
			return false, fmt.Errorf("failed to save settings: %w", err)
		}
	}

	l.opts = opts
	logger.Debug("notification permission requested", "granted", settings.NotificationsEnabled, "sound", opts.Sound)
	return settings.NotificationsEnabled && opts.Alert, nil
}

func (l *Local) Schedule(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	settings, err := l.store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if !settings.NotificationsEnabled || !l.opts.Alert {
		return ErrPermissionDenied
	}

	req.Content.Sound = req.Content.Sound && settings.Sound && l.opts.Sound
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid notification request: %w", err)
	}
	if err := l.store.AddNotification(req); err != nil {
		return err
	}

	logger.Debug("notification scheduled", "id", req.ID, "trigger", req.Trigger.String())
	return nil
}

func (l *Local) CancelPending(ctx context.Context, ids []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if err := l.store.DeleteNotifications(ids); err != nil {
		return err
	}
	logger.Debug("notifications cancelled", "count", len(ids))
	return nil
}

// Pending lists every request that has not been cancelled
func (l *Local) Pending(ctx context.Context) ([]Request, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.store.GetAllNotifications()
}
